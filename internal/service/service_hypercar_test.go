package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/mock"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHypercarService(t *testing.T) (*hypercarService, *mock.MockHypercarRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockHypercarRepository(ctrl)
	svc := NewHypercarService(repo, logger.Nop()).(*hypercarService)
	svc.newID = func() string { return "0192b3c4-0000-7000-8000-000000000001" }
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return svc, repo
}

func chironDraft() models.Hypercar {
	return models.Hypercar{
		Brand: "Bugatti",
		Name:  "Chiron",
		Year:  2023,
		Price: models.Price{Amount: 3_000_000},
		Images: []models.Image{
			{URL: "https://cdn.example.com/chiron-1.jpg", IsPrimary: true},
			{URL: "https://cdn.example.com/chiron-2.jpg", Order: 1},
		},
		Specs: models.Specs{
			Power:        models.Measure{Value: 1479},
			TopSpeed:     models.Measure{Value: 261},
			Acceleration: models.Measure{Value: 2.4},
			Engine:       models.Engine{Description: "8.0L Quad-Turbo W16"},
		},
		Description: models.Description{Short: "The fastest production car"},
		Tags:        []string{"w16", "french"},
	}
}

func storedChiron() models.Hypercar {
	car := chironDraft()
	applyHypercarDefaults(&car)
	car.ID = "0192b3c4-0000-7000-8000-000000000001"
	car.IsActive = true
	car.Views = 42
	car.Favorites = 3
	car.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return car
}

// ─────────────────────────────────────────────
// Defaults
// ─────────────────────────────────────────────

func TestApplyHypercarDefaults(t *testing.T) {
	car := chironDraft()

	applyHypercarDefaults(&car)

	assert.Equal(t, "USD", car.Price.Currency)
	assert.Equal(t, "USD 3,000,000", car.Price.Formatted)
	assert.Equal(t, "🏎️", car.Emoji)
	assert.Equal(t, "1479 HP", car.Specs.Power.Formatted)
	assert.Equal(t, "261 MPH", car.Specs.TopSpeed.Formatted)
	assert.Equal(t, "2.4s 0-60", car.Specs.Acceleration.Formatted)
	assert.Equal(t, "kg", car.Specs.Weight.Unit)
	assert.Equal(t, models.StatusAvailable, car.Status)
	assert.Equal(t, "Bugatti Chiron", car.FullName)
}

func TestApplyHypercarDefaults_KeepsClientValues(t *testing.T) {
	car := chironDraft()
	car.Price = models.Price{Amount: 2_500_000.5, Currency: "EUR"}
	car.Specs.Power = models.Measure{Value: 1100, Unit: "kW", Formatted: "1,100 kW"}
	car.Status = models.StatusSold

	applyHypercarDefaults(&car)

	assert.Equal(t, "EUR 2,500,000.50", car.Price.Formatted)
	assert.Equal(t, "1,100 kW", car.Specs.Power.Formatted)
	assert.Equal(t, models.StatusSold, car.Status)
}

// ─────────────────────────────────────────────
// Create / Get
// ─────────────────────────────────────────────

func TestHypercarService_Create(t *testing.T) {
	svc, repo := newTestHypercarService(t)

	draft := chironDraft()
	draft.Views = 1000
	draft.IsActive = false

	repo.EXPECT().CreateHypercar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car models.Hypercar) (models.Hypercar, error) {
			return car, nil
		})

	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, "0192b3c4-0000-7000-8000-000000000001", created.ID)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.Views)
	assert.Equal(t, "USD 3,000,000", created.Price.Formatted)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), created.CreatedAt)
}

func TestHypercarService_Create_Invalid(t *testing.T) {
	svc, _ := newTestHypercarService(t)

	draft := chironDraft()
	draft.Brand = ""
	draft.Price.Amount = -5

	_, err := svc.Create(context.Background(), draft)

	require.ErrorIs(t, err, ErrValidationFailed)
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "brand")
	assert.Contains(t, fields, "price.amount")
}

func TestHypercarService_Get(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	car := storedChiron()

	repo.EXPECT().GetHypercar(gomock.Any(), car.ID).Return(car, nil)
	repo.EXPECT().IncrementViews(gomock.Any(), car.ID).Return(nil)

	got, err := svc.Get(context.Background(), car.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 43, got.Views)
}

func TestHypercarService_Get_ViewCountFailureIsIgnored(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	car := storedChiron()

	repo.EXPECT().GetHypercar(gomock.Any(), car.ID).Return(car, nil)
	repo.EXPECT().IncrementViews(gomock.Any(), car.ID).Return(errors.New("deadlock"))

	got, err := svc.Get(context.Background(), car.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 42, got.Views)
}

func TestHypercarService_Get_NotFound(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	inactive := storedChiron()
	inactive.IsActive = false

	repo.EXPECT().GetHypercar(gomock.Any(), "missing").Return(models.Hypercar{}, store.ErrHypercarNotFound)
	repo.EXPECT().GetHypercar(gomock.Any(), inactive.ID).Return(inactive, nil)

	_, err := svc.Get(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), inactive.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestHypercarService_List_NormalizesPage(t *testing.T) {
	svc, repo := newTestHypercarService(t)

	repo.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.HypercarFilter) ([]models.Hypercar, int, error) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 100, filter.Limit)
			return []models.Hypercar{storedChiron()}, 250, nil
		})

	page, err := svc.List(context.Background(), models.HypercarFilter{Page: -3, Limit: 5000, SortBy: "price"})
	require.NoError(t, err)

	assert.Len(t, page.Hypercars, 1)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNextPage)
}

func TestHypercarService_List_UnknownSort(t *testing.T) {
	svc, _ := newTestHypercarService(t)

	_, err := svc.List(context.Background(), models.HypercarFilter{SortBy: "password_hash"})

	assert.ErrorIs(t, err, ErrValidationFailed)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestHypercarService_Update_MergesPatch(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	current := storedChiron()

	repo.EXPECT().GetHypercar(gomock.Any(), current.ID).Return(current, nil)
	repo.EXPECT().UpdateHypercar(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car models.Hypercar) (models.Hypercar, error) {
			return car, nil
		})

	patch := json.RawMessage(`{
		"price": {"amount": 3500000},
		"images": [{"url": "https://cdn.example.com/chiron-new.jpg", "isPrimary": true}],
		"views": 0,
		"isFeatured": true
	}`)

	updated, err := svc.Update(context.Background(), current.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, 3_500_000.0, updated.Price.Amount)
	assert.Equal(t, "USD 3,500,000", updated.Price.Formatted, "stale formatted price is recomputed")
	assert.Equal(t, "USD", updated.Price.Currency)
	require.Len(t, updated.Images, 1)
	assert.Equal(t, "https://cdn.example.com/chiron-new.jpg", updated.Images[0].URL)
	assert.Equal(t, []string{"w16", "french"}, updated.Tags)
	assert.True(t, updated.IsFeatured)
	assert.EqualValues(t, 42, updated.Views, "counters are store-owned")
	assert.Equal(t, current.CreatedAt, updated.CreatedAt)

	assert.Len(t, current.Images, 2, "the stored value is not mutated")
}

func TestHypercarService_Update_InvalidResult(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	current := storedChiron()

	repo.EXPECT().GetHypercar(gomock.Any(), current.ID).Return(current, nil)

	_, err := svc.Update(context.Background(), current.ID, json.RawMessage(`{"year": 1800}`))

	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestHypercarService_Update_NotAnObject(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	current := storedChiron()

	repo.EXPECT().GetHypercar(gomock.Any(), current.ID).Return(current, nil).Times(2)

	_, err := svc.Update(context.Background(), current.ID, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.Update(context.Background(), current.ID, json.RawMessage(`null`))
	assert.ErrorIs(t, err, ErrValidationFailed)
}

// ─────────────────────────────────────────────
// Delete / favorites
// ─────────────────────────────────────────────

func TestHypercarService_Delete(t *testing.T) {
	svc, repo := newTestHypercarService(t)

	repo.EXPECT().DeactivateHypercar(gomock.Any(), "car-1").Return(nil)
	repo.EXPECT().DeactivateHypercar(gomock.Any(), "car-2").Return(store.ErrHypercarNotFound)

	require.NoError(t, svc.Delete(context.Background(), "car-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "car-2"), ErrNotFound)
}

func TestHypercarService_Favorites(t *testing.T) {
	svc, repo := newTestHypercarService(t)
	ctx := context.Background()

	repo.EXPECT().AddFavorite(gomock.Any(), "acc-1", "car-1", gomock.Any()).
		Return(models.FavoriteResult{IsFavorited: true, FavoritesCount: 4}, nil)
	repo.EXPECT().RemoveFavorite(gomock.Any(), "acc-1", "car-1").
		Return(models.FavoriteResult{IsFavorited: false, FavoritesCount: 3}, nil)
	repo.EXPECT().AddFavorite(gomock.Any(), "acc-1", "gone", gomock.Any()).
		Return(models.FavoriteResult{}, store.ErrHypercarNotFound)

	added, err := svc.AddFavorite(ctx, "acc-1", "car-1")
	require.NoError(t, err)
	assert.Equal(t, models.FavoriteResult{IsFavorited: true, FavoritesCount: 4}, added)

	removed, err := svc.RemoveFavorite(ctx, "acc-1", "car-1")
	require.NoError(t, err)
	assert.False(t, removed.IsFavorited)

	_, err = svc.AddFavorite(ctx, "acc-1", "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}
