package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/mock"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	carA = "0192b3c4-0000-7000-8000-00000000000a"
	carB = "0192b3c4-0000-7000-8000-00000000000b"
	carC = "0192b3c4-0000-7000-8000-00000000000c"
)

func newTestDashboard(t *testing.T) (DashboardService, *mock.MockAccountRepository, *mock.MockHypercarRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountRepository(ctrl)
	hypercars := mock.NewMockHypercarRepository(ctrl)

	return NewDashboardService(accounts, hypercars, logger.Nop()), accounts, hypercars
}

func car(id, brand string, price, power float64) models.Hypercar {
	return models.Hypercar{
		ID:       id,
		Brand:    brand,
		Name:     "Model " + id[len(id)-1:],
		FullName: brand + " Model " + id[len(id)-1:],
		Price:    models.Price{Amount: price},
		Specs: models.Specs{
			Power:        models.Measure{Value: power},
			TopSpeed:     models.Measure{Value: power / 5},
			Acceleration: models.Measure{Value: 2.5},
		},
		IsActive: true,
	}
}

// ─────────────────────────────────────────────
// Overview
// ─────────────────────────────────────────────

func TestDashboard_Overview(t *testing.T) {
	svc, accounts, hypercars := newTestDashboard(t)
	joined := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	account := models.Account{ID: "acc-1", CreatedAt: joined, IsEmailVerified: true}

	brands := make([]models.BrandStat, 12)
	for i := range brands {
		brands[i] = models.BrandStat{Brand: string(rune('A' + i)), Count: 12 - i}
	}

	accounts.EXPECT().ListFavoriteIDs(gomock.Any(), "acc-1").Return([]string{carA, carB}, nil)
	hypercars.EXPECT().FavoriteHypercars(gomock.Any(), "acc-1", 1, 6).
		Return([]models.FavoriteEntry{{Hypercar: car(carA, "Bugatti", 3e6, 1479)}}, 1, nil)
	hypercars.EXPECT().Stats(gomock.Any()).
		Return(models.HypercarStats{Overview: models.CatalogOverview{TotalHypercars: 30}, BrandStats: brands}, nil)
	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, f models.HypercarFilter) ([]models.Hypercar, int, error) {
			if f.Featured != nil {
				assert.True(t, *f.Featured)
				assert.Equal(t, 3, f.Limit)
				return []models.Hypercar{car(carB, "Pagani", 3.4e6, 850)}, 1, nil
			}
			assert.Equal(t, models.HypercarFilter{Page: 1, Limit: 5}, f)
			return []models.Hypercar{car(carC, "Koenigsegg", 2e6, 1600)}, 30, nil
		})
	hypercars.EXPECT().PriceDistribution(gomock.Any(), gomock.Len(5)).
		DoAndReturn(func(_ context.Context, buckets []models.PriceBucket) ([]models.PriceBucket, error) {
			return buckets, nil
		})

	overview, err := svc.Overview(context.Background(), account)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.UserStats.FavoritesCount)
	assert.Equal(t, joined, overview.UserStats.MemberSince)
	assert.True(t, overview.UserStats.IsEmailVerified)
	assert.Equal(t, 30, overview.OverallStats.TotalHypercars)
	assert.Len(t, overview.BrandDistribution, 10)
	assert.Len(t, overview.UserFavorites, 1)
	assert.Len(t, overview.RecentHypercars, 1)
	assert.Len(t, overview.FeaturedHypercars, 1)
	require.Len(t, overview.PriceDistribution, 5)
	assert.Zero(t, overview.PriceDistribution[4].Max)
}

func TestDashboard_Overview_Failure(t *testing.T) {
	svc, accounts, hypercars := newTestDashboard(t)
	boom := errors.New("boom")

	accounts.EXPECT().ListFavoriteIDs(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	hypercars.EXPECT().FavoriteHypercars(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, nil).AnyTimes()
	hypercars.EXPECT().Stats(gomock.Any()).Return(models.HypercarStats{}, boom)
	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).Return(nil, 0, nil).AnyTimes()
	hypercars.EXPECT().PriceDistribution(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := svc.Overview(context.Background(), models.Account{ID: "acc-1"})

	assert.ErrorIs(t, err, boom)
}

// ─────────────────────────────────────────────
// Recommendations
// ─────────────────────────────────────────────

func TestDashboard_Recommendations(t *testing.T) {
	svc, accounts, hypercars := newTestDashboard(t)

	hypercars.EXPECT().FavoriteHypercars(gomock.Any(), "acc-1", 0, 0).Return([]models.FavoriteEntry{
		{Hypercar: car(carA, "Bugatti", 3e6, 1479)},
		{Hypercar: car(carB, "Pagani", 2e6, 850)},
	}, 2, nil)
	accounts.EXPECT().ListFavoriteIDs(gomock.Any(), "acc-1").Return([]string{carA, carB}, nil)

	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, f models.HypercarFilter) ([]models.Hypercar, int, error) {
			assert.Equal(t, []string{carA, carB}, f.ExcludeIDs)
			assert.Equal(t, 5, f.Limit)
			switch {
			case len(f.Brands) > 0:
				assert.ElementsMatch(t, []string{"Bugatti", "Pagani"}, f.Brands)
				assert.Equal(t, "power", f.SortBy)
				return []models.Hypercar{car(carC, "Bugatti", 4e6, 1578)}, 1, nil
			case f.MinPrice != nil:
				assert.InDelta(t, 1_750_000, *f.MinPrice, 0.01)
				assert.InDelta(t, 3_250_000, *f.MaxPrice, 0.01)
				return []models.Hypercar{}, 0, nil
			default:
				assert.Equal(t, "views", f.SortBy)
				return []models.Hypercar{car(carC, "Bugatti", 4e6, 1578)}, 1, nil
			}
		})

	recs, err := svc.Recommendations(context.Background(), models.Account{ID: "acc-1"})
	require.NoError(t, err)

	assert.Len(t, recs.ByBrand, 1)
	assert.Empty(t, recs.ByPrice)
	assert.Len(t, recs.Trending, 1)
}

func TestDashboard_Recommendations_NoFavorites(t *testing.T) {
	svc, accounts, hypercars := newTestDashboard(t)

	hypercars.EXPECT().FavoriteHypercars(gomock.Any(), "acc-1", 0, 0).Return(nil, 0, nil)
	accounts.EXPECT().ListFavoriteIDs(gomock.Any(), "acc-1").Return(nil, nil)
	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, f models.HypercarFilter) ([]models.Hypercar, int, error) {
			assert.Empty(t, f.Brands)
			if f.MinPrice != nil {
				assert.InDelta(t, 1_400_000, *f.MinPrice, 0.01)
				assert.InDelta(t, 2_600_000, *f.MaxPrice, 0.01)
			}
			return []models.Hypercar{}, 0, nil
		})

	recs, err := svc.Recommendations(context.Background(), models.Account{ID: "acc-1"})
	require.NoError(t, err)

	assert.NotNil(t, recs.ByBrand)
	assert.Empty(t, recs.ByBrand)
}

// ─────────────────────────────────────────────
// Activity
// ─────────────────────────────────────────────

func TestDashboard_Activity(t *testing.T) {
	svc, _, hypercars := newTestDashboard(t)
	joined := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lastLogin := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	hypercars.EXPECT().FavoriteHypercars(gomock.Any(), "acc-1", 1, 5).Return([]models.FavoriteEntry{
		{Hypercar: car(carA, "Bugatti", 3e6, 1479), FavoritedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{Hypercar: car(carB, "Pagani", 2e6, 850), FavoritedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}, 2, nil)

	activity, err := svc.Activity(context.Background(), models.Account{ID: "acc-1", CreatedAt: joined, LastLogin: &lastLogin})
	require.NoError(t, err)

	require.Len(t, activity.RecentActivity, 4)
	types := []string{}
	for _, entry := range activity.RecentActivity {
		types = append(types, entry.Type)
	}
	assert.Equal(t, []string{"favorite", "login", "favorite", "registration"}, types)
	assert.Equal(t, "Added Bugatti Model a to favorites", activity.RecentActivity[0].Message)
	require.NotNil(t, activity.RecentActivity[0].Hypercar)
	assert.Equal(t, carA, activity.RecentActivity[0].Hypercar.ID)
	assert.Len(t, activity.RecentlyViewed, 2)
}

// ─────────────────────────────────────────────
// Compare
// ─────────────────────────────────────────────

func TestDashboard_Compare(t *testing.T) {
	svc, _, hypercars := newTestDashboard(t)

	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.HypercarFilter) ([]models.Hypercar, int, error) {
			assert.Equal(t, []string{carA, carB}, f.IDs)
			assert.Equal(t, "power", f.SortBy)
			assert.Equal(t, "desc", f.SortOrder)
			return []models.Hypercar{car(carA, "Bugatti", 3e6, 1500), car(carB, "Pagani", 2e6, 900)}, 2, nil
		})

	cmp, err := svc.Compare(context.Background(), []string{carA, " " + carB, carA, ""})
	require.NoError(t, err)

	assert.Len(t, cmp.Hypercars, 2)
	assert.Equal(t, models.MetricRange{Min: 900, Max: 1500, Avg: 1200}, cmp.Metrics.Power)
	assert.Equal(t, models.MetricRange{Min: 2e6, Max: 3e6, Avg: 2.5e6}, cmp.Metrics.Price)
	assert.Equal(t, models.MetricRange{Min: 2.5, Max: 2.5, Avg: 2.5}, cmp.Metrics.Acceleration)
}

func TestDashboard_Compare_Errors(t *testing.T) {
	svc, _, hypercars := newTestDashboard(t)
	ctx := context.Background()

	_, err := svc.Compare(ctx, []string{carA})
	assert.ErrorIs(t, err, ErrCompareIDsRequired)

	_, err = svc.Compare(ctx, []string{carA, carB, carC, "0192b3c4-0000-7000-8000-00000000000d", "0192b3c4-0000-7000-8000-00000000000e"})
	assert.ErrorIs(t, err, ErrCompareIDsRequired)

	_, err = svc.Compare(ctx, []string{carA, "not-a-uuid"})
	assert.ErrorIs(t, err, ErrValidationFailed)

	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).Return(nil, 0, nil)
	_, err = svc.Compare(ctx, []string{carA, carB})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDashboard_Search_DefaultLimit(t *testing.T) {
	svc, _, hypercars := newTestDashboard(t)

	hypercars.EXPECT().ListHypercars(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.HypercarFilter) ([]models.Hypercar, int, error) {
			assert.Equal(t, 12, f.Limit)
			assert.Equal(t, "chiron", f.Search)
			return []models.Hypercar{}, 0, nil
		})

	page, err := svc.Search(context.Background(), models.HypercarFilter{Search: "chiron"})
	require.NoError(t, err)
	assert.Equal(t, 12, page.Pagination.ItemsPerPage)
}
