package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithHypercars(t *testing.T, hypercars *mockHypercarService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{HypercarService: hypercars})
}

func chiron() models.Hypercar {
	return models.Hypercar{
		ID: testHypercarID, Brand: "Bugatti", Name: "Chiron", Year: 2023, FullName: "Bugatti Chiron",
		Price:    models.Price{Amount: 3_000_000, Currency: "USD", Formatted: "USD 3,000,000"},
		Status:   models.StatusAvailable,
		IsActive: true,
	}
}

// ─────────────────────────────────────────────
// listHypercars
// ─────────────────────────────────────────────

func TestListHypercars_ParsesQuery(t *testing.T) {
	var got models.HypercarFilter
	h := newHandlerWithHypercars(t, &mockHypercarService{
		listFn: func(_ context.Context, filter models.HypercarFilter) (models.HypercarPage, error) {
			got = filter
			return models.HypercarPage{
				Hypercars:  []models.Hypercar{chiron()},
				Pagination: models.NewPagination(2, 5, 11),
			}, nil
		},
	})

	rr := serve(t, h, http.MethodGet,
		"/api/hypercars?page=2&limit=5&brand=Bugatti&minPrice=1000000&maxPower=2000&featured=true&search=chi&sortBy=price&sortOrder=asc&status=available",
		"", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.Limit)
	assert.Equal(t, "Bugatti", got.Brand)
	require.NotNil(t, got.MinPrice)
	assert.InDelta(t, 1_000_000, *got.MinPrice, 0.001)
	assert.Nil(t, got.MaxPrice)
	require.NotNil(t, got.MaxPower)
	assert.InDelta(t, 2000, *got.MaxPower, 0.001)
	require.NotNil(t, got.Featured)
	assert.True(t, *got.Featured)
	assert.Equal(t, "chi", got.Search)
	assert.Equal(t, "price", got.SortBy)
	assert.Equal(t, "asc", got.SortOrder)
	assert.Equal(t, models.StatusAvailable, got.Status)

	var page models.HypercarPage
	readData(t, rr, &page)
	require.Len(t, page.Hypercars, 1)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestListHypercars_MalformedQuery(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{})

	rr := serve(t, h, http.MethodGet, "/api/hypercars?page=two&minPrice=cheap&featured=maybe", "", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := readEnvelope(t, rr)
	assert.Equal(t, "Validation failed", env.Error)
	require.Len(t, env.Details, 3)
	assert.Equal(t, "page", env.Details[0].Field)
	assert.Equal(t, "featured", env.Details[1].Field)
	assert.Equal(t, "minPrice", env.Details[2].Field)
}

func TestListHypercars_UnknownSort(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		listFn: func(context.Context, models.HypercarFilter) (models.HypercarPage, error) {
			return models.HypercarPage{}, fmt.Errorf("%w: %w", service.ErrValidationFailed, validators.ValidationErrors{
				{Field: "sortBy", Message: `Cannot sort by "password_hash"`},
			})
		},
	})

	rr := serve(t, h, http.MethodGet, "/api/hypercars?sortBy=password_hash", "", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := readEnvelope(t, rr)
	require.Len(t, env.Details, 1)
	assert.Equal(t, "sortBy", env.Details[0].Field)
}

// ─────────────────────────────────────────────
// featured / brands / stats
// ─────────────────────────────────────────────

func TestFeaturedHypercars(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		featuredFn: func(_ context.Context, limit int) ([]models.Hypercar, error) {
			assert.Equal(t, 3, limit)
			return []models.Hypercar{chiron()}, nil
		},
	})

	rr := serve(t, h, http.MethodGet, "/api/hypercars/featured?limit=3", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var cars []models.Hypercar
	readData(t, rr, &cars)
	require.Len(t, cars, 1)
	assert.Equal(t, "Bugatti Chiron", cars[0].FullName)
}

func TestHypercarBrands(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		brandsFn: func(context.Context) ([]string, error) {
			return []string{"Bugatti", "Koenigsegg", "Pagani"}, nil
		},
	})

	rr := serve(t, h, http.MethodGet, "/api/hypercars/brands", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var brands []string
	readData(t, rr, &brands)
	assert.Equal(t, []string{"Bugatti", "Koenigsegg", "Pagani"}, brands)
}

func TestHypercarStats_StoreFailureInProduction(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		statsFn: func(context.Context) (models.HypercarStats, error) {
			return models.HypercarStats{}, errors.New("pq: relation does not exist")
		},
	})
	h.exposeErrors = false

	rr := serve(t, h, http.MethodGet, "/api/hypercars/stats", "", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	env := readEnvelope(t, rr)
	assert.Equal(t, "Internal Server Error", env.Error)
	assert.NotContains(t, rr.Body.String(), "relation")
}

// ─────────────────────────────────────────────
// getHypercar
// ─────────────────────────────────────────────

func TestGetHypercar_CountsViewsOnlyForAuthenticatedReaders(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantCount bool
	}{
		{name: "anonymous", token: "", wantCount: false},
		{name: "invalid token is treated as anonymous", token: "forged", wantCount: false},
		{name: "authenticated", token: testUserToken, wantCount: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var counted bool
			h := newHandlerWithHypercars(t, &mockHypercarService{
				getFn: func(_ context.Context, id string, countView bool) (models.Hypercar, error) {
					assert.Equal(t, testHypercarID, id)
					counted = countView
					return chiron(), nil
				},
			})

			rr := serve(t, h, http.MethodGet, "/api/hypercars/"+testHypercarID, "", tt.token)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantCount, counted)
		})
	}
}

func TestGetHypercar_NotFound(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "unknown id", path: "/api/hypercars/" + testHypercarID},
		{name: "malformed id", path: "/api/hypercars/not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithHypercars(t, &mockHypercarService{
				getFn: func(context.Context, string, bool) (models.Hypercar, error) {
					return models.Hypercar{}, service.ErrNotFound
				},
			})

			rr := serve(t, h, http.MethodGet, tt.path, "", "")

			require.Equal(t, http.StatusNotFound, rr.Code)
			env := readEnvelope(t, rr)
			assert.Equal(t, "Hypercar not found", env.Error)
			assert.Equal(t, "The requested hypercar does not exist", env.Message)
		})
	}
}

// ─────────────────────────────────────────────
// writes
// ─────────────────────────────────────────────

func TestCreateHypercar(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		createFn: func(_ context.Context, car models.Hypercar) (models.Hypercar, error) {
			assert.Equal(t, "Bugatti", car.Brand)
			assert.InDelta(t, 3_000_000, car.Price.Amount, 0.001)
			return chiron(), nil
		},
	})

	rr := serve(t, h, http.MethodPost, "/api/hypercars",
		`{"brand":"Bugatti","name":"Chiron","year":2023,"price":{"amount":3000000}}`, testAdminToken)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Hypercar created successfully", readEnvelope(t, rr).Message)
}

func TestUpdateHypercar_ForwardsRawPatch(t *testing.T) {
	const patch = `{"price":{"amount":3100000},"tags":["w16"]}`
	h := newHandlerWithHypercars(t, &mockHypercarService{
		updateFn: func(_ context.Context, id string, raw json.RawMessage) (models.Hypercar, error) {
			assert.Equal(t, testHypercarID, id)
			assert.JSONEq(t, patch, string(raw))
			return chiron(), nil
		},
	})

	rr := serve(t, h, http.MethodPut, "/api/hypercars/"+testHypercarID, patch, testAdminToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hypercar updated successfully", readEnvelope(t, rr).Message)
}

func TestDeleteHypercar(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		deleteFn: func(_ context.Context, id string) error {
			if id != testHypercarID {
				return service.ErrNotFound
			}
			return nil
		},
	})

	rr := serve(t, h, http.MethodDelete, "/api/hypercars/"+testHypercarID, "", testAdminToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hypercar deleted successfully", readEnvelope(t, rr).Message)

	rr = serve(t, h, http.MethodDelete, "/api/hypercars/"+testAccountID, "", testAdminToken)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// favorites
// ─────────────────────────────────────────────

func TestFavorites_Toggle(t *testing.T) {
	h := newHandlerWithHypercars(t, &mockHypercarService{
		addFavoriteFn: func(_ context.Context, accountID, hypercarID string) (models.FavoriteResult, error) {
			assert.Equal(t, testUser.ID, accountID)
			assert.Equal(t, testHypercarID, hypercarID)
			return models.FavoriteResult{IsFavorited: true, FavoritesCount: 4}, nil
		},
		removeFavoriteFn: func(context.Context, string, string) (models.FavoriteResult, error) {
			return models.FavoriteResult{IsFavorited: false, FavoritesCount: 0}, nil
		},
	})

	rr := serve(t, h, http.MethodPost, "/api/hypercars/"+testHypercarID+"/favorite", "", testUserToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hypercar added to favorites", readEnvelope(t, rr).Message)
	var added favoritePayload
	readData(t, rr, &added)
	assert.Equal(t, favoritePayload{HypercarID: testHypercarID, FavoriteResult: models.FavoriteResult{IsFavorited: true, FavoritesCount: 4}}, added)

	rr = serve(t, h, http.MethodDelete, "/api/hypercars/"+testHypercarID+"/favorite", "", testUserToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hypercar removed from favorites", readEnvelope(t, rr).Message)
}

// ─────────────────────────────────────────────
// image upload
// ─────────────────────────────────────────────

func TestImageUploadURL(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "disabled", err: service.ErrMediaDisabled, wantStatus: http.StatusServiceUnavailable, wantError: "Image uploads unavailable"},
		{name: "gif", err: fmt.Errorf("%w: image/gif", service.ErrUnsupportedContentType), wantStatus: http.StatusBadRequest, wantError: "Unsupported content type"},
		{name: "inactive hypercar", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantError: "Hypercar not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{MediaService: &mockMediaService{
				presignFn: func(_ context.Context, id, contentType string) (models.UploadURL, error) {
					assert.Equal(t, testHypercarID, id)
					assert.Equal(t, "image/webp", contentType)
					if tt.err != nil {
						return models.UploadURL{}, tt.err
					}
					return models.UploadURL{URL: "https://bucket.s3/put", Method: http.MethodPut, Key: "hypercars/x.webp", ExpiresIn: 900}, nil
				},
			}})

			rr := serve(t, h, http.MethodPost, "/api/hypercars/"+testHypercarID+"/images/upload-url",
				`{"contentType":"image/webp"}`, testAdminToken)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.err == nil {
				var upload models.UploadURL
				readData(t, rr, &upload)
				assert.Equal(t, 900, upload.ExpiresIn)
				return
			}
			assert.Equal(t, tt.wantError, readEnvelope(t, rr).Error)
		})
	}
}
