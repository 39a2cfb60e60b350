// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
)

const (
	defaultHypercarPageSize = 10
	defaultFeaturedLimit    = 6
)

// hypercarService validates entries itself instead of through a wrapper:
// an update can only be checked after the patch is merged into the stored
// entry and defaults are applied.
type hypercarService struct {
	hypercars store.HypercarRepository
	validator validators.Validator

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

// NewHypercarService constructs a HypercarService.
func NewHypercarService(hypercars store.HypercarRepository, logger *logger.Logger) HypercarService {
	return &hypercarService{
		hypercars: hypercars,
		validator: validators.NewHypercarValidator(),
		newID:     utils.NewUUIDGenerator().Generate,
		now:       time.Now,
		logger:    logger,
	}
}

// List returns one page of active entries. Page and limit are clamped; an
// unknown sort key is a validation error.
func (s *hypercarService) List(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error) {
	return listPage(ctx, s.hypercars, filter, defaultHypercarPageSize)
}

func listPage(ctx context.Context, hypercars store.HypercarRepository, filter models.HypercarFilter, defaultLimit int) (models.HypercarPage, error) {
	if _, ok := store.HypercarSortColumn(filter.SortBy); !ok {
		return models.HypercarPage{}, fmt.Errorf("%w: %w", ErrValidationFailed, validators.ValidationErrors{
			{Field: "sortBy", Message: fmt.Sprintf("Cannot sort by %q", filter.SortBy)},
		})
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, defaultLimit)

	cars, total, err := hypercars.ListHypercars(ctx, filter)
	if err != nil {
		return models.HypercarPage{}, fmt.Errorf("error listing hypercars: %w", err)
	}

	return models.HypercarPage{
		Hypercars:  cars,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Featured returns the newest featured entries.
func (s *hypercarService) Featured(ctx context.Context, limit int) ([]models.Hypercar, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultFeaturedLimit
	}

	featured := true
	cars, _, err := s.hypercars.ListHypercars(ctx, models.HypercarFilter{Page: 1, Limit: limit, Featured: &featured})
	if err != nil {
		return nil, fmt.Errorf("error listing featured hypercars: %w", err)
	}

	return cars, nil
}

// Get returns an active entry. A failed view count is logged and does not
// fail the read.
func (s *hypercarService) Get(ctx context.Context, id string, countView bool) (models.Hypercar, error) {
	car, err := s.activeHypercar(ctx, id)
	if err != nil {
		return models.Hypercar{}, err
	}

	if countView {
		if err = s.hypercars.IncrementViews(ctx, id); err != nil {
			logger.FromContext(ctx).Err(err).Str("hypercar_id", id).Msg("view was not counted")
		} else {
			car.Views++
		}
	}

	return car, nil
}

func (s *hypercarService) activeHypercar(ctx context.Context, id string) (models.Hypercar, error) {
	car, err := s.hypercars.GetHypercar(ctx, id)
	if err != nil {
		return models.Hypercar{}, hypercarLookupError(err)
	}
	if !car.IsActive {
		return models.Hypercar{}, ErrNotFound
	}

	return car, nil
}

// Create stores a new active entry. Store-owned fields of car are ignored.
func (s *hypercarService) Create(ctx context.Context, car models.Hypercar) (models.Hypercar, error) {
	applyHypercarDefaults(&car)
	if err := s.validator.Validate(ctx, car); err != nil {
		return models.Hypercar{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	car.ID = s.newID()
	car.IsActive = true
	car.Views = 0
	car.Favorites = 0
	car.CreatedAt = s.now().UTC()
	car.UpdatedAt = car.CreatedAt

	created, err := s.hypercars.CreateHypercar(ctx, car)
	if err != nil {
		return models.Hypercar{}, fmt.Errorf("error creating hypercar: %w", err)
	}

	return created, nil
}

// Update merges patch into the stored entry, reapplies defaults and
// validates the result as a whole.
func (s *hypercarService) Update(ctx context.Context, id string, patch json.RawMessage) (models.Hypercar, error) {
	current, err := s.activeHypercar(ctx, id)
	if err != nil {
		return models.Hypercar{}, err
	}

	merged, err := mergeHypercarPatch(current, patch)
	if err != nil {
		return models.Hypercar{}, fmt.Errorf("%w: %w", ErrValidationFailed, validators.ValidationErrors{
			{Field: "body", Message: "Request body must be a JSON object matching the hypercar shape"},
		})
	}

	merged.ID = current.ID
	merged.IsActive = current.IsActive
	merged.Views = current.Views
	merged.Favorites = current.Favorites
	merged.CreatedAt = current.CreatedAt

	clearStaleFormatting(current, &merged)
	applyHypercarDefaults(&merged)
	if err = s.validator.Validate(ctx, merged); err != nil {
		return models.Hypercar{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	updated, err := s.hypercars.UpdateHypercar(ctx, merged)
	if errors.Is(err, store.ErrHypercarNotFound) {
		return models.Hypercar{}, ErrNotFound
	}
	if err != nil {
		return models.Hypercar{}, fmt.Errorf("error updating hypercar: %w", err)
	}

	logger.FromContext(ctx).Info().Str("hypercar_id", id).Msg("hypercar updated")
	return updated, nil
}

// Delete deactivates an entry. Favorites pointing at it are kept.
func (s *hypercarService) Delete(ctx context.Context, id string) error {
	err := s.hypercars.DeactivateHypercar(ctx, id)
	if errors.Is(err, store.ErrHypercarNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting hypercar: %w", err)
	}

	logger.FromContext(ctx).Info().Str("hypercar_id", id).Msg("hypercar deactivated")
	return nil
}

func (s *hypercarService) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.hypercars.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing brands: %w", err)
	}
	return brands, nil
}

func (s *hypercarService) Stats(ctx context.Context) (models.HypercarStats, error) {
	stats, err := s.hypercars.Stats(ctx)
	if err != nil {
		return models.HypercarStats{}, fmt.Errorf("error aggregating catalog: %w", err)
	}
	return stats, nil
}

// AddFavorite is idempotent.
func (s *hypercarService) AddFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error) {
	result, err := s.hypercars.AddFavorite(ctx, accountID, hypercarID, s.now().UTC())
	if errors.Is(err, store.ErrHypercarNotFound) {
		return models.FavoriteResult{}, ErrNotFound
	}
	if err != nil {
		return models.FavoriteResult{}, fmt.Errorf("error adding favorite: %w", err)
	}
	return result, nil
}

// RemoveFavorite is idempotent.
func (s *hypercarService) RemoveFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error) {
	result, err := s.hypercars.RemoveFavorite(ctx, accountID, hypercarID)
	if errors.Is(err, store.ErrHypercarNotFound) {
		return models.FavoriteResult{}, ErrNotFound
	}
	if err != nil {
		return models.FavoriteResult{}, fmt.Errorf("error removing favorite: %w", err)
	}
	return result, nil
}

func hypercarLookupError(err error) error {
	if errors.Is(err, store.ErrHypercarNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("error reading hypercar: %w", err)
}

// mergeHypercarPatch overlays the keys present in patch onto current. Arrays
// in the patch replace the stored ones element for element.
func mergeHypercarPatch(current models.Hypercar, patch json.RawMessage) (models.Hypercar, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(patch, &keys); err != nil {
		return models.Hypercar{}, err
	}
	if keys == nil {
		return models.Hypercar{}, errors.New("patch is not a JSON object")
	}

	merged := current
	merged.Images = slices.Clone(current.Images)
	merged.Features = slices.Clone(current.Features)
	merged.Tags = slices.Clone(current.Tags)
	if _, ok := keys["images"]; ok {
		merged.Images = nil
	}
	if _, ok := keys["features"]; ok {
		merged.Features = nil
	}
	if _, ok := keys["tags"]; ok {
		merged.Tags = nil
	}

	if err := json.Unmarshal(patch, &merged); err != nil {
		return models.Hypercar{}, err
	}

	return merged, nil
}
