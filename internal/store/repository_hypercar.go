// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/jackc/pgerrcode"
)

// hypercarRepository is the PostgreSQL-backed implementation of
// [HypercarRepository].
//
// Filterable attributes live in columns; the rest of the entry is a jsonb
// document. Columns always win over the document when both are read.
type hypercarRepository struct {
	*DB
	logger *logger.Logger
}

// NewHypercarRepository constructs a [HypercarRepository] backed by db.
func NewHypercarRepository(db *DB, logger *logger.Logger) HypercarRepository {
	logger.Debug().Msg("creating hypercar repository")
	return &hypercarRepository{
		DB:     db,
		logger: logger,
	}
}

func encodeDocument(car models.Hypercar) ([]byte, error) {
	document, err := json.Marshal(car)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return document, nil
}

func scanHypercar(row rowScanner, extra ...any) (models.Hypercar, error) {
	var (
		car      models.Hypercar
		status   string
		document []byte
		column   models.Hypercar
	)

	dest := []any{
		&column.ID,
		&column.Brand,
		&column.Name,
		&column.Year,
		&column.Price.Amount,
		&column.Specs.Power.Value,
		&column.Specs.TopSpeed.Value,
		&column.Specs.Acceleration.Value,
		&status,
		&column.IsFeatured,
		&column.IsActive,
		&column.Views,
		&column.Favorites,
		&document,
		&column.CreatedAt,
		&column.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return models.Hypercar{}, err
	}

	if len(document) > 0 {
		if err := json.Unmarshal(document, &car); err != nil {
			return models.Hypercar{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
	}

	car.ID = column.ID
	car.Brand = column.Brand
	car.Name = column.Name
	car.Year = column.Year
	car.Price.Amount = column.Price.Amount
	car.Specs.Power.Value = column.Specs.Power.Value
	car.Specs.TopSpeed.Value = column.Specs.TopSpeed.Value
	car.Specs.Acceleration.Value = column.Specs.Acceleration.Value
	car.Status = models.HypercarStatus(status)
	car.IsFeatured = column.IsFeatured
	car.IsActive = column.IsActive
	car.Views = column.Views
	car.Favorites = column.Favorites
	car.CreatedAt = column.CreatedAt
	car.UpdatedAt = column.UpdatedAt
	car.FullName = car.DisplayName()

	return car, nil
}

// CreateHypercar inserts car as an active entry.
func (r *hypercarRepository) CreateHypercar(ctx context.Context, car models.Hypercar) (models.Hypercar, error) {
	document, err := encodeDocument(car)
	if err != nil {
		return models.Hypercar{}, err
	}

	created, err := scanHypercar(r.QueryRowContext(ctx, createHypercar,
		car.ID,
		car.Brand,
		car.Name,
		car.Year,
		car.Price.Amount,
		car.Specs.Power.Value,
		car.Specs.TopSpeed.Value,
		car.Specs.Acceleration.Value,
		string(car.Status),
		car.IsFeatured,
		document,
		car.CreatedAt,
	))
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.CreateHypercar", "error inserting hypercar")
		return models.Hypercar{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "hypercarRepository.CreateHypercar").
		Str("hypercar_id", created.ID).
		Msg("hypercar created")

	return created, nil
}

// GetHypercar implements [HypercarRepository].
func (r *hypercarRepository) GetHypercar(ctx context.Context, id string) (models.Hypercar, error) {
	car, err := scanHypercar(r.QueryRowContext(ctx, getHypercar, id))
	switch {
	case err == nil:
		return car, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.Hypercar{}, ErrHypercarNotFound
	default:
		r.logQueryError(ctx, err, "hypercarRepository.GetHypercar", "error reading hypercar")
		return models.Hypercar{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListHypercars implements [HypercarRepository].
func (r *hypercarRepository) ListHypercars(ctx context.Context, filter models.HypercarFilter) ([]models.Hypercar, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountHypercarsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "hypercarRepository.ListHypercars").Msg("failed to create count query")
		return nil, 0, err
	}

	var total int
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.ListHypercars", "error counting hypercars")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if total == 0 {
		return []models.Hypercar{}, 0, nil
	}

	query, args, err := buildListHypercarsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "hypercarRepository.ListHypercars").Msg("failed to create list query")
		return nil, 0, err
	}

	cars, err := r.queryHypercars(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.ListHypercars", "error listing hypercars")
		return nil, 0, err
	}

	return cars, total, nil
}

func (r *hypercarRepository) queryHypercars(ctx context.Context, query string, args ...any) ([]models.Hypercar, error) {
	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cars := make([]models.Hypercar, 0)
	for rows.Next() {
		car, scanErr := scanHypercar(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		cars = append(cars, car)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cars, nil
}

// UpdateHypercar replaces every writable attribute of an active entry.
func (r *hypercarRepository) UpdateHypercar(ctx context.Context, car models.Hypercar) (models.Hypercar, error) {
	document, err := encodeDocument(car)
	if err != nil {
		return models.Hypercar{}, err
	}

	updated, err := scanHypercar(r.QueryRowContext(ctx, updateHypercar,
		car.ID,
		car.Brand,
		car.Name,
		car.Year,
		car.Price.Amount,
		car.Specs.Power.Value,
		car.Specs.TopSpeed.Value,
		car.Specs.Acceleration.Value,
		string(car.Status),
		car.IsFeatured,
		document,
		car.UpdatedAt,
	))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Hypercar{}, ErrHypercarNotFound
	default:
		r.logQueryError(ctx, err, "hypercarRepository.UpdateHypercar", "error updating hypercar")
		return models.Hypercar{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeactivateHypercar soft-deletes an active entry.
func (r *hypercarRepository) DeactivateHypercar(ctx context.Context, id string) error {
	return r.execAffectingHypercar(ctx, "hypercarRepository.DeactivateHypercar", deactivateHypercar, id)
}

// IncrementViews bumps the view counter of an active entry.
func (r *hypercarRepository) IncrementViews(ctx context.Context, id string) error {
	return r.execAffectingHypercar(ctx, "hypercarRepository.IncrementViews", incrementViews, id)
}

func (r *hypercarRepository) execAffectingHypercar(ctx context.Context, funcName, query string, args ...any) error {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrHypercarNotFound
		}
		r.logQueryError(ctx, err, funcName, "error updating hypercar")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrHypercarNotFound
	}

	return nil
}

// ListBrands returns the distinct brands of active entries, sorted.
func (r *hypercarRepository) ListBrands(ctx context.Context) ([]string, error) {
	rows, err := r.QueryContext(ctx, listBrands)
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.ListBrands", "error listing brands")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	brands := make([]string, 0)
	for rows.Next() {
		var brand string
		if err = rows.Scan(&brand); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		brands = append(brands, brand)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return brands, nil
}

// Stats aggregates the active catalog: overall figures, per brand (largest
// first) and per status.
func (r *hypercarRepository) Stats(ctx context.Context) (models.HypercarStats, error) {
	stats := models.HypercarStats{
		BrandStats:  make([]models.BrandStat, 0),
		StatusStats: make([]models.StatusStat, 0),
	}

	overview := &stats.Overview
	err := r.QueryRowContext(ctx, catalogOverview).Scan(
		&overview.TotalHypercars,
		&overview.TotalValue,
		&overview.AvgPrice,
		&overview.MaxPower,
		&overview.MaxSpeed,
		&overview.AvgAcceleration,
	)
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.Stats", "error aggregating catalog")
		return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	brandQuery, brandArgs, err := buildBrandStatsQuery()
	if err != nil {
		return models.HypercarStats{}, err
	}

	brandRows, err := r.QueryContext(ctx, brandQuery, brandArgs...)
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.Stats", "error aggregating brands")
		return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer brandRows.Close()

	for brandRows.Next() {
		var stat models.BrandStat
		if err = brandRows.Scan(&stat.Brand, &stat.Count, &stat.AvgPrice, &stat.MaxPower); err != nil {
			return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats.BrandStats = append(stats.BrandStats, stat)
	}
	if err = brandRows.Err(); err != nil {
		return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	statusRows, err := r.QueryContext(ctx, statusStats)
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.Stats", "error aggregating statuses")
		return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var (
			status string
			count  int
		)
		if err = statusRows.Scan(&status, &count); err != nil {
			return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stats.StatusStats = append(stats.StatusStats, models.StatusStat{Status: models.HypercarStatus(status), Count: count})
	}
	if err = statusRows.Err(); err != nil {
		return models.HypercarStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

// PriceDistribution fills the Count of every bucket.
func (r *hypercarRepository) PriceDistribution(ctx context.Context, buckets []models.PriceBucket) ([]models.PriceBucket, error) {
	query, args, err := buildPriceDistributionQuery(buckets)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(buckets))
	dest := make([]any, len(buckets))
	for i := range counts {
		dest[i] = &counts[i]
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(dest...); err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.PriceDistribution", "error counting price buckets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result := make([]models.PriceBucket, len(buckets))
	for i, bucket := range buckets {
		bucket.Count = counts[i]
		result[i] = bucket
	}

	return result, nil
}

// FavoriteHypercars implements [HypercarRepository].
func (r *hypercarRepository) FavoriteHypercars(ctx context.Context, accountID string, page, limit int) ([]models.FavoriteEntry, int, error) {
	countQuery, countArgs, err := buildCountFavoriteHypercarsQuery(accountID)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.FavoriteHypercars", "error counting favorites")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildFavoriteHypercarsQuery(accountID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, err, "hypercarRepository.FavoriteHypercars", "error listing favorites")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FavoriteEntry, 0)
	for rows.Next() {
		var favoritedAt time.Time
		car, scanErr := scanHypercar(rows, &favoritedAt)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, models.FavoriteEntry{Hypercar: car, FavoritedAt: favoritedAt})
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, total, nil
}

// AddFavorite records the favorite and bumps the counter in one
// transaction. Adding an existing favorite changes nothing.
func (r *hypercarRepository) AddFavorite(ctx context.Context, accountID, hypercarID string, now time.Time) (models.FavoriteResult, error) {
	result := models.FavoriteResult{IsFavorited: true}

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := tx.QueryRowContext(ctx, lockActiveHypercar, hypercarID).Scan(&result.FavoritesCount); err != nil {
			return notFoundOr(err, ErrHypercarNotFound)
		}

		inserted, err := tx.ExecContext(ctx, insertFavorite, accountID, hypercarID, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := inserted.RowsAffected(); affected == 0 {
			return nil
		}

		if err = tx.QueryRowContext(ctx, incrementFavorites, hypercarID).Scan(&result.FavoritesCount); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrHypercarNotFound) {
			r.logQueryError(ctx, err, "hypercarRepository.AddFavorite", "error adding favorite")
		}
		return models.FavoriteResult{}, err
	}

	return result, nil
}

// RemoveFavorite deletes the favorite and decrements the counter, never
// below zero. Removing a missing favorite changes nothing.
func (r *hypercarRepository) RemoveFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error) {
	result := models.FavoriteResult{IsFavorited: false}

	err := r.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := tx.QueryRowContext(ctx, lockHypercar, hypercarID).Scan(&result.FavoritesCount); err != nil {
			return notFoundOr(err, ErrHypercarNotFound)
		}

		deleted, err := tx.ExecContext(ctx, deleteFavorite, accountID, hypercarID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := deleted.RowsAffected(); affected == 0 {
			return nil
		}

		if err = tx.QueryRowContext(ctx, decrementFavorites, hypercarID).Scan(&result.FavoritesCount); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrHypercarNotFound) {
			r.logQueryError(ctx, err, "hypercarRepository.RemoveFavorite", "error removing favorite")
		}
		return models.FavoriteResult{}, err
	}

	return result, nil
}

// notFoundOr maps a missing row or malformed uuid to notFound and wraps any
// other error.
func notFoundOr(err, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation {
		return notFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
