package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vip-motors/internal/crypto"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/service"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
)

// demoFavorites is how many of the seeded cars the demo user favorites.
const demoFavorites = 3

//go:embed hypercars.json
var sampleHypercars []byte

type seedAccount struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Role      models.Role
}

type seeder struct {
	accounts store.AccountRepository
	catalog  service.HypercarService
	hasher   crypto.PasswordHasher

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

func newSeeder(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) *seeder {
	return &seeder{
		accounts: storages.AccountRepository,
		catalog:  service.NewHypercarService(storages.HypercarRepository, logger),
		hasher:   hasher,
		newID:    utils.NewUUIDGenerator().Generate,
		now:      time.Now,
		logger:   logger,
	}
}

func loadHypercars() ([]models.Hypercar, error) {
	var cars []models.Hypercar
	if err := json.Unmarshal(sampleHypercars, &cars); err != nil {
		return nil, fmt.Errorf("error decoding sample hypercars: %w", err)
	}
	return cars, nil
}

// seed is idempotent: the catalog is filled only while it is empty and
// accounts that already exist are left untouched.
func (s *seeder) seed(ctx context.Context, cars []models.Hypercar, admin, demo seedAccount) error {
	created, err := s.seedHypercars(ctx, cars)
	if err != nil {
		return err
	}

	if _, _, err = s.ensureAccount(ctx, admin); err != nil {
		return err
	}

	user, isNew, err := s.ensureAccount(ctx, demo)
	if err != nil {
		return err
	}
	if !isNew {
		return nil
	}

	for _, car := range created[:min(len(created), demoFavorites)] {
		if _, err = s.catalog.AddFavorite(ctx, user.ID, car.ID); err != nil {
			return fmt.Errorf("error adding demo favorite: %w", err)
		}
	}
	s.logger.Info().Int("count", min(len(created), demoFavorites)).Msg("added favorites to demo user")

	return nil
}

func (s *seeder) seedHypercars(ctx context.Context, cars []models.Hypercar) ([]models.Hypercar, error) {
	existing, err := s.catalog.List(ctx, models.HypercarFilter{Page: 1, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}
	if existing.Pagination.TotalItems > 0 {
		s.logger.Info().Int("total", existing.Pagination.TotalItems).Msg("catalog is not empty, skipping hypercars")
		return nil, nil
	}

	created := make([]models.Hypercar, 0, len(cars))
	for _, car := range cars {
		saved, err := s.catalog.Create(ctx, car)
		if err != nil {
			return nil, fmt.Errorf("error creating %s %s: %w", car.Brand, car.Name, err)
		}
		created = append(created, saved)
	}
	s.logger.Info().Int("count", len(created)).Msg("created hypercars")

	return created, nil
}

func (s *seeder) ensureAccount(ctx context.Context, seed seedAccount) (models.Account, bool, error) {
	email := models.NormalizeEmail(seed.Email)

	account, err := s.accounts.FindAccountByEmail(ctx, email)
	if err == nil {
		s.logger.Info().Str("email", email).Msg("account exists, skipping")
		return account, false, nil
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, false, fmt.Errorf("error looking up %s: %w", email, err)
	}

	digest, err := s.hasher.Hash(ctx, seed.Password)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("error hashing password: %w", err)
	}

	account, err = s.accounts.CreateAccount(ctx, models.Account{
		ID:              s.newID(),
		FirstName:       seed.FirstName,
		LastName:        seed.LastName,
		Email:           email,
		Phone:           seed.Phone,
		PasswordHash:    digest,
		Role:            seed.Role,
		IsActive:        true,
		IsEmailVerified: true,
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		return models.Account{}, false, fmt.Errorf("error creating %s: %w", email, err)
	}
	s.logger.Info().Str("email", email).Str("role", string(seed.Role)).Msg("created account")

	return account, true, nil
}
