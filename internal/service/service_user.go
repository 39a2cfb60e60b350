package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/models"
)

const (
	defaultAccountPageSize = 10
	maxPageSize            = 100
)

type userService struct {
	accounts  store.AccountRepository
	hypercars store.HypercarRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService over the account and catalog
// repositories.
func NewUserService(accounts store.AccountRepository, hypercars store.HypercarRepository, logger *logger.Logger) UserService {
	return &userService{
		accounts:  accounts,
		hypercars: hypercars,
		logger:    logger,
	}
}

// GetAccount returns the account with its favorite ids populated.
func (s *userService) GetAccount(ctx context.Context, id string) (models.Account, error) {
	account, err := s.accounts.FindAccountByID(ctx, id)
	if err != nil {
		return models.Account{}, accountLookupError(err)
	}

	favorites, err := s.accounts.ListFavoriteIDs(ctx, id)
	if err != nil {
		return models.Account{}, fmt.Errorf("error listing favorites: %w", err)
	}
	account.Favorites = favorites

	return account, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error) {
	return s.update(ctx, id, models.AccountUpdate{ProfileUpdate: update})
}

// UpdateAccount applies an administrative update.
func (s *userService) UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	return s.update(ctx, id, update)
}

func (s *userService) update(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	if update.IsEmpty() {
		return models.Account{}, ErrEmptyUpdate
	}
	trimFields(update.FirstName, update.LastName, update.Phone)

	account, err := s.accounts.UpdateAccount(ctx, id, update)
	if err != nil {
		return models.Account{}, accountLookupError(err)
	}

	logger.FromContext(ctx).Info().Str("account_id", id).Msg("account updated")
	return account, nil
}

// DeactivateAccount performs the soft delete of an account.
func (s *userService) DeactivateAccount(ctx context.Context, id string) error {
	inactive := false
	if _, err := s.accounts.UpdateAccount(ctx, id, models.AccountUpdate{IsActive: &inactive}); err != nil {
		return accountLookupError(err)
	}

	logger.FromContext(ctx).Info().Str("account_id", id).Msg("account deactivated")
	return nil
}

// Favorites returns the active hypercars the account has favorited, most
// recently favorited first.
func (s *userService) Favorites(ctx context.Context, accountID string) ([]models.Hypercar, error) {
	entries, _, err := s.hypercars.FavoriteHypercars(ctx, accountID, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing favorite hypercars: %w", err)
	}

	return favoriteCars(entries), nil
}

func (s *userService) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.AccountPage, error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit, defaultAccountPageSize)

	accounts, total, err := s.accounts.ListAccounts(ctx, filter)
	if err != nil {
		return models.AccountPage{}, fmt.Errorf("error listing accounts: %w", err)
	}

	return models.AccountPage{
		Users:      accounts,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func accountLookupError(err error) error {
	if errors.Is(err, store.ErrAccountNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("account operation failed: %w", err)
}

func trimFields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// normalizePage clamps page to at least 1 and limit to 1..maxPageSize.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = defaultLimit
	case limit > maxPageSize:
		limit = maxPageSize
	}
	return page, limit
}

func favoriteCars(entries []models.FavoriteEntry) []models.Hypercar {
	cars := make([]models.Hypercar, 0, len(entries))
	for _, entry := range entries {
		cars = append(cars, entry.Hypercar)
	}
	return cars
}
