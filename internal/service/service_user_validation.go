package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
)

// UserValidationService validates profile and administrative updates before
// they reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func (v *UserValidationService) GetAccount(ctx context.Context, id string) (models.Account, error) {
	return v.inner.GetAccount(ctx, id)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return v.inner.UpdateProfile(ctx, id, update)
}

func (v *UserValidationService) DeactivateAccount(ctx context.Context, id string) error {
	return v.inner.DeactivateAccount(ctx, id)
}

func (v *UserValidationService) Favorites(ctx context.Context, accountID string) ([]models.Hypercar, error) {
	return v.inner.Favorites(ctx, accountID)
}

func (v *UserValidationService) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.AccountPage, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return models.AccountPage{}, fmt.Errorf("%w: unknown role %q", ErrValidationFailed, filter.Role)
	}
	return v.inner.ListAccounts(ctx, filter)
}

func (v *UserValidationService) UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return v.inner.UpdateAccount(ctx, id, update)
}
