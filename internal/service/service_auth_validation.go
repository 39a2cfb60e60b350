package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vip-motors/internal/validators"
	"github.com/MKhiriev/vip-motors/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService. Violations are returned as
// ErrValidationFailed wrapping [validators.ValidationErrors].
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, request any) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return nil
}

func (v *AuthValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AuthResult{}, err
	}
	return v.inner.Register(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AuthResult{}, err
	}
	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) LoginAdmin(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.AuthResult{}, err
	}
	return v.inner.LoginAdmin(ctx, request)
}

func (v *AuthValidationService) RegisterAdmin(ctx context.Context, request models.AdminRegisterRequest) (models.Account, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Account{}, err
	}
	return v.inner.RegisterAdmin(ctx, request)
}

func (v *AuthValidationService) Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.TokenPair{}, err
	}
	return v.inner.Refresh(ctx, request)
}

// Authenticate has nothing to validate; the token is checked by the inner
// service.
func (v *AuthValidationService) Authenticate(ctx context.Context, accessToken string) (models.Account, error) {
	return v.inner.Authenticate(ctx, accessToken)
}

func (v *AuthValidationService) RequestPasswordReset(ctx context.Context, request models.ForgotPasswordRequest) error {
	if err := v.validate(ctx, request); err != nil {
		return err
	}
	return v.inner.RequestPasswordReset(ctx, request)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	if err := v.validate(ctx, request); err != nil {
		return err
	}
	return v.inner.ResetPassword(ctx, request)
}

func (v *AuthValidationService) VerifyEmail(ctx context.Context, request models.VerifyEmailRequest) (models.Account, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Account{}, err
	}
	return v.inner.VerifyEmail(ctx, request)
}

func (v *AuthValidationService) ResendVerification(ctx context.Context, account models.Account) error {
	return v.inner.ResendVerification(ctx, account)
}
