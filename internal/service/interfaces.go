package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/vip-motors/models"
)

// AuthService owns registration, login with lockout, the session tokens and
// the one-time reset and verification tokens.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	// LoginAdmin is Login restricted to the admin and moderator roles.
	LoginAdmin(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	RegisterAdmin(ctx context.Context, request models.AdminRegisterRequest) (models.Account, error)

	Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error)
	// Authenticate resolves the account behind an access token.
	Authenticate(ctx context.Context, accessToken string) (models.Account, error)

	RequestPasswordReset(ctx context.Context, request models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, request models.VerifyEmailRequest) (models.Account, error)
	ResendVerification(ctx context.Context, account models.Account) error
}

// UserService manages account profiles, both self-service and
// administrative.
type UserService interface {
	GetAccount(ctx context.Context, id string) (models.Account, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error)
	DeactivateAccount(ctx context.Context, id string) error
	Favorites(ctx context.Context, accountID string) ([]models.Hypercar, error)

	ListAccounts(ctx context.Context, filter models.AccountFilter) (models.AccountPage, error)
	UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error)
}

// HypercarService serves the catalog.
type HypercarService interface {
	List(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error)
	Featured(ctx context.Context, limit int) ([]models.Hypercar, error)
	// Get returns an active entry; countView bumps its view counter.
	Get(ctx context.Context, id string, countView bool) (models.Hypercar, error)
	Create(ctx context.Context, car models.Hypercar) (models.Hypercar, error)
	// Update merges a JSON patch into the stored entry.
	Update(ctx context.Context, id string, patch json.RawMessage) (models.Hypercar, error)
	Delete(ctx context.Context, id string) error

	Brands(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (models.HypercarStats, error)

	AddFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error)
	RemoveFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error)
}

// DashboardService builds the read models of the account dashboard.
type DashboardService interface {
	Overview(ctx context.Context, account models.Account) (models.DashboardOverview, error)
	Favorites(ctx context.Context, account models.Account, page, limit int) (models.HypercarPage, error)
	Recommendations(ctx context.Context, account models.Account) (models.Recommendations, error)
	Activity(ctx context.Context, account models.Account) (models.Activity, error)
	Search(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error)
	Compare(ctx context.Context, ids []string) (models.Comparison, error)
}

// MediaService hands out object storage upload targets for catalog images.
type MediaService interface {
	PresignImageUpload(ctx context.Context, hypercarID, contentType string) (models.UploadURL, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper is the [UserService] counterpart of AuthServiceWrapper.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
