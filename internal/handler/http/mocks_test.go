package http

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/vip-motors/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────
//
// Every method delegates to the matching field, so a test only sets the
// calls it expects. An unexpected call panics on the nil field.

type mockAuthService struct {
	registerFn           func(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error)
	loginFn              func(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	loginAdminFn         func(ctx context.Context, request models.LoginRequest) (models.AuthResult, error)
	registerAdminFn      func(ctx context.Context, request models.AdminRegisterRequest) (models.Account, error)
	refreshFn            func(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error)
	authenticateFn       func(ctx context.Context, accessToken string) (models.Account, error)
	requestResetFn       func(ctx context.Context, request models.ForgotPasswordRequest) error
	resetPasswordFn      func(ctx context.Context, request models.ResetPasswordRequest) error
	verifyEmailFn        func(ctx context.Context, request models.VerifyEmailRequest) (models.Account, error)
	resendVerificationFn func(ctx context.Context, account models.Account) error
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	return m.loginAdminFn(ctx, request)
}

func (m *mockAuthService) RegisterAdmin(ctx context.Context, request models.AdminRegisterRequest) (models.Account, error) {
	return m.registerAdminFn(ctx, request)
}

func (m *mockAuthService) Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error) {
	return m.refreshFn(ctx, request)
}

func (m *mockAuthService) Authenticate(ctx context.Context, accessToken string) (models.Account, error) {
	return m.authenticateFn(ctx, accessToken)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, request models.ForgotPasswordRequest) error {
	return m.requestResetFn(ctx, request)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	return m.resetPasswordFn(ctx, request)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, request models.VerifyEmailRequest) (models.Account, error) {
	return m.verifyEmailFn(ctx, request)
}

func (m *mockAuthService) ResendVerification(ctx context.Context, account models.Account) error {
	return m.resendVerificationFn(ctx, account)
}

type mockUserService struct {
	getAccountFn    func(ctx context.Context, id string) (models.Account, error)
	updateProfileFn func(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error)
	deactivateFn    func(ctx context.Context, id string) error
	favoritesFn     func(ctx context.Context, accountID string) ([]models.Hypercar, error)
	listAccountsFn  func(ctx context.Context, filter models.AccountFilter) (models.AccountPage, error)
	updateAccountFn func(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error)
}

func (m *mockUserService) GetAccount(ctx context.Context, id string) (models.Account, error) {
	return m.getAccountFn(ctx, id)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (models.Account, error) {
	return m.updateProfileFn(ctx, id, update)
}

func (m *mockUserService) DeactivateAccount(ctx context.Context, id string) error {
	return m.deactivateFn(ctx, id)
}

func (m *mockUserService) Favorites(ctx context.Context, accountID string) ([]models.Hypercar, error) {
	return m.favoritesFn(ctx, accountID)
}

func (m *mockUserService) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.AccountPage, error) {
	return m.listAccountsFn(ctx, filter)
}

func (m *mockUserService) UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	return m.updateAccountFn(ctx, id, update)
}

type mockHypercarService struct {
	listFn           func(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error)
	featuredFn       func(ctx context.Context, limit int) ([]models.Hypercar, error)
	getFn            func(ctx context.Context, id string, countView bool) (models.Hypercar, error)
	createFn         func(ctx context.Context, car models.Hypercar) (models.Hypercar, error)
	updateFn         func(ctx context.Context, id string, patch json.RawMessage) (models.Hypercar, error)
	deleteFn         func(ctx context.Context, id string) error
	brandsFn         func(ctx context.Context) ([]string, error)
	statsFn          func(ctx context.Context) (models.HypercarStats, error)
	addFavoriteFn    func(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error)
	removeFavoriteFn func(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error)
}

func (m *mockHypercarService) List(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error) {
	return m.listFn(ctx, filter)
}

func (m *mockHypercarService) Featured(ctx context.Context, limit int) ([]models.Hypercar, error) {
	return m.featuredFn(ctx, limit)
}

func (m *mockHypercarService) Get(ctx context.Context, id string, countView bool) (models.Hypercar, error) {
	return m.getFn(ctx, id, countView)
}

func (m *mockHypercarService) Create(ctx context.Context, car models.Hypercar) (models.Hypercar, error) {
	return m.createFn(ctx, car)
}

func (m *mockHypercarService) Update(ctx context.Context, id string, patch json.RawMessage) (models.Hypercar, error) {
	return m.updateFn(ctx, id, patch)
}

func (m *mockHypercarService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockHypercarService) Brands(ctx context.Context) ([]string, error) {
	return m.brandsFn(ctx)
}

func (m *mockHypercarService) Stats(ctx context.Context) (models.HypercarStats, error) {
	return m.statsFn(ctx)
}

func (m *mockHypercarService) AddFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error) {
	return m.addFavoriteFn(ctx, accountID, hypercarID)
}

func (m *mockHypercarService) RemoveFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error) {
	return m.removeFavoriteFn(ctx, accountID, hypercarID)
}

type mockDashboardService struct {
	overviewFn        func(ctx context.Context, account models.Account) (models.DashboardOverview, error)
	favoritesFn       func(ctx context.Context, account models.Account, page, limit int) (models.HypercarPage, error)
	recommendationsFn func(ctx context.Context, account models.Account) (models.Recommendations, error)
	activityFn        func(ctx context.Context, account models.Account) (models.Activity, error)
	searchFn          func(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error)
	compareFn         func(ctx context.Context, ids []string) (models.Comparison, error)
}

func (m *mockDashboardService) Overview(ctx context.Context, account models.Account) (models.DashboardOverview, error) {
	return m.overviewFn(ctx, account)
}

func (m *mockDashboardService) Favorites(ctx context.Context, account models.Account, page, limit int) (models.HypercarPage, error) {
	return m.favoritesFn(ctx, account, page, limit)
}

func (m *mockDashboardService) Recommendations(ctx context.Context, account models.Account) (models.Recommendations, error) {
	return m.recommendationsFn(ctx, account)
}

func (m *mockDashboardService) Activity(ctx context.Context, account models.Account) (models.Activity, error) {
	return m.activityFn(ctx, account)
}

func (m *mockDashboardService) Search(ctx context.Context, filter models.HypercarFilter) (models.HypercarPage, error) {
	return m.searchFn(ctx, filter)
}

func (m *mockDashboardService) Compare(ctx context.Context, ids []string) (models.Comparison, error) {
	return m.compareFn(ctx, ids)
}

type mockMediaService struct {
	presignFn func(ctx context.Context, hypercarID, contentType string) (models.UploadURL, error)
}

func (m *mockMediaService) PresignImageUpload(ctx context.Context, hypercarID, contentType string) (models.UploadURL, error) {
	return m.presignFn(ctx, hypercarID, contentType)
}

type mockAppInfoService struct {
	build models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.build.Version
}

func (m *mockAppInfoService) BuildInfo(_ context.Context) models.AppBuildInfo {
	return m.build
}
