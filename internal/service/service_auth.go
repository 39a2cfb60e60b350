package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/vip-motors/internal/adapter"
	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/crypto"
	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
)

// timingPassword is hashed once and compared against on logins for unknown
// emails, so the response time does not reveal whether an account exists.
const timingPassword = "vip-motors-timing-equalizer"

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification with lockout, session
// token issuance and the one-time token flows.
type authService struct {
	// accounts is the data-access layer for account records.
	accounts store.AccountRepository

	// hasher runs bcrypt on the worker pool.
	hasher crypto.PasswordHasher

	// notifier delivers verification, reset and welcome emails.
	notifier adapter.Notifier

	// tokens mints and parses access and refresh tokens.
	tokens *TokenIssuer

	newID       func() string
	now         func() time.Time
	frontendURL string

	maxLoginAttempts     int
	lockDuration         time.Duration
	resetTokenTTL        time.Duration
	verificationTokenTTL time.Duration

	timingMu     sync.Mutex
	timingDigest string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state except the
// lazily computed timing digest is read-only after construction.
func NewAuthService(
	accounts store.AccountRepository,
	hasher crypto.PasswordHasher,
	notifier adapter.Notifier,
	tokens *TokenIssuer,
	cfg config.Auth,
	app config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		accounts:             accounts,
		hasher:               hasher,
		notifier:             notifier,
		tokens:               tokens,
		newID:                utils.NewUUIDGenerator().Generate,
		now:                  time.Now,
		frontendURL:          strings.TrimRight(app.FrontendURL, "/"),
		maxLoginAttempts:     cfg.MaxLoginAttempts,
		lockDuration:         cfg.LockDuration,
		resetTokenTTL:        cfg.ResetTokenTTL,
		verificationTokenTTL: cfg.VerificationTokenTTL,
		logger:               logger,
	}
}

// Register creates a user account, sends the verification email and starts a
// session. A failed verification email is logged and does not fail the
// registration.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	now := a.now().UTC()

	digest, err := a.hasher.Hash(ctx, request.Password)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	rawToken, tokenHash, err := utils.GenerateToken()
	if err != nil {
		return models.AuthResult{}, err
	}
	expires := now.Add(a.verificationTokenTTL)

	account, err := a.accounts.CreateAccount(ctx, models.Account{
		ID:                       a.newID(),
		FirstName:                strings.TrimSpace(request.FirstName),
		LastName:                 strings.TrimSpace(request.LastName),
		Email:                    models.NormalizeEmail(request.Email),
		Phone:                    strings.TrimSpace(request.Phone),
		PasswordHash:             digest,
		Role:                     models.RoleUser,
		IsActive:                 true,
		EmailVerificationToken:   tokenHash,
		EmailVerificationExpires: &expires,
		CreatedAt:                now,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.AuthResult{}, ErrDuplicateAccount
		}
		return models.AuthResult{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	if err = a.sendVerification(ctx, account, rawToken); err != nil {
		log.Err(err).Str("account_id", account.ID).Msg("verification email was not sent")
	}

	log.Info().Str("account_id", account.ID).Msg("account registered")
	return a.startSession(account)
}

// Login checks credentials against the lockout policy and starts a session.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	account, err := a.authenticate(ctx, request.Email, request.Password)
	if err != nil {
		return models.AuthResult{}, err
	}

	return a.startSession(account)
}

// LoginAdmin is Login for staff accounts. A regular account is reported as
// invalid credentials without touching its lockout counter.
func (a *authService) LoginAdmin(ctx context.Context, request models.LoginRequest) (models.AuthResult, error) {
	account, err := a.authenticate(ctx, request.Email, request.Password, models.RoleAdmin, models.RoleModerator)
	if err != nil {
		return models.AuthResult{}, err
	}

	return a.startSession(account)
}

// authenticate runs the login checks in order: lookup, lock, active flag,
// password. When roles are given the account must hold one of them.
func (a *authService) authenticate(ctx context.Context, email, password string, roles ...models.Role) (models.Account, error) {
	log := logger.FromContext(ctx)
	now := a.now().UTC()

	account, err := a.accounts.FindAccountByEmail(ctx, email)
	if errors.Is(err, store.ErrAccountNotFound) {
		a.equalizeTiming(ctx, password)
		return models.Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if len(roles) > 0 && !account.HasRole(roles...) {
		a.equalizeTiming(ctx, password)
		log.Warn().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("staff login attempt by non-staff account")
		return models.Account{}, ErrInvalidCredentials
	}

	if account.IsLocked(now) {
		log.Warn().Str("account_id", account.ID).Time("lock_until", *account.LockUntil).Msg("login attempt on locked account")
		return models.Account{}, ErrAccountLocked
	}
	if !account.IsActive {
		return models.Account{}, ErrAccountInactive
	}

	ok, err := a.hasher.Compare(ctx, account.PasswordHash, password)
	if err != nil {
		return models.Account{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		state, recordErr := a.accounts.RecordFailedLogin(ctx, account.ID, now, a.maxLoginAttempts, a.lockDuration)
		if recordErr != nil {
			log.Err(recordErr).Str("account_id", account.ID).Msg("failed login was not recorded")
		} else {
			log.Info().Str("account_id", account.ID).Int("login_attempts", state.LoginAttempts).Msg("wrong password")
		}
		return models.Account{}, ErrInvalidCredentials
	}

	if err = a.accounts.RecordSuccessfulLogin(ctx, account.ID, now); err != nil {
		return models.Account{}, fmt.Errorf("error recording login: %w", err)
	}
	account.LoginAttempts = 0
	account.LockUntil = nil
	account.LastLogin = &now

	return account, nil
}

// equalizeTiming spends one bcrypt comparison. Its result is discarded.
func (a *authService) equalizeTiming(ctx context.Context, password string) {
	digest, err := a.timingHash(ctx)
	if err != nil {
		return
	}

	_, _ = a.hasher.Compare(ctx, digest, password)
}

// timingHash hashes outside the lock, so concurrent first callers may each
// hash once. The first stored digest wins.
func (a *authService) timingHash(ctx context.Context) (string, error) {
	a.timingMu.Lock()
	digest := a.timingDigest
	a.timingMu.Unlock()
	if digest != "" {
		return digest, nil
	}

	digest, err := a.hasher.Hash(ctx, timingPassword)
	if err != nil {
		return "", err
	}

	a.timingMu.Lock()
	defer a.timingMu.Unlock()
	if a.timingDigest == "" {
		a.timingDigest = digest
	}
	return a.timingDigest, nil
}

func (a *authService) startSession(account models.Account) (models.AuthResult, error) {
	pair, err := a.tokens.IssuePair(account)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{User: account, TokenPair: pair}, nil
}

// RegisterAdmin creates a staff account. The name is split into first and
// last name at the first space.
func (a *authService) RegisterAdmin(ctx context.Context, request models.AdminRegisterRequest) (models.Account, error) {
	digest, err := a.hasher.Hash(ctx, request.Password)
	if err != nil {
		return models.Account{}, fmt.Errorf("error hashing password: %w", err)
	}

	firstName, lastName, _ := strings.Cut(strings.TrimSpace(request.Name), " ")

	account, err := a.accounts.CreateAccount(ctx, models.Account{
		ID:              a.newID(),
		FirstName:       firstName,
		LastName:        strings.TrimSpace(lastName),
		Email:           models.NormalizeEmail(request.Email),
		PasswordHash:    digest,
		Role:            models.RoleAdmin,
		IsActive:        true,
		IsEmailVerified: true,
		CreatedAt:       a.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.Account{}, ErrDuplicateAccount
		}
		return models.Account{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("account_id", account.ID).Msg("admin registered")
	return account, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (a *authService) Refresh(ctx context.Context, request models.RefreshRequest) (models.TokenPair, error) {
	accountID, err := a.tokens.ParseRefresh(request.RefreshToken)
	if err != nil {
		return models.TokenPair{}, err
	}

	account, err := a.accounts.FindAccountByID(ctx, accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.TokenPair{}, fmt.Errorf("%w: account no longer exists", ErrInvalidToken)
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("account search by id failed: %w", err)
	}
	if !account.IsActive {
		return models.TokenPair{}, ErrAccountInactive
	}

	return a.tokens.IssuePair(account)
}

// Authenticate implements the token verifier lookup.
func (a *authService) Authenticate(ctx context.Context, accessToken string) (models.Account, error) {
	accountID, err := a.tokens.ParseAccess(accessToken)
	if err != nil {
		return models.Account{}, err
	}

	account, err := a.accounts.FindAccountByID(ctx, accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, fmt.Errorf("%w: account no longer exists", ErrUnauthenticated)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}
	if !account.IsActive {
		return models.Account{}, fmt.Errorf("%w: account is deactivated", ErrUnauthenticated)
	}

	return account, nil
}

// RequestPasswordReset issues a reset token for an existing account. An
// unknown email succeeds silently. If the email cannot be sent the token is
// withdrawn and ErrNotificationFailed is returned.
func (a *authService) RequestPasswordReset(ctx context.Context, request models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	account, err := a.accounts.FindAccountByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Info().Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("account search by email failed: %w", err)
	}

	rawToken, tokenHash, err := utils.GenerateToken()
	if err != nil {
		return err
	}
	if err = a.accounts.SetPasswordResetToken(ctx, account.ID, tokenHash, a.now().UTC().Add(a.resetTokenTTL)); err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	err = a.notifier.Notify(ctx, models.Notification{
		Kind: models.NotificationPasswordReset,
		To:   account.Email,
		Name: account.FirstName,
		Link: a.frontendURL + "/reset-password?token=" + rawToken,
	})
	if err != nil {
		log.Err(err).Str("account_id", account.ID).Msg("password reset email was not sent")
		if clearErr := a.accounts.ClearPasswordResetToken(ctx, account.ID); clearErr != nil {
			log.Err(clearErr).Str("account_id", account.ID).Msg("reset token was not withdrawn")
		}
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

// ResetPassword consumes a reset token and replaces the password. The
// lockout state is cleared with it.
func (a *authService) ResetPassword(ctx context.Context, request models.ResetPasswordRequest) error {
	digest, err := a.hasher.Hash(ctx, request.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	account, err := a.accounts.ConsumePasswordResetToken(ctx, utils.HashToken(request.Token), digest, a.now().UTC())
	if errors.Is(err, store.ErrTokenNotFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	logger.FromContext(ctx).Info().Str("account_id", account.ID).Msg("password reset")
	return nil
}

// VerifyEmail consumes a verification token and sends the welcome email on
// a best effort basis.
func (a *authService) VerifyEmail(ctx context.Context, request models.VerifyEmailRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := a.accounts.ConsumeEmailVerificationToken(ctx, utils.HashToken(request.Token), a.now().UTC())
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.Account{}, ErrInvalidOrExpiredToken
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("error consuming verification token: %w", err)
	}

	err = a.notifier.Notify(ctx, models.Notification{
		Kind: models.NotificationWelcome,
		To:   account.Email,
		Name: account.FirstName,
	})
	if err != nil {
		log.Err(err).Str("account_id", account.ID).Msg("welcome email was not sent")
	}

	return account, nil
}

// ResendVerification replaces the pending verification token of an
// unverified account and sends a new email.
func (a *authService) ResendVerification(ctx context.Context, account models.Account) error {
	if account.IsEmailVerified {
		return ErrAlreadyVerified
	}

	rawToken, tokenHash, err := utils.GenerateToken()
	if err != nil {
		return err
	}
	expires := a.now().UTC().Add(a.verificationTokenTTL)
	if err = a.accounts.SetEmailVerificationToken(ctx, account.ID, tokenHash, expires); err != nil {
		return fmt.Errorf("error storing verification token: %w", err)
	}

	if err = a.sendVerification(ctx, account, rawToken); err != nil {
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

func (a *authService) sendVerification(ctx context.Context, account models.Account, rawToken string) error {
	return a.notifier.Notify(ctx, models.Notification{
		Kind: models.NotificationEmailVerification,
		To:   account.Email,
		Name: account.FirstName,
		Link: a.frontendURL + "/verify-email?token=" + rawToken,
	})
}
