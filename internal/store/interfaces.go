package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vip-motors/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts together with their lockout and
// one-time token state.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, id string) (models.Account, error)

	// RecordFailedLogin increments the failed login counter in a single
	// statement. The counter restarts at 1 when a previous lock has expired;
	// reaching maxAttempts sets lock_until to now+lockFor.
	RecordFailedLogin(ctx context.Context, id string, now time.Time, maxAttempts int, lockFor time.Duration) (models.LoginState, error)
	// RecordSuccessfulLogin clears lockout state and stamps last_login.
	RecordSuccessfulLogin(ctx context.Context, id string, now time.Time) error

	SetPasswordResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	ClearPasswordResetToken(ctx context.Context, id string) error
	// ConsumePasswordResetToken swaps the password hash and clears the token
	// and lockout state if tokenHash matches an unexpired token.
	ConsumePasswordResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (models.Account, error)

	SetEmailVerificationToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	ConsumeEmailVerificationToken(ctx context.Context, tokenHash string, now time.Time) (models.Account, error)

	UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error)
	ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, int, error)
	ListFavoriteIDs(ctx context.Context, accountID string) ([]string, error)
}

// HypercarRepository persists catalog entries and favorites bookkeeping.
type HypercarRepository interface {
	CreateHypercar(ctx context.Context, car models.Hypercar) (models.Hypercar, error)
	// GetHypercar returns the entry regardless of its active flag.
	GetHypercar(ctx context.Context, id string) (models.Hypercar, error)
	// ListHypercars returns one page of active entries and the total number
	// of matches.
	ListHypercars(ctx context.Context, filter models.HypercarFilter) ([]models.Hypercar, int, error)
	UpdateHypercar(ctx context.Context, car models.Hypercar) (models.Hypercar, error)
	DeactivateHypercar(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error

	ListBrands(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (models.HypercarStats, error)
	PriceDistribution(ctx context.Context, buckets []models.PriceBucket) ([]models.PriceBucket, error)

	// FavoriteHypercars lists the active favorites of an account, newest
	// first. limit 0 returns all of them.
	FavoriteHypercars(ctx context.Context, accountID string, page, limit int) ([]models.FavoriteEntry, int, error)
	AddFavorite(ctx context.Context, accountID, hypercarID string, now time.Time) (models.FavoriteResult, error)
	RemoveFavorite(ctx context.Context, accountID, hypercarID string) (models.FavoriteResult, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
