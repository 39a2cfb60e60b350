package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vip-motors/internal/logger"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "users" table.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	var role string

	err := row.Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.Phone,
		&account.PasswordHash,
		&role,
		&account.IsActive,
		&account.IsEmailVerified,
		&account.LoginAttempts,
		&account.LockUntil,
		&account.EmailVerificationToken,
		&account.EmailVerificationExpires,
		&account.PasswordResetToken,
		&account.PasswordResetExpires,
		&account.LastLogin,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	account.Role = models.Role(role)

	return account, err
}

// CreateAccount inserts account and returns the stored row.
//
// A unique_violation on the email index maps to [ErrEmailAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	row := r.QueryRowContext(ctx, createAccount,
		account.ID,
		account.FirstName,
		account.LastName,
		account.Email,
		account.Phone,
		account.PasswordHash,
		string(account.Role),
		account.IsActive,
		account.IsEmailVerified,
		account.EmailVerificationToken,
		account.EmailVerificationExpires,
		account.CreatedAt,
	)

	created, err := scanAccount(row)
	if err != nil {
		r.logQueryError(ctx, err, "accountRepository.CreateAccount", "error inserting account")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Account{}, ErrEmailAlreadyExists
		}
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindAccountByEmail looks up an account by its normalized email.
func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findAccount(ctx, "accountRepository.FindAccountByEmail", findAccountByEmail, models.NormalizeEmail(email))
}

// FindAccountByID looks up an account by id. A malformed id is reported as
// not found.
func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	return r.findAccount(ctx, "accountRepository.FindAccountByID", findAccountByID, id)
}

func (r *accountRepository) findAccount(ctx context.Context, funcName, query string, arg any) (models.Account, error) {
	account, err := scanAccount(r.QueryRowContext(ctx, query, arg))
	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.Account{}, ErrAccountNotFound
	default:
		r.logQueryError(ctx, err, funcName, "error looking up account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// RecordFailedLogin implements [AccountRepository].
func (r *accountRepository) RecordFailedLogin(ctx context.Context, id string, now time.Time, maxAttempts int, lockFor time.Duration) (models.LoginState, error) {
	var state models.LoginState

	err := r.QueryRowContext(ctx, recordFailedLogin, id, now, maxAttempts, now.Add(lockFor)).
		Scan(&state.LoginAttempts, &state.LockUntil)
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return models.LoginState{}, ErrAccountNotFound
	default:
		r.logQueryError(ctx, err, "accountRepository.RecordFailedLogin", "error recording failed login")
		return models.LoginState{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if state.LockUntil != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "accountRepository.RecordFailedLogin").
			Str("account_id", id).
			Int("login_attempts", state.LoginAttempts).
			Time("lock_until", *state.LockUntil).
			Msg("account locked")
	}

	return state, nil
}

// RecordSuccessfulLogin implements [AccountRepository].
func (r *accountRepository) RecordSuccessfulLogin(ctx context.Context, id string, now time.Time) error {
	return r.execAffectingAccount(ctx, "accountRepository.RecordSuccessfulLogin", recordSuccessfulLogin, id, now)
}

// SetPasswordResetToken stores the digest of a new reset token.
func (r *accountRepository) SetPasswordResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	return r.execAffectingAccount(ctx, "accountRepository.SetPasswordResetToken", setPasswordResetToken, id, tokenHash, expires)
}

// ClearPasswordResetToken drops a pending reset token.
func (r *accountRepository) ClearPasswordResetToken(ctx context.Context, id string) error {
	return r.execAffectingAccount(ctx, "accountRepository.ClearPasswordResetToken", clearPasswordResetToken, id)
}

// SetEmailVerificationToken stores the digest of a new verification token.
func (r *accountRepository) SetEmailVerificationToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	return r.execAffectingAccount(ctx, "accountRepository.SetEmailVerificationToken", setEmailVerificationToken, id, tokenHash, expires)
}

func (r *accountRepository) execAffectingAccount(ctx context.Context, funcName, query string, args ...any) error {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, err, funcName, "error updating account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// ConsumePasswordResetToken implements [AccountRepository]. A token that is
// unknown, already used or expired yields [ErrTokenNotFound].
func (r *accountRepository) ConsumePasswordResetToken(ctx context.Context, tokenHash, passwordHash string, now time.Time) (models.Account, error) {
	return r.consumeToken(ctx, "accountRepository.ConsumePasswordResetToken", consumePasswordResetToken, tokenHash, passwordHash, now)
}

// ConsumeEmailVerificationToken marks the owner of tokenHash verified.
func (r *accountRepository) ConsumeEmailVerificationToken(ctx context.Context, tokenHash string, now time.Time) (models.Account, error) {
	return r.consumeToken(ctx, "accountRepository.ConsumeEmailVerificationToken", consumeEmailVerificationToken, tokenHash, now)
}

func (r *accountRepository) consumeToken(ctx context.Context, funcName, query string, args ...any) (models.Account, error) {
	account, err := scanAccount(r.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrTokenNotFound
	default:
		r.logQueryError(ctx, err, funcName, "error consuming one-time token")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// UpdateAccount applies the non-nil fields of update.
func (r *accountRepository) UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	query, args, err := buildUpdateAccountQuery(id, update, time.Now().UTC())
	if err != nil {
		return models.Account{}, err
	}

	account, err := scanAccount(r.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.Account{}, ErrAccountNotFound
	default:
		r.logQueryError(ctx, err, "accountRepository.UpdateAccount", "error updating account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// ListAccounts returns one page of accounts, newest first, and the total
// number of matches.
func (r *accountRepository) ListAccounts(ctx context.Context, filter models.AccountFilter) ([]models.Account, int, error) {
	countQuery, countArgs, err := buildCountAccountsQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.logQueryError(ctx, err, "accountRepository.ListAccounts", "error counting accounts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListAccountsQuery(filter)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logQueryError(ctx, err, "accountRepository.ListAccounts", "error listing accounts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, filter.Limit)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, total, nil
}

// ListFavoriteIDs returns the hypercar ids favorited by an account, most
// recent first. Deactivated hypercars are included.
func (r *accountRepository) ListFavoriteIDs(ctx context.Context, accountID string) ([]string, error) {
	rows, err := r.QueryContext(ctx, listFavoriteIDs, accountID)
	if err != nil {
		r.logQueryError(ctx, err, "accountRepository.ListFavoriteIDs", "error listing favorite ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
