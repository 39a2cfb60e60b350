package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/crypto"
	"github.com/MKhiriev/vip-motors/internal/store"
	"github.com/MKhiriev/vip-motors/models"
	"golang.org/x/crypto/bcrypt"
)

// memoryAccounts is an in-memory AccountRepository with the same lockout and
// token semantics as the PostgreSQL one.
type memoryAccounts struct {
	mu       sync.Mutex
	accounts map[string]models.Account
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{accounts: make(map[string]models.Account)}
}

func (m *memoryAccounts) get(id string) models.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[id]
}

func (m *memoryAccounts) put(account models.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *memoryAccounts) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == account.Email {
			return models.Account{}, store.ErrEmailAlreadyExists
		}
	}
	account.UpdatedAt = account.CreatedAt
	m.accounts[account.ID] = account
	return account, nil
}

func (m *memoryAccounts) FindAccountByEmail(_ context.Context, email string) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email = models.NormalizeEmail(email)
	for _, a := range m.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (m *memoryAccounts) FindAccountByID(_ context.Context, id string) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	return a, nil
}

func (m *memoryAccounts) RecordFailedLogin(_ context.Context, id string, now time.Time, maxAttempts int, lockFor time.Duration) (models.LoginState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return models.LoginState{}, store.ErrAccountNotFound
	}
	if a.LockUntil != nil && !a.LockUntil.After(now) {
		a.LoginAttempts = 1
		a.LockUntil = nil
	} else {
		a.LoginAttempts++
	}
	if a.LoginAttempts >= maxAttempts {
		until := now.Add(lockFor)
		a.LockUntil = &until
	}
	m.accounts[id] = a
	return models.LoginState{LoginAttempts: a.LoginAttempts, LockUntil: a.LockUntil}, nil
}

func (m *memoryAccounts) RecordSuccessfulLogin(_ context.Context, id string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.accounts[id]
	a.LoginAttempts = 0
	a.LockUntil = nil
	a.LastLogin = &now
	m.accounts[id] = a
	return nil
}

func (m *memoryAccounts) SetPasswordResetToken(_ context.Context, id, tokenHash string, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.accounts[id]
	a.PasswordResetToken = tokenHash
	a.PasswordResetExpires = &expires
	m.accounts[id] = a
	return nil
}

func (m *memoryAccounts) ClearPasswordResetToken(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.accounts[id]
	a.PasswordResetToken = ""
	a.PasswordResetExpires = nil
	m.accounts[id] = a
	return nil
}

func (m *memoryAccounts) ConsumePasswordResetToken(_ context.Context, tokenHash, passwordHash string, now time.Time) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.accounts {
		if a.PasswordResetToken == tokenHash && a.PasswordResetExpires != nil && a.PasswordResetExpires.After(now) {
			a.PasswordHash = passwordHash
			a.PasswordResetToken = ""
			a.PasswordResetExpires = nil
			a.LoginAttempts = 0
			a.LockUntil = nil
			m.accounts[id] = a
			return a, nil
		}
	}
	return models.Account{}, store.ErrTokenNotFound
}

func (m *memoryAccounts) SetEmailVerificationToken(_ context.Context, id, tokenHash string, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.accounts[id]
	a.EmailVerificationToken = tokenHash
	a.EmailVerificationExpires = &expires
	m.accounts[id] = a
	return nil
}

func (m *memoryAccounts) ConsumeEmailVerificationToken(_ context.Context, tokenHash string, now time.Time) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.accounts {
		if a.EmailVerificationToken == tokenHash && a.EmailVerificationExpires != nil && a.EmailVerificationExpires.After(now) {
			a.IsEmailVerified = true
			a.EmailVerificationToken = ""
			a.EmailVerificationExpires = nil
			m.accounts[id] = a
			return a, nil
		}
	}
	return models.Account{}, store.ErrTokenNotFound
}

func (m *memoryAccounts) UpdateAccount(_ context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	if update.FirstName != nil {
		a.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		a.LastName = *update.LastName
	}
	if update.Phone != nil {
		a.Phone = *update.Phone
	}
	if update.Role != nil {
		a.Role = *update.Role
	}
	if update.IsActive != nil {
		a.IsActive = *update.IsActive
	}
	if update.IsEmailVerified != nil {
		a.IsEmailVerified = *update.IsEmailVerified
	}
	m.accounts[id] = a
	return a, nil
}

func (m *memoryAccounts) ListAccounts(_ context.Context, filter models.AccountFilter) ([]models.Account, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Account
	for _, a := range m.accounts {
		if filter.Role != "" && a.Role != filter.Role {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b models.Account) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, len(out), nil
}

func (m *memoryAccounts) ListFavoriteIDs(_ context.Context, accountID string) ([]string, error) {
	return m.get(accountID).Favorites, nil
}

// recordingNotifier keeps every notification it is asked to send.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, notification models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notification)
	return nil
}

func (n *recordingNotifier) last() models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return models.Notification{}
	}
	return n.sent[len(n.sent)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

func testAuthConfig() config.Auth {
	return config.Auth{
		AccessTokenSecret:    "access-secret",
		RefreshTokenSecret:   "refresh-secret",
		TokenIssuer:          "vip-motors",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		BcryptCost:           bcrypt.MinCost,
		MaxLoginAttempts:     5,
		LockDuration:         2 * time.Hour,
		ResetTokenTTL:        10 * time.Minute,
		VerificationTokenTTL: 24 * time.Hour,
	}
}

// startHasher runs a bcrypt pool at the minimum cost for the duration of
// the test.
func startHasher(t *testing.T) crypto.PasswordHasher {
	t.Helper()

	pool := crypto.NewBcryptPool(bcrypt.MinCost, 2)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = pool.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return pool
}
