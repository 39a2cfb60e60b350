package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/logger"
)

// Storages is the store handle injected into the service layer. Connect it
// with [NewStorages] and release it with [Storages.Close].
type Storages struct {
	AccountRepository  AccountRepository
	HypercarRepository HypercarRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:  NewAccountRepository(db, log),
		HypercarRepository: NewHypercarRepository(db, log),
		db:                 db,
	}
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
