package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks one-way password digests.
//
// Both operations are CPU-bound by design and may block until a worker is
// free; they return ctx.Err() if the caller gives up first.
type PasswordHasher interface {
	// Hash returns a salted digest of password.
	Hash(ctx context.Context, password string) (string, error)

	// Compare reports whether password matches digest. A mismatch is not an
	// error; a malformed digest is.
	Compare(ctx context.Context, digest, password string) (bool, error)
}
