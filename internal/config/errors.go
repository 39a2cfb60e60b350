package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates missing secrets or a broken lockout
	// or token lifetime policy.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates an empty hashing pool.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidMediaConfigs indicates an enabled bucket without an upload
	// URL expiry.
	ErrInvalidMediaConfigs = errors.New("invalid media configuration")
)
