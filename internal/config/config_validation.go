// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	auth := cfg.Auth
	if auth.AccessTokenSecret == "" || auth.RefreshTokenSecret == "" {
		return fmt.Errorf("%w: token secrets are required", ErrInvalidAuthConfigs)
	}
	if auth.AccessTokenSecret == auth.RefreshTokenSecret {
		return fmt.Errorf("%w: access and refresh secrets must differ", ErrInvalidAuthConfigs)
	}
	if auth.AccessTokenDuration <= 0 || auth.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAuthConfigs)
	}
	if auth.MaxLoginAttempts < 1 || auth.LockDuration <= 0 {
		return fmt.Errorf("%w: lockout policy is incomplete", ErrInvalidAuthConfigs)
	}
	if auth.ResetTokenTTL <= 0 || auth.VerificationTokenTTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.HashPoolSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Media.Bucket != "" && cfg.Media.UploadURLExpiry <= 0 {
		return ErrInvalidMediaConfigs
	}

	return nil
}
