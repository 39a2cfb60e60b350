// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer mints and parses the session JWTs. Access and refresh tokens
// are signed with different secrets and carry their kind in the "typ"
// claim, so neither validates as the other.
type TokenIssuer struct {
	accessSecret  string
	refreshSecret string
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration

	now func() time.Time
}

// NewTokenIssuer builds a TokenIssuer from the auth configuration.
func NewTokenIssuer(cfg config.Auth) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  cfg.AccessTokenSecret,
		refreshSecret: cfg.RefreshTokenSecret,
		issuer:        cfg.TokenIssuer,
		accessTTL:     cfg.AccessTokenDuration,
		refreshTTL:    cfg.RefreshTokenDuration,
		now:           time.Now,
	}
}

// IssuePair returns a fresh access and refresh token for account.
func (t *TokenIssuer) IssuePair(account models.Account) (models.TokenPair, error) {
	access, err := t.issue(account.ID, account.Role, models.AccessToken, t.accessTTL, t.accessSecret)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, err := t.issue(account.ID, "", models.RefreshToken, t.refreshTTL, t.refreshSecret)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (t *TokenIssuer) issue(subject string, role models.Role, kind models.TokenType, ttl time.Duration, secret string) (string, error) {
	now := t.now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
		Type: kind,
	}

	token, err := utils.GenerateJWTToken(claims, secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseAccess validates an access token and returns the subject account id.
func (t *TokenIssuer) ParseAccess(token string) (string, error) {
	return t.parse(token, t.accessSecret, models.AccessToken)
}

// ParseRefresh validates a refresh token and returns the subject account id.
func (t *TokenIssuer) ParseRefresh(token string) (string, error) {
	return t.parse(token, t.refreshSecret, models.RefreshToken)
}

// parse normalizes every failure to ErrInvalidToken so callers never act on
// low-level JWT errors.
func (t *TokenIssuer) parse(token, secret string, kind models.TokenType) (string, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, secret, t.issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Type != kind {
		return "", fmt.Errorf("%w: expected %s token, got %q", ErrInvalidToken, kind, claims.Type)
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return accountID, nil
}
