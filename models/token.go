package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens. It is carried in
// the "typ" claim so a token of one kind never validates as the other, even
// if both secrets were configured identically.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims is the JWT claim set issued by the session issuer.
//
// Role is set on access tokens only; refresh tokens carry just the subject.
type Claims struct {
	jwt.RegisteredClaims

	Role Role      `json:"role,omitempty"`
	Type TokenType `json:"typ"`
}

// AccountID extracts the account identifier from the "sub" claim.
func (c *Claims) AccountID() (string, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting account id from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting account id from token: empty subject")
	}

	return subject, nil
}

// TokenPair is returned by login, registration and refresh.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
