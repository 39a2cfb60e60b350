package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vip-motors/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the bearer and JWT helpers.
var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrUnexpectedSigningMethod    = errors.New("unexpected signing method")
)

// GenerateJWTToken signs claims with HMAC-SHA256 and returns the compact
// token string.
//
// Returns an error if signKey is empty or signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(claims, "secret")
func GenerateJWTToken(claims models.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - HMAC signing method and signature using tokenSignKey
//   - Issuer (iss) claim against tokenIssuer
//   - Expiration (exp) claim, which is required
//
// The token type claim is returned as is; callers compare it with the kind
// of token they expect.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (*models.Claims, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedSigningMethod, token.Header["alg"])
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
