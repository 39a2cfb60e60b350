package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/vip-motors/internal/config"
	"github.com/MKhiriev/vip-motors/internal/utils"
	"github.com/MKhiriev/vip-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_IssuePair(t *testing.T) {
	issuer := NewTokenIssuer(testAuthConfig())
	account := models.Account{ID: "acc-1", Role: models.RoleAdmin}

	pair, err := issuer.IssuePair(account)
	require.NoError(t, err)

	access, err := utils.ValidateAndParseJWTToken(pair.AccessToken, "access-secret", "vip-motors")
	require.NoError(t, err)
	assert.Equal(t, models.AccessToken, access.Type)
	assert.Equal(t, models.RoleAdmin, access.Role)
	assert.NotEmpty(t, access.ID)

	refresh, err := utils.ValidateAndParseJWTToken(pair.RefreshToken, "refresh-secret", "vip-motors")
	require.NoError(t, err)
	assert.Equal(t, models.RefreshToken, refresh.Type)
	assert.Empty(t, refresh.Role)
	assert.NotEqual(t, access.ID, refresh.ID)
}

func TestTokenIssuer_TypesAreNotInterchangeable(t *testing.T) {
	cfg := testAuthConfig()
	cfg.RefreshTokenSecret = cfg.AccessTokenSecret
	issuer := NewTokenIssuer(cfg)

	pair, err := issuer.IssuePair(models.Account{ID: "acc-1", Role: models.RoleUser})
	require.NoError(t, err)

	id, err := issuer.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)

	id, err = issuer.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)

	_, err = issuer.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = issuer.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testAuthConfig())
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	pair, err := issuer.IssuePair(models.Account{ID: "acc-1", Role: models.RoleUser})
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The refresh token lives for a week and is still valid.
	_, err = issuer.ParseRefresh(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestTokenIssuer_MissingSecret(t *testing.T) {
	issuer := NewTokenIssuer(config.Auth{TokenIssuer: "vip-motors", AccessTokenDuration: time.Hour})

	_, err := issuer.IssuePair(models.Account{ID: "acc-1"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
