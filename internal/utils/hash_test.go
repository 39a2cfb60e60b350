package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashToken_KnownVector(t *testing.T) {
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		HashToken("abc"),
	)
}

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken("token"), HashToken("token"))
	assert.NotEqual(t, HashToken("token"), HashToken("token2"))
}

func TestGenerateToken(t *testing.T) {
	raw, hashed, err := GenerateToken()
	require.NoError(t, err)

	decoded, err := hex.DecodeString(raw)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
	assert.Equal(t, HashToken(raw), hashed)
	assert.NotEqual(t, raw, hashed)
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 50 {
		raw, _, err := GenerateToken()
		require.NoError(t, err)
		_, dup := seen[raw]
		require.False(t, dup)
		seen[raw] = struct{}{}
	}
}
