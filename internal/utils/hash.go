package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the entropy of verification and reset tokens.
const resetTokenBytes = 32

// HashToken returns the hex-encoded SHA-256 digest of a raw one-time token.
// Only this digest is persisted; the raw token travels in the email link.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// GenerateToken returns a random hex token and its [HashToken] digest.
func GenerateToken() (raw string, hashed string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error generating random token: %w", err)
	}

	raw = hex.EncodeToString(buf)
	return raw, HashToken(raw), nil
}
