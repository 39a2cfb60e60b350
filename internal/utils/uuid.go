package utils

import "github.com/google/uuid"

// UUIDGenerator issues time-ordered identifiers for new accounts, catalog
// entries and media object keys.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID. Used to reject malformed path
// parameters before they reach the database.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
