package validators

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes and x/crypto rejects longer
	// input outright.
	maxPasswordBytes = 72
)

// phonePattern is E.164: at most 15 digits, which with the optional plus
// fits users.phone VARCHAR(16).
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,14}$`)

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= min && n <= max
}

// isEmail accepts a bare addr-spec with a dotted domain.
func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 254 {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	return at > 0 && strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

func isPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// passwordProblem returns the first password policy violation or "".
func passwordProblem(password string) string {
	if len(password) < minPasswordLength {
		return "Password must be at least 6 characters long"
	}
	if len(password) > maxPasswordBytes {
		return "Password must be at most 72 bytes long"
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !lower || !upper || !digit {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}

	return ""
}

func oneOf[T comparable](value T, allowed ...T) bool {
	return slices.Contains(allowed, value)
}
