package service

import "errors"

// Account and session errors. The HTTP layer maps each of them to a status
// code and a client message in one place.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrDuplicateAccount   = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrAccountLocked      = errors.New("account is temporarily locked")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("token is invalid or expired")
	ErrForbidden          = errors.New("insufficient permissions")

	// ErrInvalidOrExpiredToken is returned for one-time reset and
	// verification tokens, as opposed to ErrInvalidToken for JWTs.
	ErrInvalidOrExpiredToken = errors.New("one-time token is invalid or has expired")
	ErrAlreadyVerified       = errors.New("email is already verified")

	ErrNotificationFailed = errors.New("notification could not be sent")
)

// Catalog errors.
var (
	ErrNotFound           = errors.New("resource was not found")
	ErrCompareIDsRequired = errors.New("between 2 and 4 hypercar ids are required")
	ErrEmptyUpdate        = errors.New("update changes nothing")
)

// Media errors.
var (
	ErrMediaDisabled          = errors.New("image uploads are not configured")
	ErrUnsupportedContentType = errors.New("unsupported image content type")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)
