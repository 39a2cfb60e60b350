package adapter

import "errors"

var (
	// ErrUnknownTemplate is returned for a notification kind without a
	// template.
	ErrUnknownTemplate = errors.New("unknown notification template")

	// ErrRelayRejected is returned when the relay answers 4xx.
	ErrRelayRejected = errors.New("mail relay rejected the message")

	// ErrRelayUnauthorized is returned when the relay refuses the API key.
	ErrRelayUnauthorized = errors.New("mail relay rejected the api key")

	// ErrRelayUnavailable is returned when the relay answers 5xx or cannot be
	// reached.
	ErrRelayUnavailable = errors.New("mail relay unavailable")
)
