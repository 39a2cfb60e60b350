package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldError is a single rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every violation found in one value, in field order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, fieldErr := range v {
		messages = append(messages, fieldErr.Field+": "+fieldErr.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// collector accumulates violations; err returns nil when there are none.
type collector struct {
	errs ValidationErrors
}

func (c *collector) add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

func (c *collector) check(ok bool, field, message string) {
	if !ok {
		c.add(field, message)
	}
}

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
