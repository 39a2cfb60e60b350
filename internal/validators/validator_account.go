package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/vip-motors/models"
)

// Field names understood by [AccountValidator]. They match the JSON keys of
// the request bodies so violations can be reported per field.
const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPassword     = "password"
	FieldToken        = "token"
	FieldRefreshToken = "refreshToken"
	FieldRole         = "role"

	// FieldAdminPassword applies the administrator password rule (length
	// only) to the "password" key.
	FieldAdminPassword = "adminPassword"
)

const (
	minAdminPasswordLength = 6
	maxAdminPasswordLength = 100
)

// AccountValidator implements [Validator] for account and authentication
// requests.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator and returns it as
// the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. The result is nil, a [ValidationErrors], or
// [ErrUnsupportedType] / [ErrUnknownField] for programming errors.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	case models.AdminRegisterRequest:
		return v.validateAdminRegister(value, fields...)
	case *models.AdminRegisterRequest:
		return v.validateAdminRegister(*value, fields...)
	case models.RefreshRequest:
		return v.validateRefresh(value)
	case *models.RefreshRequest:
		return v.validateRefresh(*value)
	case models.ForgotPasswordRequest:
		return v.validateEmailOnly(value.Email)
	case *models.ForgotPasswordRequest:
		return v.validateEmailOnly(value.Email)
	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)
	case models.VerifyEmailRequest:
		return v.validateVerifyEmail(value)
	case *models.VerifyEmailRequest:
		return v.validateVerifyEmail(*value)
	case models.ProfileUpdate:
		return v.validateProfileUpdate(value)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value)
	case models.AccountUpdate:
		return v.validateAccountUpdate(value)
	case *models.AccountUpdate:
		return v.validateAccountUpdate(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldPassword}
	}

	c := &collector{}
	for _, f := range fields {
		switch f {
		case FieldFirstName:
			c.check(lengthBetween(request.FirstName, 2, 50), FieldFirstName, "First name must be between 2 and 50 characters")
		case FieldLastName:
			c.check(lengthBetween(request.LastName, 2, 50), FieldLastName, "Last name must be between 2 and 50 characters")
		case FieldEmail:
			c.check(isEmail(request.Email), FieldEmail, "Please provide a valid email address")
		case FieldPhone:
			c.check(request.Phone == "" || isPhone(request.Phone), FieldPhone, "Please provide a valid phone number")
		case FieldPassword:
			if problem := passwordProblem(request.Password); problem != "" {
				c.add(FieldPassword, problem)
			}
		default:
			return ErrUnknownField
		}
	}

	return c.err()
}

func (v *AccountValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	c := &collector{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			c.check(isEmail(request.Email), FieldEmail, "Please provide a valid email address")
		case FieldPassword:
			c.check(request.Password != "", FieldPassword, "Password is required")
		default:
			return ErrUnknownField
		}
	}

	return c.err()
}

func (v *AccountValidator) validateAdminRegister(request models.AdminRegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldAdminPassword}
	}

	c := &collector{}
	for _, f := range fields {
		switch f {
		case FieldName:
			c.check(lengthBetween(request.Name, 2, 50), FieldName, "Name must be between 2 and 50 characters")
		case FieldEmail:
			c.check(isEmail(request.Email), FieldEmail, "Please provide a valid email address")
		case FieldAdminPassword:
			n := len(request.Password)
			switch {
			case n < minAdminPasswordLength || n > maxAdminPasswordLength:
				c.add(FieldPassword, "Password must be between 6 and 100 characters")
			case n > maxPasswordBytes:
				c.add(FieldPassword, "Password must be at most 72 bytes long")
			}
		default:
			return ErrUnknownField
		}
	}

	return c.err()
}

func (v *AccountValidator) validateRefresh(request models.RefreshRequest) error {
	c := &collector{}
	c.check(strings.TrimSpace(request.RefreshToken) != "", FieldRefreshToken, "Refresh token is required")
	return c.err()
}

func (v *AccountValidator) validateEmailOnly(email string) error {
	c := &collector{}
	c.check(isEmail(email), FieldEmail, "Please provide a valid email address")
	return c.err()
}

func (v *AccountValidator) validateResetPassword(request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldPassword}
	}

	c := &collector{}
	for _, f := range fields {
		switch f {
		case FieldToken:
			c.check(strings.TrimSpace(request.Token) != "", FieldToken, "Reset token is required")
		case FieldPassword:
			if problem := passwordProblem(request.Password); problem != "" {
				c.add(FieldPassword, problem)
			}
		default:
			return ErrUnknownField
		}
	}

	return c.err()
}

func (v *AccountValidator) validateVerifyEmail(request models.VerifyEmailRequest) error {
	c := &collector{}
	c.check(strings.TrimSpace(request.Token) != "", FieldToken, "Verification token is required")
	return c.err()
}

func (v *AccountValidator) checkProfile(c *collector, update models.ProfileUpdate) {
	if update.FirstName != nil {
		c.check(lengthBetween(*update.FirstName, 2, 50), FieldFirstName, "First name must be between 2 and 50 characters")
	}
	if update.LastName != nil {
		c.check(lengthBetween(*update.LastName, 2, 50), FieldLastName, "Last name must be between 2 and 50 characters")
	}
	// an empty phone clears it
	if update.Phone != nil && *update.Phone != "" {
		c.check(isPhone(*update.Phone), FieldPhone, "Please provide a valid phone number")
	}
}

func (v *AccountValidator) validateProfileUpdate(update models.ProfileUpdate) error {
	c := &collector{}
	v.checkProfile(c, update)
	return c.err()
}

func (v *AccountValidator) validateAccountUpdate(update models.AccountUpdate) error {
	c := &collector{}
	v.checkProfile(c, update.ProfileUpdate)
	if update.Role != nil {
		c.check(update.Role.Valid(), FieldRole, "Role must be one of user, admin, moderator")
	}
	return c.err()
}
