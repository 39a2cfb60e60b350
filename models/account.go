// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Role governs which operations an account may perform.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// Account is a persisted user or administrator record.
//
// Credential and token state never leave the server: those fields are
// excluded from JSON so an Account can be written to a response as is.
type Account struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"role"`

	IsActive        bool `json:"isActive"`
	IsEmailVerified bool `json:"isEmailVerified"`

	// PasswordHash is the bcrypt digest of the account password.
	PasswordHash string `json:"-"`

	LoginAttempts int        `json:"-"`
	LockUntil     *time.Time `json:"-"`

	EmailVerificationToken   string     `json:"-"`
	EmailVerificationExpires *time.Time `json:"-"`
	PasswordResetToken       string     `json:"-"`
	PasswordResetExpires     *time.Time `json:"-"`

	// Favorites holds hypercar ids. Populated only by operations that need it.
	Favorites []string `json:"favorites,omitempty"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FullName joins first and last name.
func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// IsLocked reports whether the lock-until timestamp lies after now.
func (a Account) IsLocked(now time.Time) bool {
	return a.LockUntil != nil && a.LockUntil.After(now)
}

// HasRole reports whether the account role is one of roles.
func (a Account) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if a.Role == role {
			return true
		}
	}
	return false
}

// LoginState is the lockout counter of an account after a failed attempt.
type LoginState struct {
	LoginAttempts int
	LockUntil     *time.Time
}

// ProfileUpdate carries the fields an account owner may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// AccountUpdate is the administrative superset of [ProfileUpdate].
type AccountUpdate struct {
	ProfileUpdate

	Role            *Role `json:"role,omitempty"`
	IsActive        *bool `json:"isActive,omitempty"`
	IsEmailVerified *bool `json:"isEmailVerified,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u AccountUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Phone == nil &&
		u.Role == nil && u.IsActive == nil && u.IsEmailVerified == nil
}

// AccountFilter selects accounts for the administrative listing.
type AccountFilter struct {
	Page     int
	Limit    int
	Role     Role
	IsActive *bool
}

// AccountPage is one page of accounts.
type AccountPage struct {
	Users      []Account  `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
