//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
)

const (
	maxUserNameLen = 255
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

// User is a back-office account. Roles carries the raw heterogeneous
// assignments exactly as stored (strings or {"name":...} objects); read it
// through RoleNames, never directly.
type User struct {
	ID           string               `json:"id"            db:"id"`
	Name         string               `json:"name"          db:"name"`
	Email        string               `json:"email"         db:"email"`
	PasswordHash string               `json:"-"             db:"password_hash"`
	Roles        []domainauth.RoleRef `json:"roles"         db:"roles"`
	CreatedAt    time.Time            `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"    db:"updated_at"`
}

// RoleNames returns the user's normalized role set.
func (u *User) RoleNames() []domainauth.Role {
	if u == nil {
		return nil
	}
	return domainauth.RoleNames(u.Roles)
}

// Profile returns the client-facing projection of the user.
func (u *User) Profile() domainauth.User {
	return domainauth.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Roles: u.RoleNames(),
	}
}

// NewUser is the fully prepared insert input for the user directory. The
// password has already been hashed by the caller; repositories never see
// plaintext credentials.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Roles        []domainauth.RoleRef
}

// CreateUserRequest represents parameters to create a User account.
type CreateUserRequest struct {
	Name     string               `json:"name"`
	Email    string               `json:"email"`
	Password string               `json:"password"`
	Roles    []domainauth.RoleRef `json:"roles,omitempty"`
}

// Normalize trims and canonicalizes request fields in place.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// Validate checks the request and returns a field-scoped validation error
// for the first problem found.
func (r *CreateUserRequest) Validate() error {
	if r.Name == "" {
		return apperrors.ValidationField("name", "Name is required.")
	}
	if utf8.RuneCountInString(r.Name) > maxUserNameLen {
		return apperrors.ValidationField("name", "Name is too long.")
	}
	if r.Email == "" {
		return apperrors.ValidationField("email", "Email is required.")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return apperrors.ValidationField("email", "Email address is invalid.")
	}
	if len(r.Password) < minPasswordLen {
		return apperrors.ValidationField("password", "Password must be at least 8 characters.")
	}
	if len(r.Password) > maxPasswordLen {
		return apperrors.ValidationField("password", "Password is too long.")
	}
	return nil
}
