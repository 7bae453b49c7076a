package auth

// Package auth contains domain-level types for sessions and role-based
// access control. It is pure and free of framework/adapter concerns.

import (
	"encoding/json"
	"strings"
	"time"
)

// Role represents an application authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleHR             Role = "HR"
	RoleManager        Role = "MANAGER"
	RoleEmployee       Role = "EMPLOYEE"
	RoleWebsiteManager Role = "WEBSITE_MANAGER"
)

// NormalizeRoleName canonicalizes a raw role name: surrounding whitespace is
// trimmed, letters are upper-cased, and interior spaces become underscores
// (the upstream schema emits both "WEBSITE_MANAGER" and "WEBSITE MANAGER").
// An empty result means the entry carries no usable name.
func NormalizeRoleName(raw string) Role {
	name := strings.ToUpper(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), "_")
	return Role(name)
}

// RoleRef is one raw role assignment exactly as the upstream schema emits it:
// either a bare name ("HR") or an object carrying a name ({"name":"HR"}).
// Both forms decode to the same value; nothing outside this type may compare
// raw role entries directly.
type RoleRef struct {
	Name string
}

// UnmarshalJSON accepts both the bare-string and the object form.
func (r *RoleRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		r.Name = s
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.Name = obj.Name
	return nil
}

// MarshalJSON always emits the canonical bare-string form.
func (r RoleRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Name)
}

// RoleNames projects raw role assignments to the canonical set of role
// names. Entries with no usable name are dropped, duplicates collapse, and a
// nil slice yields the empty set. Order is not significant.
func RoleNames(refs []RoleRef) []Role {
	if len(refs) == 0 {
		return nil
	}
	seen := make(map[Role]struct{}, len(refs))
	names := make([]Role, 0, len(refs))
	for _, ref := range refs {
		name := NormalizeRoleName(ref.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// User is the profile shape surfaced to clients after login or rehydration.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Roles []Role `json:"roles"`
}

// Session is the server-side record we persist for an authenticated user.
// ID is the opaque credential token held by the client (cookie value or
// bearer token); a user may hold several roles simultaneously and every
// membership check honors all of them.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []Role    `json:"roles"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HasRole reports whether the session holds the named role.
// A session with no roles never matches.
func (s Session) HasRole(role Role) bool {
	want := NormalizeRoleName(string(role))
	for _, r := range s.Roles {
		if NormalizeRoleName(string(r)) == want {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the session holds at least one of the named roles.
func (s Session) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if s.HasRole(r) {
			return true
		}
	}
	return false
}

// HasAllRoles reports whether the session holds every one of the named roles.
func (s Session) HasAllRoles(roles ...Role) bool {
	for _, r := range roles {
		if !s.HasRole(r) {
			return false
		}
	}
	return true
}

// IsAdmin is sugar for HasRole(RoleAdmin).
func (s Session) IsAdmin() bool { return s.HasRole(RoleAdmin) }

// User returns the client-facing profile for the session.
func (s Session) User() User {
	return User{
		ID:    s.UserID,
		Name:  s.Name,
		Email: s.Email,
		Roles: s.Roles,
	}
}
