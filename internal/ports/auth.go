package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
)

// SessionStore persists and retrieves user sessions keyed by the opaque
// token the client holds. The AuthService is the store's only writer.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// IsNotFound reports whether a store error marks a missing entry rather than
// a store failure. Adapters tag their not-found sentinels with a
// NotFound() bool method; anything else is treated as the store being
// unreachable.
func IsNotFound(err error) bool {
	var nf interface{ NotFound() bool }
	return errors.As(err, &nf) && nf.NotFound()
}

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// NewAccount carries a registration request.
type NewAccount struct {
	Name     string
	Email    string
	Password string
}

// CredentialSource verifies and creates first-party accounts. It replaces an
// external identity provider: Verify answers "who is this", the rest of the
// session lifecycle stays with the AuthService.
type CredentialSource interface {
	// Verify checks the credentials and returns the account profile.
	// Bad credentials and unknown accounts both return an Unauthenticated
	// AppError with an identical user-facing message.
	Verify(ctx context.Context, creds Credentials) (domainauth.User, error)

	// Create provisions a new account and returns its profile.
	// A duplicate email returns a Conflict AppError.
	Create(ctx context.Context, account NewAccount) (domainauth.User, error)
}
