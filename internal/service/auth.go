package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
	"github.com/nexora/corpsite-api/internal/ports"
)

const defaultSessionTTL = 12 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialSource
	Sessions    ports.SessionStore

	// SessionTTL bounds how long a session stays valid without re-login.
	SessionTTL time.Duration
}

// AuthService orchestrates the session lifecycle: it turns verified
// credentials into persisted sessions, resolves session tokens back into an
// authentication state, and tears sessions down on logout.
type AuthService struct {
	credentials ports.CredentialSource
	sessions    ports.SessionStore
	sessionTTL  time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		credentials: opts.Credentials,
		sessions:    opts.Sessions,
		sessionTTL:  ttl,
	}
}

// LoginResult contains the established session and where the client should
// land next based on its role set.
type LoginResult struct {
	Session    domainauth.Session
	RedirectTo string
}

// Login verifies credentials and establishes a session. A failed attempt
// returns a structured error and leaves no session behind; whatever state the
// caller held before the attempt stays valid.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*LoginResult, error) {
	user, err := s.credentials.Verify(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, user)
}

// Register provisions an account and immediately establishes a session for
// it, so a successful registration behaves exactly like a successful login.
func (s *AuthService) Register(ctx context.Context, account ports.NewAccount) (*LoginResult, error) {
	user, err := s.credentials.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return s.establishSession(ctx, user)
}

// Resolve maps a session token to an authentication state. An unknown or
// expired token is Unauthenticated; a store failure is Initializing, which
// callers must treat as "not yet known" rather than "logged out".
func (s *AuthService) Resolve(ctx context.Context, sessionID string) domainauth.State {
	if sessionID == "" {
		return domainauth.State{Status: domainauth.StatusUnauthenticated}
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if ports.IsNotFound(err) {
			return domainauth.State{Status: domainauth.StatusUnauthenticated}
		}
		return domainauth.State{Status: domainauth.StatusInitializing}
	}

	if time.Now().After(sess.ExpiresAt) {
		// Best effort; an expired token is unauthenticated either way.
		_ = s.sessions.Delete(ctx, sessionID)
		return domainauth.State{Status: domainauth.StatusUnauthenticated}
	}

	return domainauth.State{Status: domainauth.StatusAuthenticated, Session: &sess}
}

// Logout removes a session. Logging out an already-missing session is not an
// error, so repeated logouts and logouts racing each other all succeed.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !ports.IsNotFound(err) {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "delete session")
	}
	return nil
}

func (s *AuthService) establishSession(ctx context.Context, user domainauth.User) (*LoginResult, error) {
	session := domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Roles:     user.Roles,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperrors.Wrap(fmt.Errorf("save session: %w", err), apperrors.ErrCodeUnavailable,
			"Could not sign you in right now. Please try again.")
	}

	return &LoginResult{
		Session:    session,
		RedirectTo: domainauth.LandingRoute(user.Roles),
	}, nil
}
