package credentials

// Package credentials implements ports.CredentialSource against the local
// user directory. It is the first-party replacement for an external identity
// provider: accounts live in Postgres and passwords are verified with bcrypt.

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	domainauth "github.com/nexora/corpsite-api/internal/domain/auth"
	"github.com/nexora/corpsite-api/internal/domain/model"
	apperrors "github.com/nexora/corpsite-api/internal/errors"
	"github.com/nexora/corpsite-api/internal/ports"
)

// invalidCredentialsMsg is shared by "unknown account" and "wrong password"
// so a login probe cannot distinguish the two.
const invalidCredentialsMsg = "Invalid email or password."

// UserDirectory is the slice of the user repository the source needs.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, account *model.NewUser) (*model.User, error)
}

// Config controls the credential source behavior.
type Config struct {
	// BcryptCost is the work factor for newly created accounts.
	BcryptCost int

	// BootstrapAdminEmail optionally grants ADMIN to the named account on
	// registration (first-run provisioning). Every other registration gets
	// the EMPLOYEE role.
	BootstrapAdminEmail string
}

// Source verifies and creates accounts against the user directory.
type Source struct {
	users UserDirectory
	cfg   Config
}

// NewSource constructs a credential source.
func NewSource(users UserDirectory, cfg Config) (*Source, error) {
	if users == nil {
		return nil, errors.New("credentials: user directory is required")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return nil, errors.New("credentials: bcrypt cost out of range")
	}
	cfg.BootstrapAdminEmail = strings.ToLower(strings.TrimSpace(cfg.BootstrapAdminEmail))
	return &Source{users: users, cfg: cfg}, nil
}

// Verify checks a login attempt and returns the account profile.
func (s *Source) Verify(ctx context.Context, creds ports.Credentials) (domainauth.User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return domainauth.User{}, apperrors.Unauthenticated(invalidCredentialsMsg)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return domainauth.User{}, apperrors.Unauthenticated(invalidCredentialsMsg)
		}
		return domainauth.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return domainauth.User{}, apperrors.Unauthenticated(invalidCredentialsMsg)
	}

	return user.Profile(), nil
}

// Create provisions a new account and returns its profile.
func (s *Source) Create(ctx context.Context, account ports.NewAccount) (domainauth.User, error) {
	req := model.CreateUserRequest{
		Name:     account.Name,
		Email:    account.Email,
		Password: account.Password,
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return domainauth.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return domainauth.User{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hash password")
	}

	roles := []domainauth.RoleRef{{Name: string(domainauth.RoleEmployee)}}
	if s.cfg.BootstrapAdminEmail != "" && req.Email == s.cfg.BootstrapAdminEmail {
		roles = append(roles, domainauth.RoleRef{Name: string(domainauth.RoleAdmin)})
	}

	user, err := s.users.Create(ctx, &model.NewUser{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        roles,
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			return domainauth.User{}, apperrors.Conflict("An account with this email already exists.")
		}
		return domainauth.User{}, err
	}

	return user.Profile(), nil
}
