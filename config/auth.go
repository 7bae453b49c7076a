package config

import "time"

// AuthConfig groups session and authentication configuration.
type AuthConfig struct {
	// SessionTTL is the lifetime of a freshly minted session.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`

	// SessionPrefix is the Redis key prefix for session records.
	SessionPrefix string `env:"AUTH_SESSION_PREFIX" envDefault:"session:"`

	// BcryptCost is the bcrypt work factor for newly registered accounts.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"12"`

	// BootstrapAdminEmail optionally grants the ADMIN role to the named
	// account on registration. Intended for first-run provisioning only.
	BootstrapAdminEmail string `env:"AUTH_BOOTSTRAP_ADMIN_EMAIL" envDefault:""`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	const (
		minTTL = 5 * time.Minute
		maxTTL = 30 * 24 * time.Hour
	)
	if a.SessionTTL < minTTL {
		a.SessionTTL = minTTL
	}
	if a.SessionTTL > maxTTL {
		a.SessionTTL = maxTTL
	}
	if a.SessionPrefix == "" {
		a.SessionPrefix = "session:"
	}

	// Clamp bcrypt cost to the library's supported range (4-31);
	// anything above 15 is impractically slow for interactive login.
	if a.BcryptCost < 10 {
		a.BcryptCost = 10
	}
	if a.BcryptCost > 15 {
		a.BcryptCost = 15
	}
}
