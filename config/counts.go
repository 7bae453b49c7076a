package config

import "time"

// CountsConfig contains pending-count aggregator configuration.
type CountsConfig struct {
	// Enabled controls whether the background refresh loop runs.
	// The snapshot endpoint still serves on-demand refreshes when disabled.
	Enabled bool `env:"COUNTS_ENABLED" envDefault:"true"`

	// RefreshInterval is how often the aggregator re-fetches all categories.
	RefreshInterval time.Duration `env:"COUNTS_REFRESH_INTERVAL" envDefault:"30s"`

	// FetchTimeout bounds a single refresh fan-out.
	FetchTimeout time.Duration `env:"COUNTS_FETCH_TIMEOUT" envDefault:"5s"`

	// SnapshotTTL is the Redis TTL on the shared snapshot record.
	SnapshotTTL time.Duration `env:"COUNTS_SNAPSHOT_TTL" envDefault:"5m"`
}

// Sanitize applies guardrails to aggregator configuration values.
func (c *CountsConfig) Sanitize() {
	if c.RefreshInterval < 5*time.Second {
		c.RefreshInterval = 5 * time.Second
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 5 * time.Second
	}
	// A refresh must be able to finish before the next one starts.
	if c.FetchTimeout > c.RefreshInterval {
		c.FetchTimeout = c.RefreshInterval
	}
	if c.SnapshotTTL < c.RefreshInterval {
		c.SnapshotTTL = 2 * c.RefreshInterval
	}
}
