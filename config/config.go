// Package config holds runtime settings for the storefront core and the
// layered loading order: defaults, then .env/JSON file, then environment
// variables, then command-line flags. Later sources take precedence.
package config

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smarttech/storefront/biometric"
)

// DefaultAdminCode is the invite code granting the admin role at
// registration, kept from the data this store replaces.
const DefaultAdminCode = "S7_MASTER_INDEX"

// Config holds the tunables of the storefront core.
//
// Fields:
//   - StorePath: SQLite DSN of the channel store.
//   - SessionSecret: HMAC key for the session stamp.
//   - SessionTTL: how long a persisted session stays restorable.
//   - AdminCode: invite code granting the admin role at registration.
//   - MatchThreshold: maximum descriptor distance still accepted as a match.
//   - ShippingFee: fixed surcharge added to every order total.
type Config struct {
	StorePath      string
	SessionSecret  string
	SessionTTL     time.Duration
	AdminCode      string
	MatchThreshold float64
	ShippingFee    decimal.Decimal
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "storefront.db"
	c.SessionSecret = "storefront-dev-secret"
	c.SessionTTL = 24 * time.Hour
	c.AdminCode = DefaultAdminCode
	c.MatchThreshold = biometric.DefaultThreshold
	c.ShippingFee = decimal.NewFromInt(25)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
