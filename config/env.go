package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// parseEnv overlays Config with environment variables, loading a local .env
// file first when one exists. Unset variables leave the current value alone;
// unparsable ones are ignored rather than fatal.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("STOREFRONT_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("STOREFRONT_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("STOREFRONT_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = d
		}
	}
	if v := os.Getenv("STOREFRONT_ADMIN_CODE"); v != "" {
		cfg.AdminCode = v
	}
	if v := os.Getenv("STOREFRONT_MATCH_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil && t > 0 {
			cfg.MatchThreshold = t
		}
	}
	if v := os.Getenv("STOREFRONT_SHIPPING_FEE"); v != "" {
		if fee, err := decimal.NewFromString(v); err == nil {
			cfg.ShippingFee = fee
		}
	}
}
