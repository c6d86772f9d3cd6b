package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smarttech/storefront/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// mean "not set" and leave the current Config value in place.
type JsonConfig struct {
	StorePath      string  `json:"store_path"`
	SessionSecret  string  `json:"session_secret"`
	SessionTTL     string  `json:"session_ttl"`
	AdminCode      string  `json:"admin_code"`
	MatchThreshold float64 `json:"match_threshold"`
	ShippingFee    string  `json:"shipping_fee"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// the -c/-config flags. No flag means no JSON is loaded. Read or parse
// failures panic; the loading order is defaults -> JSON -> env -> flags.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionTTL != "" {
		d, err := time.ParseDuration(jc.SessionTTL)
		if err != nil {
			panic(err)
		}
		cfg.SessionTTL = d
	}
	if jc.AdminCode != "" {
		cfg.AdminCode = jc.AdminCode
	}
	if jc.MatchThreshold > 0 {
		cfg.MatchThreshold = jc.MatchThreshold
	}
	if jc.ShippingFee != "" {
		fee, err := decimal.NewFromString(jc.ShippingFee)
		if err != nil {
			panic(err)
		}
		cfg.ShippingFee = fee
	}
}
