package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/churchhub/internal/flagx"
	"github.com/dmitrijs2005/churchhub/internal/timex"
)

// jsonConfig is a DTO used only for unmarshalling. Pointer fields tell
// "absent" from "zero" so a partial file overrides only what it mentions.
type jsonConfig struct {
	DatabasePath   *string         `json:"database_path"`
	GivingURL      *string         `json:"giving_url"`
	CheckInDelay   *timex.Duration `json:"checkin_delay"`
	LogLevel       *string         `json:"log_level"`
	LogBackend     *string         `json:"log_backend"`
	LogPretty      *bool           `json:"log_pretty"`
	IdentitySecret *string         `json:"identity_secret"`
	TokenTTL       *timex.Duration `json:"token_ttl"`
	Locale         *string         `json:"locale"`
}

// parseJSON overlays cfg with the file named by -c/-config in args.
// Without the flag nothing happens.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.GivingURL, jc.GivingURL)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogBackend, jc.LogBackend)
	setIf(&cfg.LogPretty, jc.LogPretty)
	setIf(&cfg.IdentitySecret, jc.IdentitySecret)
	setIf(&cfg.Locale, jc.Locale)
	if jc.CheckInDelay != nil {
		cfg.CheckInDelay = jc.CheckInDelay.Duration
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	return nil
}

func setIf[T any](dst, src *T) {
	if src != nil {
		*dst = *src
	}
}
