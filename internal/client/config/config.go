package config

import (
	"context"
	"os"
	"time"
)

// Config holds runtime settings for the client.
type Config struct {
	DatabasePath   string        `env:"DATABASE_PATH, overwrite"`
	GivingURL      string        `env:"GIVING_URL, overwrite"`
	CheckInDelay   time.Duration `env:"CHECKIN_DELAY, overwrite"`
	LogLevel       string        `env:"LOG_LEVEL, overwrite"`
	LogBackend     string        `env:"LOG_BACKEND, overwrite"`
	LogPretty      bool          `env:"LOG_PRETTY, overwrite"`
	IdentitySecret string        `env:"IDENTITY_SECRET, overwrite"`
	TokenTTL       time.Duration `env:"TOKEN_TTL, overwrite"`
	Locale         string        `env:"LOCALE, overwrite"`
}

// LoadDefaults populates c with defaults suitable for a local install.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "church.db"
	c.GivingURL = "https://tithe.ly/give"
	c.CheckInDelay = 2 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "zerolog"
	c.LogPretty = true
	c.IdentitySecret = "churchhub-local-identity"
	c.TokenTTL = 24 * time.Hour
	c.Locale = "en"
}

// LoadConfig builds a Config from defaults, ".env", the environment, an
// optional JSON file and the process flags, in that order.
func LoadConfig(ctx context.Context) (*Config, error) {
	return load(ctx, dotenvFile, os.Args[1:])
}

func load(ctx context.Context, dotenv string, args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	lookuper, err := envLookuper(dotenv)
	if err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg, lookuper); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
