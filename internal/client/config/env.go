package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	envPrefix  = "CHURCH_"
	dotenvFile = ".env"
)

// envLookuper resolves variables from the process environment first and
// falls back to the dotenv file at path. A missing file is not an error.
func envLookuper(path string) (envconfig.Lookuper, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		values = map[string]string{}
	}
	return envconfig.MultiLookuper(envconfig.OsLookuper(), envconfig.MapLookuper(values)), nil
}

// parseEnv overlays cfg with CHURCH_* variables found by l.
// Fields without a matching variable keep their current value.
func parseEnv(ctx context.Context, cfg *Config, l envconfig.Lookuper) error {
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(envPrefix, l),
	})
	if err != nil {
		return fmt.Errorf("env config: %w", err)
	}
	return nil
}
