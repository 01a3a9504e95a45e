package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/churchhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   database path
//	-g string   giving URL
//	-l string   log level
//	-k int      check-in delay in seconds
//
// Anything else in args is filtered out first, so -c/-config does not trip
// this flag set. Fields whose flag is absent keep the value of earlier layers.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.GivingURL, "g", cfg.GivingURL, "giving page URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	delay := fs.Int("k", 0, "check-in delay (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, "d", "g", "l", "k")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if !isSet(fs, "k") {
		return nil
	}
	if *delay < 0 {
		return fmt.Errorf("parse flags: negative check-in delay %d", *delay)
	}
	cfg.CheckInDelay = time.Duration(*delay) * time.Second
	return nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
