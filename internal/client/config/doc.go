// Package config loads runtime configuration for the churchhub client.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A ".env" file in the working directory, if present (godotenv).
//  3. Environment variables with the CHURCH_ prefix (go-envconfig). Real
//     environment values beat those read from ".env".
//  4. Optional JSON file selected with -c or -config.
//  5. Command-line flags.
//
// Supported flags
//
//	-d string   path of the local SQLite database
//	-g string   giving page opened by the Give screen
//	-l string   log level (debug, info, warn, error)
//	-k int      simulated check-in delay (seconds)
//
// # JSON schema
//
// Durations accept strings like "2s" or integer nanoseconds:
//
//	{
//	  "database_path": "church.db",
//	  "giving_url": "https://tithe.ly/give",
//	  "checkin_delay": "2s",
//	  "log_level": "info",
//	  "log_backend": "zerolog",
//	  "log_pretty": true,
//	  "identity_secret": "change-me",
//	  "token_ttl": "24h",
//	  "locale": "en"
//	}
package config
