package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "church.db", c.DatabasePath)
	assert.Equal(t, 2*time.Second, c.CheckInDelay)
	assert.Equal(t, "zerolog", c.LogBackend)
	assert.Equal(t, "en", c.Locale)
	assert.Equal(t, 24*time.Hour, c.TokenTTL)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	dotenv := writeTempFile(t, dir, ".env", "CHURCH_GIVING_URL=https://dotenv.example\nCHURCH_LOCALE=pt\nCHURCH_DATABASE_PATH=dotenv.db\n")
	cfgPath := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"database_path": "json.db",
		"log_level":     "warn",
	})
	t.Setenv("CHURCH_LOCALE", "en")

	cfg, err := load(context.Background(), dotenv, []string{"-c", cfgPath, "-l", "debug", "-k", "5"})
	require.NoError(t, err)

	assert.Equal(t, "https://dotenv.example", cfg.GivingURL, "dotenv fills what env leaves unset")
	assert.Equal(t, "en", cfg.Locale, "real environment beats dotenv")
	assert.Equal(t, "json.db", cfg.DatabasePath, "json beats dotenv")
	assert.Equal(t, "debug", cfg.LogLevel, "flags beat json")
	assert.Equal(t, 5*time.Second, cfg.CheckInDelay)
}

func TestLoad_MissingDotenvIsFine(t *testing.T) {
	cfg, err := load(context.Background(), filepath.Join(t.TempDir(), "absent.env"), nil)
	require.NoError(t, err)
	assert.Equal(t, "church.db", cfg.DatabasePath)
}

func TestLoad_BadJSONReturnsError(t *testing.T) {
	dir := t.TempDir()
	bad := writeTempFile(t, dir, "bad.json", "{ not json")

	_, err := load(context.Background(), filepath.Join(dir, "absent.env"), []string{"-config", bad})
	require.Error(t, err)
}

func TestLoad_SubSecondDelaySurvivesFlagLayer(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.env")

	t.Setenv("CHURCH_CHECKIN_DELAY", "750ms")
	cfg, err := load(context.Background(), absent, nil)
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, cfg.CheckInDelay)

	t.Setenv("CHURCH_CHECKIN_DELAY", "2500ms")
	cfg, err = load(context.Background(), absent, []string{"-l", "debug"})
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, cfg.CheckInDelay)
}

func TestLoad_JSONDelayInSeconds(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTempJSON(t, dir, "cfg.json", map[string]any{"checkin_delay": 0.5})

	cfg, err := load(context.Background(), filepath.Join(dir, "absent.env"), []string{"-c", cfgPath})
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.CheckInDelay)
}
