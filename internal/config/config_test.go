package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("ja")
	cfg.Export.FilenamePrefix = "books"
	cfg.Export.Timezone = "UTC"
	cfg.AccountsFile = "accounts.csv"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("en")

	assert.Equal(t, 10, cfg.Form.InitialRows)
	assert.Equal(t, int64(100), cfg.Form.AmountStep)
	assert.Equal(t, "en", cfg.Form.Locale)
	assert.Equal(t, "Local", cfg.Export.Timezone)
	assert.Equal(t, "exports", cfg.Export.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.AccountsFile)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default("en"), cfg)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("form:\n  locale: ja\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ja", cfg.Form.Locale)
	assert.Equal(t, 10, cfg.Form.InitialRows, "unset keys keep defaults")
	assert.Equal(t, "帳簿", cfg.Labels().FilenamePrefix)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"rows", func(c *Config) { c.Form.InitialRows = -1 }, "initial_rows"},
		{"step", func(c *Config) { c.Form.AmountStep = 0 }, "amount_step"},
		{"locale", func(c *Config) { c.Form.Locale = "fr" }, "locale"},
		{"timezone", func(c *Config) { c.Export.Timezone = "Mars/Olympus" }, "timezone"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		cfg := Default("en")
		tt.mutate(cfg)
		err := cfg.Validate()
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), tt.errMsg, tt.name)
	}
}

func TestLocation(t *testing.T) {
	cfg := Default("en")
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Export.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("en")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "initial_rows: 10")
	assert.Contains(t, contents, "amount_step: 100")
	assert.Contains(t, contents, "locale: en")
	assert.Contains(t, contents, "8080")
	assert.NotContains(t, contents, "accounts_file")
}
