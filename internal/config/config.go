package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledgerform/internal/form"
)

// FileName is the conventional name of the config file.
const FileName = "ledgerform.yaml"

// Config represents the top-level ledgerform.yaml configuration.
type Config struct {
	Form         FormConfig   `yaml:"form"`
	Export       ExportConfig `yaml:"export"`
	Server       ServerConfig `yaml:"server"`
	Log          LogConfig    `yaml:"log"`
	AccountsFile string       `yaml:"accounts_file,omitempty"` // relative to the config file
}

// FormConfig shapes the entry grid.
type FormConfig struct {
	InitialRows int    `yaml:"initial_rows"`
	AmountStep  int64  `yaml:"amount_step"`
	Locale      string `yaml:"locale"` // "en" or "ja"
}

// ExportConfig controls CSV export naming and dating.
type ExportConfig struct {
	FilenamePrefix string `yaml:"filename_prefix,omitempty"` // empty = locale default
	Timezone       string `yaml:"timezone"`                  // IANA name or "Local"
	Dir            string `yaml:"dir"`                       // CLI output directory
}

// ServerConfig controls the HTTP host.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Load reads a ledgerform.yaml file from disk. Missing keys keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("en")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default("en"), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a form locale.
func Default(locale string) *Config {
	return &Config{
		Form: FormConfig{
			InitialRows: 10,
			AmountStep:  100,
			Locale:      locale,
		},
		Export: ExportConfig{
			Timezone: "Local",
			Dir:      "exports",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Form.InitialRows < 0 {
		return fmt.Errorf("form.initial_rows must be >= 0, got %d", c.Form.InitialRows)
	}
	if c.Form.AmountStep <= 0 {
		return fmt.Errorf("form.amount_step must be > 0, got %d", c.Form.AmountStep)
	}
	if _, err := form.LabelsFor(c.Form.Locale); err != nil {
		return fmt.Errorf("form.locale: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("export.timezone: %w", err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// Labels returns the label preset for the configured locale.
func (c *Config) Labels() form.Labels {
	labels, err := form.LabelsFor(c.Form.Locale)
	if err != nil {
		labels, _ = form.LabelsFor("en")
	}
	return labels
}

// Location resolves export.timezone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Export.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	return time.LoadLocation(c.Export.Timezone)
}
