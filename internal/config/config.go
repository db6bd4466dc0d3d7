package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/internal/logging"
)

// Config is the prism runtime configuration, usually read from prism.yaml.
type Config struct {
	Listen    string    `yaml:"listen"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Data      Data      `yaml:"data"`
	Log       Log       `yaml:"log"`
	Defaults  Defaults  `yaml:"defaults"`
}

// RateLimit throttles chart computations in the HTTP API. A zero PerSecond
// means unlimited.
type RateLimit struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// Data names where the record store comes from. Exactly one source is used,
// in priority order: files, db, url.
type Data struct {
	Files   []string `yaml:"files,omitempty"`
	URL     string   `yaml:"url,omitempty"`
	DB      string   `yaml:"db,omitempty"`
	Dataset string   `yaml:"dataset,omitempty"`
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json, pretty
}

// Defaults is the selection shown before the user picks anything.
type Defaults struct {
	Variable string `yaml:"variable"`
	Filter   string `yaml:"filter"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen: ":8080",
		Data:   Data{Dataset: "insights"},
		Log:    Log{Level: "info", Format: "text"},
		Defaults: Defaults{
			Variable: "intensity",
			Filter:   "country",
		},
	}
}

// Load reads a YAML file over Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}

// Validate checks log settings, the data source and the default selection.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "", "text", "json", "pretty":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	if c.RateLimit.PerSecond < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit: per_second and burst must not be negative")
	}

	if c.Data.DB != "" && c.Data.Dataset == "" {
		return fmt.Errorf("data.dataset is required with data.db")
	}
	if c.Data.URL != "" && !strings.HasPrefix(c.Data.URL, "http://") && !strings.HasPrefix(c.Data.URL, "https://") {
		return fmt.Errorf("data.url must be http or https: %q", c.Data.URL)
	}

	if _, err := engine.FromSelection(c.Defaults.Variable, c.Defaults.Filter); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// HasSource reports whether any record source is configured.
func (d Data) HasSource() bool {
	return len(d.Files) > 0 || d.DB != "" || d.URL != ""
}
