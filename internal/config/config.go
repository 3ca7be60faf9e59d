// Package config handles application configuration and paths.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aayushdutt/zuluquery/internal/zulu"
)

// EnvAPIURL overrides the configured packages endpoint
const EnvAPIURL = "ZULUQUERY_API_URL"

// Config holds the application configuration
type Config struct {
	// API
	APIURL   string   `json:"apiURL"`
	RetryMax int      `json:"retryMax"`
	Timeout  Duration `json:"timeout"`

	// Output
	Verbose     bool `json:"verbose"`
	Interactive bool `json:"-"`
}

// Duration is a time.Duration that reads and writes as "30s" in JSON
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timeout must be a string like \"30s\": %w", err)
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		APIURL:   zulu.DefaultBaseURL,
		RetryMax: 0,
	}
}

// Load reads config from disk, then applies environment overrides.
// A missing config file is not an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", Path(), err)
		}
	}

	if u := os.Getenv(EnvAPIURL); u != "" {
		cfg.APIURL = u
	}
	// Fallback to default endpoint if config file had empty string
	if cfg.APIURL == "" {
		cfg.APIURL = zulu.DefaultBaseURL
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	}

	return cfg, nil
}

// ClientOptions returns the metadata client options for this config
func (c *Config) ClientOptions() []zulu.Option {
	return []zulu.Option{
		zulu.WithBaseURL(c.APIURL),
		zulu.WithRetryMax(c.RetryMax),
		zulu.WithTimeout(time.Duration(c.Timeout)),
	}
}

// Path returns the location of config.json
func Path() string {
	return filepath.Join(getDefaultConfigDir(), "config.json")
}

func getDefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zuluquery")
	}

	switch {
	case os.Getenv("APPDATA") != "": // Windows
		return filepath.Join(os.Getenv("APPDATA"), "zuluquery")
	default: // Linux/macOS
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "zuluquery")
	}
}
