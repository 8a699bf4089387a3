package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default archive locations.
const (
	DefaultWebURL      = "http://rio1web.net.fmcti.com/ipd/fmc_released_legacy/Desenhos/Produtos"
	DefaultLegacyRoot  = `\\rio-data-srv\arquivo\Desativados`
	DefaultCurrentRoot = `\\rio-data-srv\arquivo\FMC`
)

// Config holds the archive locations and transport settings.
type Config struct {
	WebURL      string        `yaml:"web_url"`
	LegacyRoot  string        `yaml:"legacy_root"`
	CurrentRoot string        `yaml:"current_root"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
	RateLimit   float64       `yaml:"rate_limit"`
	Retries     int           `yaml:"retries"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		WebURL:      DefaultWebURL,
		LegacyRoot:  DefaultLegacyRoot,
		CurrentRoot: DefaultCurrentRoot,
		Timeout:     10 * time.Second,
		Concurrency: 4,
		RateLimit:   5,
		Retries:     2,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// falls back to ~/.drawfind.yaml, which may be absent; an explicit path
// must exist. The result is not validated, since flags may still override
// it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".drawfind.yaml")
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to open config %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.WebURL == "" && c.LegacyRoot == "" && c.CurrentRoot == "" {
		return fmt.Errorf("no archive configured: set web_url, legacy_root or current_root")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative")
	}
	return nil
}

// RetryDelays returns the backoff delays for the configured number of
// retries: 1s, 2s, 4s, ...
func (c Config) RetryDelays() []time.Duration {
	delays := make([]time.Duration, c.Retries)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}
