// Package config holds runtime configuration for the matching CLI,
// loaded from a JSON file and overridable by flags — the same split the
// teacher's config.Config/DefaultConfig/Validate trio uses for its
// detection parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soocke/tmplmatch/match"
)

// Config holds the matching engine's caller-facing parameters plus the
// worker-pool size.
type Config struct {
	Threshold float64 `json:"threshold"`
	MaxCount  int     `json:"max_count"`
	Workers   int     `json:"workers"` // 0 means hardware concurrency
}

// DefaultConfig returns a Config populated with the engine's documented
// defaults.
func DefaultConfig() *Config {
	return &Config{
		Threshold: match.DefaultThreshold,
		MaxCount:  match.DefaultMaxCount,
		Workers:   0,
	}
}

// Validate clamps/normalizes out-of-range values to safe defaults rather
// than erroring, the way the teacher's Validate does for scale/threshold
// fields.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		c.Threshold = match.DefaultThreshold
	}
	if c.MaxCount <= 0 {
		c.MaxCount = match.DefaultMaxCount
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
	return nil
}

// Load reads and validates a Config from a JSON file at path. A missing
// file is not an error: it yields DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config: cannot open/read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: cannot decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save persists cfg as indented JSON to path.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: cannot encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
