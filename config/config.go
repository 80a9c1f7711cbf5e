// Package config provides configuration loading for the quality engine.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration.
type Config struct {
	Shapes       ShapesConfig `yaml:"shapes"`
	Vocabularies VocabConfig  `yaml:"vocabularies"`
	HTTP         HTTPConfig   `yaml:"http"`
}

// ShapesConfig configures SHACL shape-set resolution.
type ShapesConfig struct {
	// Dir is the root directory holding the local shape files.
	Dir string `yaml:"dir"`
	// Extra lists glob patterns (relative to Dir) of additional local
	// shape documents appended to every profile's shape set.
	Extra []string `yaml:"extra"`
	// Watch enables cache invalidation when local shape files change.
	Watch bool `yaml:"watch"`
	// UpdateInterval is how often the updater re-checks upstream copies.
	UpdateInterval time.Duration `yaml:"update_interval"`
}

// VocabConfig configures controlled-vocabulary resolution.
type VocabConfig struct {
	// Dir is the directory holding the vocabulary JSONL files.
	Dir string `yaml:"dir"`
}

// HTTPConfig configures outbound fetches (shape files, vocabularies).
type HTTPConfig struct {
	// Timeout bounds each individual fetch.
	Timeout time.Duration `yaml:"timeout"`
	// InsecureSkipVerify disables TLS verification; some open-data
	// portals still serve shapes with broken certificate chains.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Shapes: ShapesConfig{
			Dir:            "shacl",
			Watch:          false,
			UpdateInterval: 7 * 24 * time.Hour,
		},
		Vocabularies: VocabConfig{
			Dir: "vocabularies",
		},
		HTTP: HTTPConfig{
			Timeout: 10 * time.Second,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Shapes.Dir == "" {
		return fmt.Errorf("shapes.dir is required")
	}
	if c.Vocabularies.Dir == "" {
		return fmt.Errorf("vocabularies.dir is required")
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}
	return nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Shapes.Dir != "" {
		c.Shapes.Dir = other.Shapes.Dir
	}
	if len(other.Shapes.Extra) > 0 {
		c.Shapes.Extra = other.Shapes.Extra
	}
	if other.Shapes.Watch {
		c.Shapes.Watch = true
	}
	if other.Shapes.UpdateInterval != 0 {
		c.Shapes.UpdateInterval = other.Shapes.UpdateInterval
	}
	if other.Vocabularies.Dir != "" {
		c.Vocabularies.Dir = other.Vocabularies.Dir
	}
	if other.HTTP.Timeout != 0 {
		c.HTTP.Timeout = other.HTTP.Timeout
	}
	if other.HTTP.InsecureSkipVerify {
		c.HTTP.InsecureSkipVerify = true
	}
}

// LoadFromFile loads configuration from a YAML file on top of defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
