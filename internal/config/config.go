// Package config loads the mk command's configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mk "github.com/deosjr/microkanren"
)

type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig bounds a single search.
type SearchConfig struct {
	MaxSteps       int `yaml:"max_steps"`       // Suspensions forced before giving up, 0 = unbounded
	DefaultResults int `yaml:"default_results"` // Results taken when none are requested, -1 = all
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxSteps:       mk.DefaultMaxSteps,
			DefaultResults: 10,
		},
		Batch: BatchConfig{
			Workers: mk.DefaultWorkers,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Search.MaxSteps < 0 {
		return fmt.Errorf("search.max_steps must be >= 0")
	}
	if c.Search.DefaultResults < -1 || c.Search.DefaultResults == 0 {
		return fmt.Errorf("search.default_results must be -1 or positive")
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

// SearchOptions converts the config into driver options.
func (c *Config) SearchOptions() []mk.Option {
	return []mk.Option{
		mk.WithMaxSteps(c.Search.MaxSteps),
		mk.WithWorkers(c.Batch.Workers),
	}
}
