package config

import (
	"fmt"
	"os"
	"time"

	"AlphaDesk/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Simulation struct {
		// Workers is the size of the path-simulation worker pool.
		// Zero means one worker per CPU core.
		Workers int `yaml:"workers"`
		// Timeout is the wall-clock budget for one simulation request.
		Timeout time.Duration `yaml:"timeout"`
		// SamplePaths caps how many full equity paths a response carries.
		SamplePaths int `yaml:"sample_paths"`
		// CacheSize and CacheTTL bound the memoization cache for seeded runs.
		CacheSize int           `yaml:"cache_size"`
		CacheTTL  time.Duration `yaml:"cache_ttl"`
	} `yaml:"simulation"`
	RateLimit struct {
		Enabled      bool    `yaml:"enabled"`
		Capacity     float64 `yaml:"capacity"`
		RefillPerSec float64 `yaml:"refill_per_sec"`
	} `yaml:"rate_limit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.Server.Port = util.ParseIntDefault(os.Getenv("PORT"), c.Server.Port)
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	c.Simulation.Workers = util.ParseIntDefault(os.Getenv("SIM_WORKERS"), c.Simulation.Workers)
	c.Simulation.Timeout = util.ParseDurationDefault(os.Getenv("SIM_TIMEOUT"), c.Simulation.Timeout)

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers cannot be negative")
	}
	if c.Simulation.Timeout <= 0 {
		return fmt.Errorf("simulation.timeout must be positive")
	}
	if c.Simulation.SamplePaths <= 0 {
		return fmt.Errorf("simulation.sample_paths must be positive")
	}
	return nil
}
