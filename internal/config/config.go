// Package config handles YAML configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/eduardolat/shortid"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is the default configuration file path
	DefaultConfigPath = "/etc/shortid/config.yaml"

	// DefaultCount is the default number of IDs printed per run
	DefaultCount = 1

	// MaxCount is the largest number of IDs a single run may generate
	MaxCount = 100000

	// DefaultFileMode is the default permission mode for output files
	DefaultFileMode = 0644
)

// Config represents the complete CLI configuration
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Output   Output   `yaml:"output"`
}

// Defaults defines what a run generates when no flags override it
type Defaults struct {
	Ordered *bool `yaml:"ordered"`
	Bytes   *int  `yaml:"bytes"`
	Count   *int  `yaml:"count"`
}

// IsOrdered returns true if ordered IDs are generated by default (default: false)
func (d Defaults) IsOrdered() bool {
	if d.Ordered == nil {
		return false
	}
	return *d.Ordered
}

// GetBytes returns the byte count per ID (default: 10)
func (d Defaults) GetBytes() int {
	if d.Bytes == nil {
		return shortid.DefaultBytes
	}
	return *d.Bytes
}

// GetCount returns the number of IDs per run (default: 1)
func (d Defaults) GetCount() int {
	if d.Count == nil {
		return DefaultCount
	}
	return *d.Count
}

// Output defines where generated IDs are written
type Output struct {
	Path     string `yaml:"path"`
	FileMode *int   `yaml:"file_mode"`
}

// GetFileMode returns the output file mode (default: 0644)
func (o Output) GetFileMode() os.FileMode {
	if o.FileMode == nil {
		return DefaultFileMode
	}
	return os.FileMode(*o.FileMode)
}

// Default returns a configuration with every value at its default
func Default() *Config {
	return &Config{}
}

// Load reads and parses a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// LoadOptional behaves like Load but returns the defaults when the file
// does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse parses YAML configuration data
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := ValidateBytes(c.Defaults.GetBytes(), c.Defaults.IsOrdered()); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := ValidateCount(c.Defaults.GetCount()); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Output.FileMode != nil && (*c.Output.FileMode < 0 || *c.Output.FileMode > 0777) {
		return fmt.Errorf("config: file_mode %#o outside 0..0777", *c.Output.FileMode)
	}

	return nil
}

// ValidateBytes checks a byte count against the range of the chosen ID kind
func ValidateBytes(n int, ordered bool) error {
	lo := 1
	if ordered {
		lo = shortid.MinOrderedBytes
	}
	if n < lo || n > shortid.MaxBytes {
		return fmt.Errorf("%w: bytes %d outside [%d, %d]", shortid.ErrInvalidArgument, n, lo, shortid.MaxBytes)
	}
	return nil
}

// ValidateCount checks the number of IDs requested for a run
func ValidateCount(n int) error {
	if n < 1 || n > MaxCount {
		return fmt.Errorf("%w: count %d outside [1, %d]", shortid.ErrInvalidArgument, n, MaxCount)
	}
	return nil
}
