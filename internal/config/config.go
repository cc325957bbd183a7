package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/kwsearch/pkg/kwsearch"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ServerConfig struct {
	Name     string `yaml:"name,omitempty"`
	HTTPAddr string `yaml:"http_addr,omitempty"`
}

type LimitsConfig struct {
	MaxMatches        int   `yaml:"max_matches,omitempty"`
	MaxContextLines   int   `yaml:"max_context_lines,omitempty"`
	DefaultMaxMatches int   `yaml:"default_max_matches,omitempty"`
	MaxFileBytes      int64 `yaml:"max_file_bytes,omitempty"`
}

type Config struct {
	WorkspaceRoot string       `yaml:"workspace_root,omitempty"`
	Server        ServerConfig `yaml:"server"`
	Limits        LimitsConfig `yaml:"limits"`
}

const ConfigFileName = "kwsearch.yaml"

// Load reads kwsearch.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the config at path. Unset fields are left zero; call
// ApplyDefaults before use.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", kwsearch.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Default returns a configuration with every field at its built-in default.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields. WorkspaceRoot defaults to the
// current working directory.
func (c *Config) ApplyDefaults() {
	if c.WorkspaceRoot == "" {
		if wd, err := os.Getwd(); err == nil {
			c.WorkspaceRoot = wd
		} else {
			c.WorkspaceRoot = "."
		}
	}
	if c.Server.Name == "" {
		c.Server.Name = kwsearch.DefaultServerName
	}
	if c.Limits.MaxMatches == 0 {
		c.Limits.MaxMatches = kwsearch.MaxMatchesCeiling
	}
	if c.Limits.MaxContextLines == 0 {
		c.Limits.MaxContextLines = kwsearch.MaxContextLinesCeiling
	}
	if c.Limits.DefaultMaxMatches == 0 {
		c.Limits.DefaultMaxMatches = kwsearch.DefaultMaxMatches
		if c.Limits.DefaultMaxMatches > c.Limits.MaxMatches {
			c.Limits.DefaultMaxMatches = c.Limits.MaxMatches
		}
	}
	if c.Limits.MaxFileBytes == 0 {
		c.Limits.MaxFileBytes = kwsearch.DefaultMaxFileBytes
	}
}

// ApplyEnv overrides fields from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if root, ok := lookup(kwsearch.WorkspaceRootEnv); ok && root != "" {
		c.WorkspaceRoot = root
	}
}

// Validate checks the limits against the hard ceilings. Configuration may
// tighten the ceilings but never raise them.
func (c *Config) Validate() error {
	l := c.Limits
	if l.MaxMatches < 1 || l.MaxMatches > kwsearch.MaxMatchesCeiling {
		return fmt.Errorf("%w: limits.max_matches must be between 1 and %d, got %d", kwsearch.ErrInvalidConfig, kwsearch.MaxMatchesCeiling, l.MaxMatches)
	}
	if l.MaxContextLines < 0 || l.MaxContextLines > kwsearch.MaxContextLinesCeiling {
		return fmt.Errorf("%w: limits.max_context_lines must be between 0 and %d, got %d", kwsearch.ErrInvalidConfig, kwsearch.MaxContextLinesCeiling, l.MaxContextLines)
	}
	if l.DefaultMaxMatches < 1 || l.DefaultMaxMatches > l.MaxMatches {
		return fmt.Errorf("%w: limits.default_max_matches must be between 1 and %d, got %d", kwsearch.ErrInvalidConfig, l.MaxMatches, l.DefaultMaxMatches)
	}
	if l.MaxFileBytes < 1 {
		return fmt.Errorf("%w: limits.max_file_bytes must be positive, got %d", kwsearch.ErrInvalidConfig, l.MaxFileBytes)
	}
	return nil
}

// SearchLimits returns the request bounds derived from the configuration.
func (c *Config) SearchLimits() kwsearch.Limits {
	return kwsearch.Limits{
		MaxMatches:      c.Limits.MaxMatches,
		MaxContextLines: c.Limits.MaxContextLines,
	}
}
