package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the project configuration read from typeeval.yaml.
type Config struct {
	// Stub is the path of the builtin declarations stub. Empty means the
	// stub embedded in the binary.
	Stub string `yaml:"stub,omitempty"`

	// SearchPaths are the roots relative import paths are resolved against.
	// The directory of the importing module is always tried first.
	SearchPaths []string `yaml:"search_paths,omitempty"`

	// Cache is an optional SQLite database receiving per-run type summaries.
	Cache string `yaml:"cache,omitempty"`

	// Verbose enables pipeline logging.
	Verbose bool `yaml:"verbose,omitempty"`

	// dir is the directory the configuration was loaded from; relative paths
	// are resolved against it.
	dir string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{dir: "."}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	for i, p := range c.SearchPaths {
		if p == "" {
			return fmt.Errorf("search_paths[%d]: empty path", i)
		}
	}
	if c.Stub != "" && filepath.Ext(c.Stub) == "" {
		return fmt.Errorf("stub %q: missing file extension", c.Stub)
	}
	return nil
}

// Resolve turns a path from the configuration into one usable from the
// working directory.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// StubPath returns the resolved stub path, "" for the embedded stub.
func (c *Config) StubPath() string {
	return c.Resolve(c.Stub)
}

// CachePath returns the resolved cache path, "" when caching is disabled.
func (c *Config) CachePath() string {
	return c.Resolve(c.Cache)
}

// ResolvedSearchPaths returns SearchPaths resolved against the config directory.
func (c *Config) ResolvedSearchPaths() []string {
	out := make([]string, len(c.SearchPaths))
	for i, p := range c.SearchPaths {
		out[i] = c.Resolve(p)
	}
	return out
}
