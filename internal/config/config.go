// Package config provides read-only preferences for the finder-sidebar tool.
// Values are layered with koanf: built-in defaults, then an optional YAML
// file, then command-line flags that were explicitly set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds the merged configuration (thread-safe)
type Config struct {
	filePath string
	k        *koanf.Koanf
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.RWMutex
}

// DefaultPath returns ~/.config/finder-sidebar/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "finder-sidebar", "config.yaml")
}

// New creates a new Config instance. An empty filePath selects DefaultPath.
func New(filePath string) *Config {
	if filePath == "" {
		filePath = DefaultPath()
	}
	return &Config{
		filePath: filePath,
		k:        koanf.New("."),
	}
}

// ensureLoaded must only be called while holding c.mu.Lock.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.load()
}

// Load reads defaults and the configuration file
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Config) load() error {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults, "."), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	// If file doesn't exist, that's okay - defaults apply
	if _, err := os.Stat(c.filePath); err == nil {
		if err := k.Load(file.Provider(c.filePath), yaml.Parser()); err != nil {
			return fmt.Errorf("error reading config file %s: %w", c.filePath, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file %s: %w", c.filePath, err)
	}

	c.k = k
	c.loaded = true
	return nil
}

// BindFlags overlays flags that were explicitly set and that name a known
// configuration key. Flag names map to keys by replacing '-' with '_'.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return err
	}

	provider := posflag.ProviderWithFlag(flags, ".", c.k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if _, known := Defaults[key]; !known {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	})
	if err := c.k.Load(provider, nil); err != nil {
		return fmt.Errorf("failed to load flags: %w", err)
	}
	return nil
}

// Get retrieves a configuration value (thread-safe)
func (c *Config) Get(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if !c.k.Exists(key) {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return c.k.String(key), nil
}

// GetOrDefault retrieves a value or returns defaultValue if not set
func (c *Config) GetOrDefault(key, defaultValue string) string {
	value, err := c.Get(key)
	if err != nil || value == "" {
		return defaultValue
	}
	return value
}

// Bool retrieves a boolean value; unset or unparsable values are false
func (c *Config) Bool(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return false
	}
	return c.k.Bool(key)
}

// GetAll returns all configuration values as strings (thread-safe)
func (c *Config) GetAll() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return map[string]string{}
	}
	result := make(map[string]string)
	for _, key := range c.k.Keys() {
		result[key] = c.k.String(key)
	}
	return result
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
