// Package config loads and stores the taskplanner configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/taskplanner/internal/errors"
)

const (
	// DirName is the per-user configuration directory under $HOME.
	DirName = ".taskplanner"
	// FileName is the configuration file inside DirName.
	FileName = "config.yaml"
)

// Config is the global taskplanner configuration.
type Config struct {
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	Logging  Logging  `yaml:"logging" json:"logging"`
}

// Defaults are fallback values for command flags.
type Defaults struct {
	Format        string `yaml:"format,omitempty" json:"format,omitempty"`                 // "text", "json", "yaml"
	TimelineWeeks int    `yaml:"timeline_weeks,omitempty" json:"timeline_weeks,omitempty"` // 0 means no timeline
	NoColor       bool   `yaml:"no_color,omitempty" json:"no_color,omitempty"`
}

// Logging configures the process logger.
type Logging struct {
	Level  string `yaml:"level,omitempty" json:"level,omitempty"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty" json:"format,omitempty"` // "text", "json"
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			Format: "text",
		},
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Path returns the default configuration file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName, FileName), nil
}

// Load reads the configuration at path. A missing file yields Default().
// Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("read config: %s", path), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewFileUnmarshalError(path, "YAML", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigInvalidError(path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return errors.NewConfigInvalidError(path, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "marshal config", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("create config directory: %s", dir), err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("write config: %s", path), err)
	}
	return nil
}

// Keys lists the settable configuration keys in display order.
func Keys() []string {
	return []string{
		"defaults.format",
		"defaults.timeline_weeks",
		"defaults.no_color",
		"logging.level",
		"logging.format",
	}
}

// Get returns the value at a dotted key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "defaults.format":
		return c.Defaults.Format, nil
	case "defaults.timeline_weeks":
		return strconv.Itoa(c.Defaults.TimelineWeeks), nil
	case "defaults.no_color":
		return strconv.FormatBool(c.Defaults.NoColor), nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set assigns value to a dotted key. The result is not validated; call
// Validate before saving.
func (c *Config) Set(key, value string) error {
	switch key {
	case "defaults.format":
		c.Defaults.Format = value
	case "defaults.timeline_weeks":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, err)
		}
		c.Defaults.TimelineWeeks = n
	case "defaults.no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", key, err)
		}
		c.Defaults.NoColor = b
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
