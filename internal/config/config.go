// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/editscript/internal/diff"
	"github.com/bethropolis/editscript/internal/logger"
)

// ErrInvalidConfig is returned when a setting has no usable value.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // [logger] table
	Diff   DiffConfig    `toml:"diff"`   // [diff] table
}

// DiffConfig holds settings for producing and applying diffs.
type DiffConfig struct {
	Format    string `toml:"format"`     // "json" or "yaml"
	Cleanup   string `toml:"cleanup"`    // "none", "semantic" or "efficiency"
	TimeoutMS int    `toml:"timeout_ms"` // bound on diff computation
	Syntax    bool   `toml:"syntax"`     // reparse supported languages after applying
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Diff: DiffConfig{
			Format:    DefaultFormat,
			Cleanup:   DefaultCleanup,
			TimeoutMS: DefaultTimeoutMS,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" if unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes a TOML file over cfg. A missing file is not an error.
// Keys the file does not set keep their current values.
func loadFromFile(filePath string, cfg *Config) (undecoded []string, err error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets soft errors to defaults and reports values that cannot be used.
func (c *Config) validate() error {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Diff.TimeoutMS <= 0 {
		c.Diff.TimeoutMS = defaults.Diff.TimeoutMS
	}
	if c.Diff.Format == "" {
		c.Diff.Format = defaults.Diff.Format
	}

	if c.Diff.Format != diff.FormatJSON && c.Diff.Format != diff.FormatYAML {
		return fmt.Errorf("%w: diff format %q (want json or yaml)", ErrInvalidConfig, c.Diff.Format)
	}
	if _, ok := diff.ParseCleanup(c.Diff.Cleanup); !ok {
		return fmt.Errorf("%w: diff cleanup %q", ErrInvalidConfig, c.Diff.Cleanup)
	}
	return nil
}

// Load builds the configuration from defaults, the config file and flag
// overrides, in that order. An empty configFilePath uses DefaultPath.
// Unrecognized keys in the file are returned so the caller can warn once
// logging is set up.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var undecoded []string
	if effectivePath != "" {
		var err error
		undecoded, err = loadFromFile(effectivePath, cfg)
		if err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	return cfg, undecoded, nil
}

// DiffOptions converts the diff settings into diff.Options.
func (c *Config) DiffOptions() diff.Options {
	cleanup, _ := diff.ParseCleanup(c.Diff.Cleanup)
	return diff.Options{
		Cleanup: cleanup,
		Timeout: time.Duration(c.Diff.TimeoutMS) * time.Millisecond,
	}
}
