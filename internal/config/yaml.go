// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	applog "bithacks/internal/log"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid value")

// Config represents the main application configuration structure, loaded from YAML.
type Config struct {
	Debug        bool              `yaml:"debug"`        // Enable debug logging regardless of log_level.
	LogLevel     string            `yaml:"log_level"`    // Logging level (e.g., "debug", "info", "warn", "error").
	Output       OutputConfig      `yaml:"output"`       // How results are rendered.
	Server       ServerConfig      `yaml:"server"`       // WebSocket evaluation endpoint.
	Permutations PermutationConfig `yaml:"permutations"` // Bit permutation listing.
}

// OutputConfig controls how word results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // "dec", "hex" or "bin".
	Width  int    `yaml:"width"`  // Padding width in bits for hex/bin (8, 16 or 32).
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Address    string `yaml:"address"`     // Listen address (e.g. "127.0.0.1:9191").
	MaxClients int    `yaml:"max_clients"` // Connections beyond this are refused.
	ReadLimit  int64  `yaml:"read_limit"`  // Maximum request frame size in bytes.
}

// PermutationConfig holds settings for the perms command.
type PermutationConfig struct {
	Limit int `yaml:"limit"` // Maximum number of words listed.
}

// LoadConfig loads configuration from a YAML file specified by path. If path is
// empty, it looks for DefaultConfigFile in the working directory and falls back
// to built-in defaults. Environment overrides are applied after loading and the
// result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			cfg.applyEnvOverrides()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid default configuration: %w", err)
			}
			return &cfg, nil
		}
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply environment variable overrides AFTER loading from file.
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	applog.Debugf("configuration: loaded %s", path)
	return &cfg, nil
}

// Validate checks every field against the accepted ranges.
func (c *Config) Validate() error {
	if _, ok := applog.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	if !validWidths[c.Output.Width] {
		return fmt.Errorf("output.width %d must be 8, 16 or 32: %w", c.Output.Width, ErrInvalid)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server.address must be set: %w", ErrInvalid)
	}
	if c.Server.MaxClients <= 0 {
		return fmt.Errorf("server.max_clients must be positive: %w", ErrInvalid)
	}
	if c.Server.ReadLimit <= 0 {
		return fmt.Errorf("server.read_limit must be positive: %w", ErrInvalid)
	}
	if c.Permutations.Limit <= 0 {
		return fmt.Errorf("permutations.limit must be positive: %w", ErrInvalid)
	}
	return nil
}

// ValidateFormat reports whether format names a known output format.
// Case is ignored, as for ENV_OUTPUT_FORMAT.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatDec, FormatHex, FormatBin:
		return nil
	}
	return fmt.Errorf("output.format %q must be dec, hex or bin: %w", format, ErrInvalid)
}

// Level resolves the effective log level; Debug wins over LogLevel.
func (c *Config) Level() applog.LogLevel {
	if c.Debug {
		return applog.LevelDebug
	}
	level, _ := applog.ParseLevel(c.LogLevel)
	return level
}

// applyEnvOverrides lets ENV_* variables replace values from the file.
// Unparseable values are ignored.
func (c *Config) applyEnvOverrides() {
	// ENV_DEBUG
	if val, ok := os.LookupEnv("ENV_DEBUG"); ok {
		if bVal, err := strconv.ParseBool(val); err == nil {
			c.Debug = bVal
			applog.Debugf("configuration: overriding debug from env: %v", bVal)
		}
	}
	// ENV_LOG_LEVEL
	if val, ok := os.LookupEnv("ENV_LOG_LEVEL"); ok {
		c.LogLevel = strings.ToLower(val)
		applog.Debugf("configuration: overriding log_level from env: %s", val)
	}
	// ENV_OUTPUT_FORMAT
	if val, ok := os.LookupEnv("ENV_OUTPUT_FORMAT"); ok {
		c.Output.Format = strings.ToLower(val)
		applog.Debugf("configuration: overriding output.format from env: %s", val)
	}
	// ENV_SERVER_ADDRESS
	if val, ok := os.LookupEnv("ENV_SERVER_ADDRESS"); ok {
		c.Server.Address = val
		applog.Debugf("configuration: overriding server.address from env: %s", val)
	}
}
