package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-rmdrender/internal/dateutil"
	"github.com/alnah/go-rmdrender/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxFormatLength = 10   // "pdf", "html"
	MaxLabelLength  = 32   // tag label, part of every generated name
)

// appDir is the directory under the user config dir searched for config names.
const appDir = "rmdrender"

// Config holds file-level settings. Empty fields mean "not set" so that
// environment variables and flags can be layered on top.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Output OutputConfig `yaml:"output"`
	Tag    TagConfig    `yaml:"tag"`
}

// EngineConfig locates the rendering engine.
type EngineConfig struct {
	Rscript string `yaml:"rscript"` // Rscript executable name or path (default: "Rscript")
}

// OutputConfig defines output defaults.
type OutputConfig struct {
	Format string `yaml:"format"` // "pdf" or "html" (default: "pdf")
}

// TagConfig defines the name tag appended to generated names.
type TagConfig struct {
	Enabled bool   `yaml:"enabled"` // Tag by default, as if -t were always given
	Label   string `yaml:"label"`   // Fixed label after the underscore (default: "LP")
	Format  string `yaml:"format"`  // Timestamp format (default: "YYMMDD_HHmm")
}

// Validate checks field values and lengths.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("engine.rscript", c.Engine.Rscript, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.format", c.Output.Format, MaxFormatLength); err != nil {
		return err
	}
	switch c.Output.Format {
	case "", "pdf", "html":
	default:
		return fmt.Errorf("%w: output.format %q (must be pdf or html)", ErrInvalidField, c.Output.Format)
	}

	if err := validateFieldLength("tag.label", c.Tag.Label, MaxLabelLength); err != nil {
		return err
	}
	if err := fileutil.ValidatePathComponent(c.Tag.Label); err != nil {
		return fmt.Errorf("%w: tag.label: %v", ErrInvalidField, err)
	}
	if c.Tag.Format != "" {
		if _, err := dateutil.FormatStamp(c.Tag.Format, time0); err != nil {
			return fmt.Errorf("%w: tag.format: %v", ErrInvalidField, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every field falls back to
// the renderer's built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
