package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/alnah/go-rmdrender/internal/config"
)

// envPrefix marks the variables read by rmdrender.
const envPrefix = "RMDRENDER_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string `env:"RMDRENDER_CONFIG"`     // config file name or path
	Rscript    string `env:"RMDRENDER_RSCRIPT"`    // Rscript executable
	Format     string `env:"RMDRENDER_FORMAT"`     // default output format
	TagLabel   string `env:"RMDRENDER_TAG_LABEL"`  // tag label
	TagFormat  string `env:"RMDRENDER_TAG_FORMAT"` // tag timestamp format
}

// knownEnvVars lists valid RMDRENDER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RMDRENDER_CONFIG":     true,
	"RMDRENDER_RSCRIPT":    true,
	"RMDRENDER_FORMAT":     true,
	"RMDRENDER_TAG_LABEL":  true,
	"RMDRENDER_TAG_FORMAT": true,
}

// loadEnvConfig reads configuration from environ (KEY=value pairs).
func loadEnvConfig(environ []string) (*envConfig, error) {
	var cfg envConfig

	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: env.ToMap(environ),
	})
	if err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return &cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized RMDRENDER_* variables.
// Helps catch typos like RMDRENDER_FORMATS instead of RMDRENDER_FORMAT.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable wins over the config file; CLI flags are applied later
// and win over both.
func applyEnvConfig(e *envConfig, cfg *config.Config) {
	if e.Rscript != "" {
		cfg.Engine.Rscript = e.Rscript
	}
	if e.Format != "" {
		cfg.Output.Format = e.Format
	}
	if e.TagLabel != "" {
		cfg.Tag.Label = e.TagLabel
	}
	if e.TagFormat != "" {
		cfg.Tag.Format = e.TagFormat
	}
}
