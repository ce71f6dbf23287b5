package config

import (
	"fmt"
	"strings"
)

// DefaultTokenFile is the token file used when nothing else is configured.
const DefaultTokenFile = "database/tokens.lotus"

// CLIConfig is the configuration for tokenadm.
type CLIConfig struct {
	// File is the path of the JSON token file.
	File string `koanf:"file"`

	// Color enables colored console output.
	Color bool `koanf:"color"`

	Log LogConfig `koanf:"log"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text, json
	File   string `koanf:"file"`   // empty means stderr
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		File:  DefaultTokenFile,
		Color: true,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *CLIConfig) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("config: token file path is empty")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}

	return nil
}

// Map returns the configuration as nested maps keyed like the YAML file.
func (c *CLIConfig) Map() map[string]any {
	return map[string]any{
		"file":  c.File,
		"color": c.Color,
		"log": map[string]any{
			"level":  c.Log.Level,
			"format": c.Log.Format,
			"file":   c.Log.File,
		},
	}
}
