package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/tokenadm/internal/infra/confloader"
)

// DotEnvFile is read from the working directory for TOKENADM_* settings.
const DotEnvFile = ".env"

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".tokenadm", "config.yaml")
}

// Load builds the CLI configuration from defaults, the YAML config file,
// the .env file, TOKENADM_* environment variables and flag overrides, in
// that order.
//
// An explicit path must exist. With an empty path the default config file
// is read only when present.
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	path = ResolvePath(path)

	cfg := Default()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithDotEnvFile(DotEnvFile),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		if err := loader.LoadMap(flags); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal flags: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePath returns the config file Load reads for path: path itself
// when set, otherwise the default path if that file exists, otherwise "".
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	return existing(DefaultConfigPath())
}

func existing(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return path
}
