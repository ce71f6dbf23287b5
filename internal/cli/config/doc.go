// Package config provides CLI configuration for tokenadm.
//
// This package defines CLI-specific configuration:
//
//   - spec.go: CLIConfig struct (~/.tokenadm/config.yaml)
//   - loader.go: Configuration loading and merging
//
// Configuration includes:
//
//   - Token file location
//   - Color settings
//   - Log level, format and destination
package config
