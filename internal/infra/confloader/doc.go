// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (TOKENADM_*)
//  3. .env file in the working directory (TOKENADM_* entries only)
//  4. Configuration file (YAML)
//  5. Default values already present in the target struct
package confloader
