// Package output provides console output for the tokenadm menu.
//
// This package handles all operator-facing text:
//
//   - console.go: status lines (✓ ✗ ⚠ ℹ), headers, prompts
//   - listing.go: token listing, expired summary and statistics
//
// Colors are rendered with pterm and can be turned off per console,
// which keeps output byte-stable for tests and non-terminal use.
package output
