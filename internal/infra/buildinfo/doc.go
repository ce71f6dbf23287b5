// Package buildinfo provides build information for tokenadm.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//   - GoVersion: Go compiler version
//
// Values left unset are filled from the binary's embedded build info.
package buildinfo
