// Package domain defines the core domain models for tokenadm.
//
// Domain models are pure values without any IO dependencies.
// This package contains:
//
//   - Token: a single token record (client name and expiration)
//   - Table: the ordered token table persisted in the token file
//   - Expiry: second/millisecond scale detection and date formatting
//   - Errors: domain-specific error definitions
package domain
