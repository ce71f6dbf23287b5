// Package main provides the entry point for tokenadm.
//
// tokenadm manages the authentication tokens kept in a JSON token file
// (database/tokens.lotus by default) through an interactive menu:
//
//   - List tokens with masked identifiers and ACTIVE/EXPIRED status
//   - Add, remove and update tokens
//   - Remove every expired token in one confirmed batch
//   - Show statistics
//
// Usage:
//
//	tokenadm
//	tokenadm --file /srv/app/database/tokens.lotus
//	tokenadm --log-file tokenadm.log --log-level info
//	tokenadm config show
package main
