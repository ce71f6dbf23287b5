// Package command provides CLI command definitions for tokenadm.
//
// This package defines the CLI using urfave/cli/v2:
//
//   - root.go: Root command, global flags, interactive menu action
//   - config.go: Configuration subcommand group
//
// Running tokenadm without a subcommand enters the interactive menu.
package command
