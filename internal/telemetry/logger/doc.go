// Package logger provides structured logging for tokenadm.
//
// This package wraps log/slog:
//
//   - logger.go: logger configuration, levels and the default logger
//   - redact.go: sensitive data masking
//
// The menu writes operator-facing text to the terminal; this logger
// carries the audit trail of mutations and storage diagnostics, and is
// usually pointed at a file with --log-file.
package logger
