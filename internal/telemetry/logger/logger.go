// Package logger is the structured log/slog front end of tokenadm.
//
// Attributes whose keys name a secret are masked before they are written,
// so audit lines never carry a full token.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the application logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config holds logger configuration.
type Config struct {
	Level     string    // debug, info, warn or error; empty means warn
	Format    string    // text or json; empty means text
	Output    io.Writer // os.Stderr when nil
	AddSource bool
}

// DefaultConfig keeps the interactive menu readable: warnings and errors
// only, as text on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

type handlerLogger struct {
	sl *slog.Logger
}

// New creates a logger from cfg. Each logger filters on its own level.
func New(cfg Config) (Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			return redactSensitive(a)
		},
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}
	return &handlerLogger{sl: slog.New(h)}, nil
}

func (l *handlerLogger) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }
func (l *handlerLogger) Info(msg string, args ...any)  { l.sl.Info(msg, args...) }
func (l *handlerLogger) Warn(msg string, args ...any)  { l.sl.Warn(msg, args...) }
func (l *handlerLogger) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

func (l *handlerLogger) With(args ...any) Logger {
	return &handlerLogger{sl: l.sl.With(args...)}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logger: unknown level %q", level)
	}
}

type holder struct{ l Logger }

// fallback serves components built without an explicit logger.
var fallback atomic.Pointer[holder]

func init() {
	l, _ := New(DefaultConfig())
	fallback.Store(&holder{l: l})
}

// SetDefault replaces the logger returned by Default. A nil l is ignored.
func SetDefault(l Logger) {
	if l != nil {
		fallback.Store(&holder{l: l})
	}
}

// Default returns the process-wide logger.
func Default() Logger {
	return fallback.Load().l
}
