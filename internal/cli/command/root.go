package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokenadm/internal/cli/config"
	"github.com/yndnr/tokenadm/internal/cli/menu"
	"github.com/yndnr/tokenadm/internal/core/service"
	"github.com/yndnr/tokenadm/internal/infra/buildinfo"
	"github.com/yndnr/tokenadm/internal/storage/tokenfile"
	"github.com/yndnr/tokenadm/internal/telemetry/logger"
)

// configHelp lists the configuration sources shown by --help.
const configHelp = `Settings are merged from these sources, later ones winning:

   1. ~/.tokenadm/config.yaml, or the file given with --config
   2. TOKENADM_* variables from a .env file in the working directory
   3. TOKENADM_* environment variables, e.g. TOKENADM_FILE or TOKENADM_LOG_LEVEL
   4. command-line flags

Use "tokenadm config show" to print the merged result.`

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:        "tokenadm",
		Usage:       "Interactive manager for the JSON token file",
		Description: configHelp,
		Version:     buildinfo.String(),
		Flags:   globalFlags(),
		Action:  runMenu,
		Commands: []*cli.Command{
			ConfigCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "Token file path",
			Value:   config.DefaultTokenFile,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file (default: ~/.tokenadm/config.yaml if present; .env and TOKENADM_* variables override it)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to this file instead of stderr",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	ConfigFile string

	// Overrides holds only the flags given on the command line, keyed by
	// configuration path.
	Overrides map[string]any
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	flags := &GlobalFlags{
		ConfigFile: c.String("config"),
		Overrides:  make(map[string]any),
	}

	if c.IsSet("file") {
		flags.Overrides["file"] = c.String("file")
	}
	if c.IsSet("log-level") {
		flags.Overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		flags.Overrides["log.format"] = c.String("log-format")
	}
	if c.IsSet("log-file") {
		flags.Overrides["log.file"] = c.String("log-file")
	}
	if c.IsSet("no-color") {
		flags.Overrides["color"] = !c.Bool("no-color")
	}
	return flags
}

// LoadConfig builds the effective configuration for c.
func LoadConfig(c *cli.Context) (*config.CLIConfig, error) {
	flags := ParseGlobalFlags(c)
	cfg, err := config.Load(flags.ConfigFile, flags.Overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewLogger creates the logger described by cfg. Logs go to cfg.Log.File
// when set, otherwise to stderr. The returned closer releases the log file.
func NewLogger(cfg *config.CLIConfig, stderr io.Writer) (logger.Logger, io.Closer, error) {
	out := stderr
	var closer io.Closer = nopCloser{}

	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: out,
	})
	if err != nil {
		closer.Close()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// runMenu is the default action: it wires storage, service and console
// and runs the interactive loop until the operator exits.
func runMenu(c *cli.Context) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}

	log, closer, err := NewLogger(cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.SetDefault(log)

	log.Debug("starting menu",
		"file", cfg.File,
		"version", buildinfo.Get().Version,
	)

	store := tokenfile.New(cfg.File, tokenfile.WithLogger(log))

	var notifier menu.ChangeNotifier
	if w, err := tokenfile.NewWatcher(cfg.File, tokenfile.WithWatcherLogger(log)); err == nil {
		defer w.Close()
		notifier = w
	} else {
		log.Debug("token file watcher disabled",
			"error", err,
		)
	}

	m := menu.New(&menu.Config{
		Input:   c.App.Reader,
		Output:  c.App.Writer,
		Color:   cfg.Color,
		Store:   store,
		Watcher: notifier,
		Service: service.NewTokenService(&service.TokenServiceConfig{Logger: log}),
		Logger:  log,
	})
	return m.Run()
}
