package command

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tokenadm/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration",
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}

	data, err := yaml.Parser().Marshal(cfg.Map())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "# source: %s\n", describeSource(config.ResolvePath(c.String("config"))))
	fmt.Fprint(w, string(data))
	return nil
}

func configValidate(c *cli.Context) error {
	if _, err := LoadConfig(c); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Configuration is valid (%s)\n", describeSource(config.ResolvePath(c.String("config"))))
	return nil
}

func describeSource(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
