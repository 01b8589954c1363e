package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/confusion/internal/core/config"
	"github.com/colonyops/confusion/internal/core/styles"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "confusion config validate [options]",
				Description: "Validates the configuration file, checking URLs, keybindings, and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationOutput struct {
	Valid    bool                       `json:"valid"`
	Error    string                     `json:"error,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	result := validationOutput{Warnings: cfg.Warnings()}
	if err := cfg.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		result.Error = err.Error()
	} else {
		result.Valid = true
	}

	out := c.Root().Writer
	if cmd.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		outputText(out, result)
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func outputText(out io.Writer, result validationOutput) {
	for _, warn := range result.Warnings {
		_, _ = fmt.Fprintln(out, styles.TextMutedStyle.Render(fmt.Sprintf("%s: %s", warn.Category, warn.Message)))
		if warn.Item != "" {
			_, _ = fmt.Fprintf(out, "  Item: %s\n", warn.Item)
		}
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, styles.SuccessStyle.Render("Configuration is valid"))
		return
	}
	_, _ = fmt.Fprintln(out, styles.ErrorStyle.Render(result.Error))
}
