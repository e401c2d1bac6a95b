package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/termlinks/internal/core/config"
	"github.com/hay-kot/termlinks/internal/printer"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates the config command group.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds "config validate" and "config show" to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect the configuration",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Check the configuration file for errors",
				UsageText: "termlinks config validate [--format text|json]",
				Description: `Checks the open command, editor variable, ignore patterns, history limit
and tmux path. Exits 1 when the configuration has errors.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:      "show",
				Usage:     "Print the effective configuration as YAML",
				UsageText: "termlinks config show",
				Action:    cmd.runShow,
			},
		},
	})

	return app
}

// configReport is the result of validating the loaded configuration.
type configReport struct {
	Path     string                     `json:"path"`
	Exists   bool                       `json:"exists"`
	Valid    bool                       `json:"valid"`
	Errors   []configFieldError         `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

type configFieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func newConfigReport(path string, cfg *config.Config) configReport {
	_, statErr := os.Stat(path)
	report := configReport{
		Path:     path,
		Exists:   statErr == nil,
		Warnings: cfg.Warnings(),
	}

	err := cfg.Validate()
	report.Valid = err == nil

	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, configFieldError{Field: fe.Field, Message: fe.Err.Error()})
		}
	default:
		report.Errors = append(report.Errors, configFieldError{Message: err.Error()})
	}

	return report
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	report := newConfigReport(cmd.flags.ConfigPath, cmd.flags.Config)

	switch cmd.format {
	case "json":
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case "text":
		printConfigReport(printer.Ctx(ctx), report)
	default:
		return fmt.Errorf("unknown format %q (want text or json)", cmd.format)
	}

	if !report.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func printConfigReport(p *printer.Printer, r configReport) {
	if r.Exists {
		p.Section(r.Path)
	} else {
		p.Section("defaults (" + r.Path + " not found)")
	}

	for _, fe := range r.Errors {
		label := fe.Field
		if label == "" {
			label = "config"
		}
		p.FailItem(label, fe.Message)
	}
	for _, w := range r.Warnings {
		label := w.Category
		if w.Item != "" {
			label += " " + w.Item
		}
		p.WarnItem(label, w.Message)
	}

	p.Printf("")
	switch {
	case !r.Valid:
		p.Errorf("%d error(s), %d warning(s)", len(r.Errors), len(r.Warnings))
	case len(r.Warnings) > 0:
		p.Successf("Configuration is valid (%d warning(s))", len(r.Warnings))
	default:
		p.Successf("Configuration is valid")
	}
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	if cmd.flags.Config == nil {
		return fmt.Errorf("configuration not loaded")
	}

	enc := yaml.NewEncoder(c.Root().Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cmd.flags.Config); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
