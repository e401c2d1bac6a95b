package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/termlinks/internal/printer"
	"github.com/hay-kot/termlinks/internal/styles"
)

type HistoryCmd struct {
	flags *Flags

	// Command-specific flags
	clear  bool
	yes    bool
	reopen string
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View or manage opened links",
		UsageText: "termlinks history [--clear [--yes] | --reopen ID]",
		Description: `View or manage the history of opened links.

By default, lists recent opens with their IDs, command, status, and timestamp.
Use --reopen to open a recorded link again.
Use --clear to remove all history entries.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "clear",
				Aliases:     []string{"c"},
				Usage:       "clear all history",
				Destination: &cmd.clear,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt for --clear",
				Destination: &cmd.yes,
			},
			&cli.StringFlag{
				Name:        "reopen",
				Usage:       "open the link recorded under `ID` (or a unique prefix of it) again",
				Destination: &cmd.reopen,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	switch {
	case cmd.clear && cmd.reopen != "":
		return fmt.Errorf("--clear and --reopen cannot be combined")
	case cmd.clear:
		return cmd.runClear(ctx, p)
	case cmd.reopen != "":
		return cmd.runReopen(ctx, p)
	}

	return cmd.runList(ctx, c)
}

func (cmd *HistoryCmd) runList(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.flags.HistoryStore.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		printer.Ctx(ctx).Infof("No history")
		return nil
	}

	out := c.Root().Writer
	cells := printer.New(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tKIND\tCOMMAND\tSTATUS\tTIME")

	for _, e := range entries {
		status := cells.StatusOK()
		if e.Failed() {
			status = cells.StatusFailed("failed")
		}

		cmdStr := e.CommandString()
		if len(cmdStr) > 60 {
			cmdStr = cmdStr[:57] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			cells.KindLabel(e.Link.Kind),
			cmdStr,
			status,
			e.OpenedAt.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}

func (cmd *HistoryCmd) runReopen(ctx context.Context, p *printer.Printer) error {
	entry, err := cmd.flags.HistoryStore.Get(ctx, cmd.reopen)
	if err != nil {
		return err
	}

	o, err := cmd.flags.NewOpener()
	if err != nil {
		return err
	}

	// resolved again: the editor preference may have changed since
	resolved, err := o.Open(ctx, entry.Link)
	if err != nil {
		p.Errorf("%v", err)
		return cli.Exit("", 1)
	}

	p.Success("Opened "+entry.Link.Text, resolved.String())
	return nil
}

func (cmd *HistoryCmd) runClear(ctx context.Context, p *printer.Printer) error {
	if !cmd.yes {
		confirmed := false
		confirm := huh.NewConfirm().
			Title("Clear all history?").
			Description("This cannot be undone.").
			Affirmative("Clear").
			Negative("Cancel").
			Value(&confirmed)

		form := huh.NewForm(huh.NewGroup(confirm)).WithTheme(styles.FormTheme())
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirm: %w", err)
		}

		if !confirmed {
			p.Infof("History kept")
			return nil
		}
	}

	if err := cmd.flags.HistoryStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	p.Successf("History cleared")
	return nil
}
