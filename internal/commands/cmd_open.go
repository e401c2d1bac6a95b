package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/internal/detect"
	"github.com/hay-kot/termlinks/internal/opener"
	"github.com/hay-kot/termlinks/internal/printer"
)

type OpenCmd struct {
	flags *Flags
	input inputFlags

	// Command-specific flags
	row    int
	col    int
	index  int
	dryRun bool
}

// NewOpenCmd creates a new open command
func NewOpenCmd(flags *Flags) *OpenCmd {
	return &OpenCmd{flags: flags}
}

// Register adds the open command to the application
func (cmd *OpenCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "open",
		Usage:     "Open the link at a position",
		UsageText: "termlinks open (--row R --col C | --index N) [--dry-run] [input options]",
		Description: `Scans the input and opens one link: the first link covering --row/--col,
or the link at position --index in 'termlinks scan' output.

URLs open with the platform open command (open on macOS, xdg-open elsewhere).
File paths open in $EDITOR when it is set, otherwise with the open command.
The program is launched in the background; termlinks does not wait for it.`,
		Flags: append(cmd.input.Flags(),
			&cli.IntFlag{
				Name:        "row",
				Aliases:     []string{"r"},
				Usage:       "0-based row of the link",
				Value:       -1,
				Destination: &cmd.row,
			},
			&cli.IntFlag{
				Name:        "col",
				Usage:       "0-based column of the link",
				Value:       -1,
				Destination: &cmd.col,
			},
			&cli.IntFlag{
				Name:        "index",
				Aliases:     []string{"i"},
				Usage:       "index of the link as listed by scan",
				Value:       -1,
				Destination: &cmd.index,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Aliases:     []string{"n"},
				Usage:       "print the command instead of running it",
				Destination: &cmd.dryRun,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *OpenCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := cmd.validateSelection(); err != nil {
		return err
	}

	d, _, err := scanInput(ctx, cmd.flags, &cmd.input)
	if err != nil {
		return err
	}

	l, err := cmd.selectLink(d)
	if err != nil {
		return err
	}

	o, err := cmd.flags.NewOpener()
	if err != nil {
		return err
	}

	if cmd.dryRun {
		resolved, err := o.Resolver().Resolve(l)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(c.Root().Writer, resolved.String())
		return nil
	}

	resolved, err := o.Open(ctx, l)
	if err != nil {
		// reported, not fatal: the failure is already in the log and history
		p.Errorf("%v", err)
		return cli.Exit("", 1)
	}

	p.Success("Opened "+l.Text, resolved.String())
	return nil
}

func (cmd *OpenCmd) validateSelection() error {
	byPosition := cmd.row >= 0 || cmd.col >= 0
	byIndex := cmd.index >= 0

	switch {
	case byPosition && byIndex:
		return fmt.Errorf("use either --row/--col or --index, not both")
	case byPosition && (cmd.row < 0 || cmd.col < 0):
		return fmt.Errorf("--row and --col must be given together")
	case !byPosition && !byIndex:
		return fmt.Errorf("a link must be selected with --row/--col or --index")
	}

	return nil
}

func (cmd *OpenCmd) selectLink(d *detect.Detector) (link.Link, error) {
	if cmd.index >= 0 {
		links := d.Links()
		if cmd.index >= len(links) {
			return link.Link{}, fmt.Errorf("index %d out of range: %d link(s) found", cmd.index, len(links))
		}
		return links[cmd.index], nil
	}

	l, ok := d.LinkAt(cmd.row, cmd.col)
	if !ok {
		return link.Link{}, fmt.Errorf("%w %d:%d", opener.ErrNoLink, cmd.row, cmd.col)
	}
	return l, nil
}
