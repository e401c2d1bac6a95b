package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/internal/detect"
	"github.com/hay-kot/termlinks/internal/printer"
)

type ScanCmd struct {
	flags *Flags
	input inputFlags

	// Command-specific flags
	json bool
}

// NewScanCmd creates a new scan command
func NewScanCmd(flags *Flags) *ScanCmd {
	return &ScanCmd{flags: flags}
}

// Register adds the scan command to the application
func (cmd *ScanCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "scan",
		Usage:     "List the links found in terminal text",
		UsageText: "termlinks scan [--file FILE | --tmux [--target PANE]] [--json]",
		Description: `Scans rows of terminal text for URLs and file paths and prints each
link with its 0-based start and end position (row:col, end inclusive).

Rows are read from stdin when it is piped, from --file, or from a tmux pane
with --tmux. URLs are listed before file paths.`,
		Flags: append(cmd.input.Flags(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *ScanCmd) run(ctx context.Context, c *cli.Command) error {
	d, src, err := scanInput(ctx, cmd.flags, &cmd.input)
	if err != nil {
		return err
	}

	out := c.Root().Writer
	if cmd.json {
		return writeScanJSON(out, src, d)
	}

	links := d.Links()
	if len(links) == 0 {
		printer.Ctx(ctx).Infof("No links found in %s", src)
		return nil
	}

	return writeLinkTable(out, links)
}

// scanInput reads rows from the selected source and scans them once.
func scanInput(ctx context.Context, flags *Flags, in *inputFlags) (*detect.Detector, string, error) {
	src, err := in.Source(flags)
	if err != nil {
		return nil, "", err
	}

	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("read rows: %w", err)
	}

	d := flags.NewDetector()
	d.Scan(rows)
	return d, src.Name(), nil
}

type scanJSON struct {
	Source     string      `json:"source"`
	Generation uint64      `json:"generation"`
	Links      []link.Link `json:"links"`
}

func writeScanJSON(w io.Writer, source string, d *detect.Detector) error {
	links := d.Links()
	if links == nil {
		links = []link.Link{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scanJSON{
		Source:     source,
		Generation: d.Generation(),
		Links:      links,
	})
}

func writeLinkTable(out io.Writer, links []link.Link) error {
	cells := printer.New(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tKIND\tSTART\tEND\tTEXT")

	for i, l := range links {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i,
			cells.KindLabel(l.Kind),
			l.Start,
			l.End,
			l.Text,
		)
	}

	return w.Flush()
}
