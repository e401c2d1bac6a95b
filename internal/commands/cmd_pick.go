package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/termlinks/internal/integration/terminal"
	"github.com/hay-kot/termlinks/internal/printer"
	"github.com/hay-kot/termlinks/internal/tui"
)

// defaultRefresh is how often --tmux panes are recaptured unless --refresh says otherwise.
const defaultRefresh = 2 * time.Second

type PickCmd struct {
	flags *Flags
	input inputFlags

	// Command-specific flags
	refresh  time.Duration
	follow   bool
	stayOpen bool
}

// NewPickCmd creates a new pick command
func NewPickCmd(flags *Flags) *PickCmd {
	return &PickCmd{flags: flags}
}

// Register adds the pick command to the application
func (cmd *PickCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "pick",
		Usage:     "Choose a link interactively and open it",
		UsageText: "termlinks pick [--file FILE [--follow] | --tmux [--target PANE] [--refresh DURATION]] [--stay]",
		Description: `Opens a picker listing every link in the input. Press enter to open the
selected link, / to filter, r to rescan, and q to quit.

With --tmux and --refresh the pane is recaptured periodically and the list
follows the screen. With --file and --follow the file is rescanned whenever
it changes.`,
		Flags: append(cmd.input.Flags(),
			&cli.DurationFlag{
				Name:        "refresh",
				Usage:       "reread the tmux pane at this interval (0 disables)",
				Value:       defaultRefresh,
				Destination: &cmd.refresh,
			},
			&cli.BoolFlag{
				Name:        "follow",
				Usage:       "rescan --file whenever it changes",
				Destination: &cmd.follow,
			},
			&cli.BoolFlag{
				Name:        "stay",
				Usage:       "keep the picker open after opening a link",
				Destination: &cmd.stayOpen,
			},
		),
		Action: cmd.run,
	})

	return app
}

// IsTUI reports whether args select the picker. Logs are buffered while
// it owns the screen.
func IsTUI(args []string) bool {
	return slices.Contains(args, "pick")
}

func (cmd *PickCmd) run(ctx context.Context, _ *cli.Command) error {
	src, err := cmd.input.Source(cmd.flags)
	if err != nil {
		return err
	}

	o, err := cmd.flags.NewOpener()
	if err != nil {
		return err
	}

	opts := tui.Options{StayOpen: cmd.stayOpen}

	switch src := src.(type) {
	case *terminal.ReaderSource:
		// piped input cannot change
	case *terminal.FileSource:
		if cmd.follow {
			w, err := terminal.WatchFile(src.Name(), log.With().Str("component", "watch").Logger())
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()
			opts.Changes = w.Changes()
		}
	default:
		opts.RefreshInterval = cmd.refresh
	}

	m := tui.New(src, cmd.flags.NewDetector(), o, opts)

	// stdin may be the piped text, so keys are read from the terminal
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer func() { _ = tty.Close() }()
		programOpts = append(programOpts, tea.WithInput(tty))
	}

	final, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	if fm, ok := final.(tui.Model); ok {
		if l, ok := fm.Opened(); ok {
			printer.Ctx(ctx).Successf("Opened %s", l.Text)
		}
	}

	return nil
}
