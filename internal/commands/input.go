package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/termlinks/internal/integration/terminal"
)

// errNoInput is returned when no row source was given and stdin is a terminal.
var errNoInput = errors.New("no input: pipe text to stdin, or use --file or --tmux")

// inputFlags selects where the rows to scan come from. Shared by every
// command that scans.
type inputFlags struct {
	file   string
	tmux   bool
	target string
}

func (in *inputFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "read rows from a file instead of stdin",
			Destination: &in.file,
		},
		&cli.BoolFlag{
			Name:        "tmux",
			Usage:       "capture the visible rows of a tmux pane",
			Destination: &in.tmux,
		},
		&cli.StringFlag{
			Name:        "target",
			Aliases:     []string{"t"},
			Usage:       "tmux target pane (default: current pane)",
			Destination: &in.target,
		},
	}
}

// Source resolves the row source. Precedence: --file, --tmux, piped stdin,
// then the current tmux pane when running inside tmux.
func (in *inputFlags) Source(flags *Flags) (terminal.Source, error) {
	switch {
	case in.file != "" && in.tmux:
		return nil, fmt.Errorf("--file and --tmux cannot be combined")
	case in.file != "":
		path, err := homedir.Expand(in.file)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", in.file, err)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("input file: %w", err)
		}
		return terminal.NewFileSource(path), nil
	case in.tmux || in.target != "":
		return flags.Tmux().Source(in.target), nil
	case !term.IsTerminal(int(os.Stdin.Fd())):
		return terminal.NewReaderSource("stdin", os.Stdin), nil
	case os.Getenv("TMUX") != "":
		return flags.Tmux().Source(""), nil
	default:
		return nil, errNoInput
	}
}
