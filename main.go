package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/termlinks/internal/commands"
	"github.com/hay-kot/termlinks/internal/core/config"
	"github.com/hay-kot/termlinks/internal/printer"
	"github.com/hay-kot/termlinks/internal/store/jsonfile"
	"github.com/hay-kot/termlinks/pkg/executil"
	"github.com/hay-kot/termlinks/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

// diagnosticCommands run even when the configuration is invalid so they can
// report what is wrong with it.
var diagnosticCommands = []string{"config", "doctor", "doc"}

func main() {
	if err := setupLogger(logOptions{Level: "info"}); err != nil {
		panic(err)
	}

	var (
		ctx   = printer.NewContext(context.Background(), printer.New(os.Stderr))
		flags = &commands.Flags{}
		// the picker owns the screen; its logs are replayed after it exits
		pickerLogs = &utils.DeferredWriter{}
		picker     = commands.IsTUI(os.Args)
	)

	app := &cli.Command{
		Name:      "termlinks",
		Usage:     "Find and open URLs and file paths shown in your terminal",
		UsageText: "termlinks [global options] command [command options]",
		Description: `termlinks scans terminal text for web URLs and file paths and opens them.

Text comes from stdin, a file, or a tmux pane. URLs open with the platform
open command; file paths open in $EDITOR when it is set.

Run 'termlinks scan' to list links, 'termlinks open' to open one by position,
or 'termlinks pick' to choose interactively.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("TERMLINKS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "also write logs as JSON to this file",
				Sources:     cli.EnvVars("TERMLINKS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TERMLINKS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "directory for the open history",
				Sources:     cli.EnvVars("TERMLINKS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			opts := logOptions{Level: flags.LogLevel, File: flags.LogFile}
			if picker {
				opts.Deferred = pickerLogs
			}
			if err := setupLogger(opts); err != nil {
				return ctx, err
			}

			return ctx, wire(flags, c.Args().First())
		},
	}

	app = commands.NewScanCmd(flags).Register(app)
	app = commands.NewOpenCmd(flags).Register(app)
	app = commands.NewPickCmd(flags).Register(app)
	app = commands.NewHistoryCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)
	app = commands.NewDocCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	if picker {
		if err := pickerLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

// wire loads the configuration and fills in the dependencies shared by all
// commands.
func wire(flags *commands.Flags, command string) error {
	cfg, err := config.Read(flags.ConfigPath, flags.DataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		if !slices.Contains(diagnosticCommands, command) {
			return fmt.Errorf("load config: invalid config: %w", err)
		}
		log.Warn().Err(err).Str("config", flags.ConfigPath).Msg("configuration is invalid")
	}

	flags.Config = cfg
	flags.Exec = &executil.RealExecutor{}
	flags.HistoryStore = jsonfile.NewHistoryStore(cfg.HistoryFile(), cfg.History.MaxEntries)

	log.Debug().
		Str("config", flags.ConfigPath).
		Str("data_dir", cfg.DataDir).
		Strs("ignore", cfg.Scan.Ignore).
		Msg("configuration loaded")

	return nil
}
