package commands

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/termlinks/internal/core/config"
	"github.com/hay-kot/termlinks/internal/core/history"
	"github.com/hay-kot/termlinks/internal/detect"
	"github.com/hay-kot/termlinks/internal/integration/terminal/tmux"
	"github.com/hay-kot/termlinks/internal/opener"
	"github.com/hay-kot/termlinks/pkg/executil"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Exec launches programs and runs tmux
	Exec executil.Executor

	// HistoryStore records every open attempt
	HistoryStore history.Store
}

// NewDetector returns an empty detector configured from Config.
func (f *Flags) NewDetector() *detect.Detector {
	return detect.New(
		detect.WithIgnore(f.Config.Scan.Ignore...),
		detect.WithLogger(log.With().Str("component", "detect").Logger()),
	)
}

// NewOpener returns an opener configured from Config.
func (f *Flags) NewOpener() (*opener.Opener, error) {
	logger := log.With().Str("component", "opener").Logger()

	resolver, err := opener.NewResolver(opener.ResolverOptions{
		OpenCommand: f.Config.Opener.OpenCommand,
		EditorEnv:   f.Config.Opener.EditorEnv,
	}, logger)
	if err != nil {
		return nil, err
	}

	return opener.New(resolver, f.Exec, f.HistoryStore, logger), nil
}

// Tmux returns the tmux integration configured from Config.
func (f *Flags) Tmux() *tmux.Integration {
	return tmux.New(f.Config.Tmux.Path, f.Exec)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := homedir.Dir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "termlinks", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := homedir.Dir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "termlinks")
}
