// Package config handles configuration loading and validation for termlinks.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Opener  OpenerConfig  `yaml:"opener"`
	Scan    ScanConfig    `yaml:"scan"`
	History HistoryConfig `yaml:"history"`
	Tmux    TmuxConfig    `yaml:"tmux"`
	DataDir string        `yaml:"-"` // set by caller, not from config file
}

// OpenerConfig controls how detected links are opened.
type OpenerConfig struct {
	// OpenCommand replaces the platform "open a resource" program
	// (open on macOS, xdg-open elsewhere). May include arguments.
	OpenCommand string `yaml:"open_command"`
	// EditorEnv names the environment variable holding the preferred editor
	// for file paths.
	EditorEnv string `yaml:"editor_env"`
}

// ScanConfig tunes link detection.
type ScanConfig struct {
	// Ignore lists doublestar patterns for file paths that should never be
	// reported (e.g. "/tmp/**").
	Ignore []string `yaml:"ignore"`
}

// HistoryConfig controls the activation history.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"` // 0 keeps everything
}

// TmuxConfig configures the tmux pane source.
type TmuxConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Opener: OpenerConfig{
			EditorEnv: "EDITOR",
		},
		Scan: ScanConfig{
			Ignore: []string{},
		},
		History: HistoryConfig{
			MaxEntries: 200,
		},
		Tmux: TmuxConfig{
			Path: "tmux",
		},
	}
}

// Load reads the config file at configPath and validates it. See Read.
func Load(configPath, dataDir string) (*Config, error) {
	cfg, err := Read(configPath, dataDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read returns the defaults overlaid with the config file at configPath,
// without validating the result. A missing file, or an empty configPath,
// yields the defaults. Both paths may start with ~.
func Read(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	dataDir, err := homedir.Expand(dataDir)
	if err != nil {
		return nil, fmt.Errorf("expand data dir: %w", err)
	}

	if configPath != "" {
		configPath, err = homedir.Expand(configPath)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}

		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Opener.EditorEnv == "" {
		c.Opener.EditorEnv = defaults.Opener.EditorEnv
	}
	if c.Tmux.Path == "" {
		c.Tmux.Path = defaults.Tmux.Path
	}
	if c.Scan.Ignore == nil {
		c.Scan.Ignore = defaults.Scan.Ignore
	}
}

// HistoryFile returns the path to the activation history JSON file.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.json")
}
