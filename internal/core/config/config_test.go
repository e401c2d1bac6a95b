package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, "EDITOR", cfg.Opener.EditorEnv)
	assert.Empty(t, cfg.Opener.OpenCommand)
	assert.Equal(t, 200, cfg.History.MaxEntries)
	assert.Equal(t, "tmux", cfg.Tmux.Path)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dataDir, "history.json"), cfg.HistoryFile())
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
opener:
  open_command: "firefox --new-tab"
  editor_env: VISUAL
scan:
  ignore:
    - "/tmp/**"
history:
  max_entries: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "firefox --new-tab", cfg.Opener.OpenCommand)
	assert.Equal(t, "VISUAL", cfg.Opener.EditorEnv)
	assert.Equal(t, []string{"/tmp/**"}, cfg.Scan.Ignore)
	assert.Equal(t, 10, cfg.History.MaxEntries)
	assert.Equal(t, "tmux", cfg.Tmux.Path, "unset values fall back to defaults")
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("opener: [unclosed"), 0o644))

	_, err := Load(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  max_entries: -1\n"), 0o644))

	_, err := Load(path, dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "history.max_entries", fieldErrs[0].Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		fields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "empty data dir",
			mutate: func(c *Config) { c.DataDir = "" },
			fields: []string{"data_dir"},
		},
		{
			name:   "bad editor env name",
			mutate: func(c *Config) { c.Opener.EditorEnv = "MY-EDITOR" },
			fields: []string{"opener.editor_env"},
		},
		{
			name:   "unterminated quote in open command",
			mutate: func(c *Config) { c.Opener.OpenCommand = `open "unterminated` },
			fields: []string{"opener.open_command"},
		},
		{
			name:   "blank open command",
			mutate: func(c *Config) { c.Opener.OpenCommand = "   " },
			fields: []string{"opener.open_command"},
		},
		{
			name:   "invalid glob",
			mutate: func(c *Config) { c.Scan.Ignore = []string{"/tmp/**", "/var/[log"} },
			fields: []string{"scan.ignore[1]"},
		},
		{
			name:   "empty tmux path",
			mutate: func(c *Config) { c.Tmux.Path = "" },
			fields: []string{"tmux.path"},
		},
		{
			name: "multiple problems reported together",
			mutate: func(c *Config) {
				c.History.MaxEntries = -5
				c.Tmux.Path = " "
			},
			fields: []string{"history.max_entries", "tmux.path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)

			got := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	cfg.Scan.Ignore = []string{"/tmp/**", "*.log", "**/node_modules/**"}
	cfg.History.MaxEntries = 0

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "ignore[1]", warnings[0].Item)
	assert.Equal(t, "max_entries", warnings[1].Item)
}

func TestRead_DoesNotValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("opener:\n  editor_env: MY-EDITOR\n"), 0o644))

	cfg, err := Read(path, dir)
	require.NoError(t, err)
	assert.Equal(t, "MY-EDITOR", cfg.Opener.EditorEnv)
	require.Error(t, cfg.Validate())

	_, err = Load(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRead_EmptyPath(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Read("", dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Tmux, cfg.Tmux)
	assert.Equal(t, dir, cfg.DataDir)
}
