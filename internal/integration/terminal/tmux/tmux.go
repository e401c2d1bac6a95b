// Package tmux reads pane contents from tmux.
package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/termlinks/internal/integration/terminal"
	"github.com/hay-kot/termlinks/pkg/executil"
)

// Integration captures tmux panes through an executor.
type Integration struct {
	path string
	exec executil.Executor
}

// New creates a tmux integration. path is the tmux binary; empty means "tmux".
func New(path string, exec executil.Executor) *Integration {
	if path == "" {
		path = "tmux"
	}
	return &Integration{path: path, exec: exec}
}

// Name returns "tmux".
func (t *Integration) Name() string {
	return "tmux"
}

// Available returns true if tmux is installed and runs.
func (t *Integration) Available(ctx context.Context) bool {
	_, err := t.exec.Run(ctx, t.path, "-V")
	return err == nil
}

// Version returns the output of "tmux -V".
func (t *Integration) Version(ctx context.Context) (string, error) {
	out, err := t.exec.Run(ctx, t.path, "-V")
	if err != nil {
		return "", fmt.Errorf("tmux version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Capture returns the visible rows of the target pane. An empty target means
// the current pane.
func (t *Integration) Capture(ctx context.Context, target string) ([]string, error) {
	// -p: print to stdout
	// -J is not used: joined lines would no longer match screen coordinates
	args := []string{"capture-pane", "-p"}
	if target != "" {
		args = append(args, "-t", target)
	}

	out, err := t.exec.Run(ctx, t.path, args...)
	if err != nil {
		return nil, fmt.Errorf("capture-pane %q failed: %w", target, err)
	}

	return terminal.Lines(string(out)), nil
}

// Source returns a terminal.Source that captures target on every call.
func (t *Integration) Source(target string) terminal.Source {
	return &paneSource{tmux: t, target: target}
}

type paneSource struct {
	tmux   *Integration
	target string
}

func (s *paneSource) Name() string {
	if s.target == "" {
		return "tmux"
	}
	return "tmux:" + s.target
}

func (s *paneSource) Rows(ctx context.Context) ([]string, error) {
	return s.tmux.Capture(ctx, s.target)
}
