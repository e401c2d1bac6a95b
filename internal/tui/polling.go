package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/internal/integration/terminal"
	"github.com/hay-kot/termlinks/internal/opener"
)

const (
	rowsTimeout = 5 * time.Second
	openTimeout = 5 * time.Second
)

// rowsLoadedMsg is sent when the source has been read. Only scheduled loads
// arm the next refresh tick, so at most one tick is pending at a time.
type rowsLoadedMsg struct {
	rows      []string
	err       error
	scheduled bool
}

// refreshTickMsg is sent to trigger the next source read.
type refreshTickMsg struct{}

// sourceChangedMsg is sent when a followed file changes.
type sourceChangedMsg struct{}

// linkOpenedMsg is sent when an open attempt finishes launching.
type linkOpenedMsg struct {
	link link.Link
	cmd  opener.Command
	err  error
}

// loadRows returns a command that reads the current rows from src.
func loadRows(src terminal.Source, scheduled bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), rowsTimeout)
		defer cancel()

		rows, err := src.Rows(ctx)
		return rowsLoadedMsg{rows: rows, err: err, scheduled: scheduled}
	}
}

// openLink returns a command that launches l without waiting for the program.
func openLink(o LinkOpener, l link.Link) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
		defer cancel()

		cmd, err := o.Open(ctx, l)
		return linkOpenedMsg{link: l, cmd: cmd, err: err}
	}
}

// scheduleRefresh returns a command that schedules the next source read.
func scheduleRefresh(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// waitForChange returns a command that blocks until changes delivers a value.
// It yields no message once changes is closed.
func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return sourceChangedMsg{}
	}
}
