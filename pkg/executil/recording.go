package executil

import (
	"context"
	"sync"
)

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd      string
	Args     []string
	Detached bool // launched with Start rather than Run
}

// RecordingExecutor captures commands for testing.
// Configure Outputs and Errors maps to control return values.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs maps command names to their output.
	// Key is the command name (e.g., "tmux").
	Outputs map[string][]byte

	// Errors maps command names to their error. LookPath consults it too.
	Errors map[string]error
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	return e.record(false, cmd, args...)
}

// Start records the command as detached and returns the configured error.
func (e *RecordingExecutor) Start(ctx context.Context, cmd string, args ...string) error {
	_, err := e.record(true, cmd, args...)
	return err
}

// LookPath returns "/usr/bin/<cmd>" unless an error is configured for cmd.
func (e *RecordingExecutor) LookPath(cmd string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.Errors[cmd]; err != nil {
		return "", err
	}
	return "/usr/bin/" + cmd, nil
}

func (e *RecordingExecutor) record(detached bool, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:      cmd,
		Args:     args,
		Detached: detached,
	})

	var out []byte
	var err error

	if e.Outputs != nil {
		out = e.Outputs[cmd]
	}
	if e.Errors != nil {
		err = e.Errors[cmd]
	}

	return out, err
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
