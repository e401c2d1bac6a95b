// Package executil provides process execution utilities.
package executil

import (
	"context"
	"fmt"
	"os/exec"
)

// Executor runs external programs.
type Executor interface {
	// Run executes a command and returns its combined output.
	Run(ctx context.Context, cmd string, args ...string) ([]byte, error)
	// Start launches a command without waiting for it to exit. The child
	// outlives ctx; ctx only guards the launch itself.
	Start(ctx context.Context, cmd string, args ...string) error
	// LookPath resolves a program name against PATH.
	LookPath(cmd string) (string, error)
}

// RealExecutor calls actual programs.
type RealExecutor struct{}

// Run executes a command and returns its combined output.
func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, cmd, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return out, nil
}

// Start launches a detached command. The child is reaped in the background
// so it never lingers as a zombie.
func (e *RealExecutor) Start(ctx context.Context, cmd string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c := exec.Command(cmd, args...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd, err)
	}

	go func() { _ = c.Wait() }()
	return nil
}

// LookPath resolves a program name against PATH.
func (e *RealExecutor) LookPath(cmd string) (string, error) {
	return exec.LookPath(cmd)
}
