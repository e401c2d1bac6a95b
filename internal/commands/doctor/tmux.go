package doctor

import (
	"context"
	"os"
)

// TmuxInfo is the part of the tmux integration the check needs.
type TmuxInfo interface {
	Version(ctx context.Context) (string, error)
}

// TmuxCheck reports whether panes can be captured from tmux. tmux is
// optional, so problems are warnings.
type TmuxCheck struct {
	tmux   TmuxInfo
	inTmux bool
}

// NewTmuxCheck creates a new tmux check.
func NewTmuxCheck(tmux TmuxInfo) *TmuxCheck {
	return &TmuxCheck{tmux: tmux, inTmux: os.Getenv("TMUX") != ""}
}

func (c *TmuxCheck) Name() string {
	return "tmux"
}

func (c *TmuxCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	version, err := c.tmux.Version(ctx)
	if err != nil {
		result.warn("tmux", "not available; --tmux will not work")
		return result
	}

	result.pass("tmux", version)

	if !c.inTmux {
		result.warn("Session", "not running inside tmux; pass --target to choose a pane")
	}

	return result
}
