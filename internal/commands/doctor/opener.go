package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/termlinks/internal/opener"
	"github.com/hay-kot/termlinks/pkg/executil"
)

// OpenerCheck verifies the programs links are opened with can be found.
type OpenerCheck struct {
	resolver *opener.Resolver
	exec     executil.Executor
}

// NewOpenerCheck creates a new opener check.
func NewOpenerCheck(resolver *opener.Resolver, exec executil.Executor) *OpenerCheck {
	return &OpenerCheck{resolver: resolver, exec: exec}
}

func (c *OpenerCheck) Name() string {
	return "Opener"
}

func (c *OpenerCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	program := c.resolver.OpenProgram()
	if path, err := c.exec.LookPath(program); err != nil {
		result.fail("Open command", fmt.Sprintf("%s not found in PATH; URLs cannot be opened", program))
	} else {
		result.pass("Open command", path)
	}

	editor, ok := c.resolver.Editor()
	if !ok {
		result.warn("Editor", fmt.Sprintf("$%s is not set; file paths open with %s", c.resolver.EditorEnv(), program))
		return result
	}

	if path, err := c.exec.LookPath(editor); err != nil {
		result.fail("Editor", fmt.Sprintf("$%s is %s but it was not found in PATH", c.resolver.EditorEnv(), editor))
	} else {
		result.pass("Editor", path)
	}

	return result
}
