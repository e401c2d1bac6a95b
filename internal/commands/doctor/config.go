package doctor

import (
	"context"
	"errors"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/termlinks/internal/core/config"
)

// ConfigCheck reports where the configuration came from and every
// validation error and warning in it.
type ConfigCheck struct {
	config *config.Config
	path   string
}

func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{config: cfg, path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.fail("Config loaded", "configuration not loaded")
		return result
	}

	err := c.config.Validate()
	warnings := c.config.Warnings()

	if err == nil && len(warnings) == 0 {
		result.pass("Config valid", c.source())
		return result
	}

	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			result.fail(fe.Field, fe.Err.Error())
		}
	default:
		result.fail("validation", err.Error())
	}

	for _, w := range warnings {
		label := w.Category
		if w.Item != "" {
			label += " (" + w.Item + ")"
		}
		result.warn(label, w.Message)
	}

	return result
}

func (c *ConfigCheck) source() string {
	if c.path == "" {
		return "defaults"
	}
	if _, err := os.Stat(c.path); err != nil {
		return "defaults (" + c.path + " not found)"
	}
	return c.path
}
