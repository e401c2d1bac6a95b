package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/mattn/go-shellwords"
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is valid. All problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	if !envNamePattern.MatchString(c.Opener.EditorEnv) {
		errs = errs.Append("opener.editor_env", fmt.Errorf("%q is not a valid environment variable name", c.Opener.EditorEnv))
	}

	if c.Opener.OpenCommand != "" {
		words, err := shellwords.Parse(c.Opener.OpenCommand)
		switch {
		case err != nil:
			errs = errs.Append("opener.open_command", fmt.Errorf("parse: %w", err))
		case len(words) == 0:
			errs = errs.Append("opener.open_command", fmt.Errorf("command is blank"))
		}
	}

	for i, pattern := range c.Scan.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(fmt.Sprintf("scan.ignore[%d]", i), fmt.Errorf("invalid glob pattern %q", pattern))
		}
	}

	if c.History.MaxEntries < 0 {
		errs = errs.Append("history.max_entries", fmt.Errorf("must be 0 or greater"))
	}

	if strings.TrimSpace(c.Tmux.Path) == "" {
		errs = errs.Append("tmux.path", fmt.Errorf("cannot be empty"))
	}

	return errs.ToError()
}

// Warnings returns configuration issues that do not prevent loading.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for i, pattern := range c.Scan.Ignore {
		if strings.HasPrefix(pattern, "/") || strings.HasPrefix(pattern, "~/") || strings.HasPrefix(pattern, "**") {
			continue
		}
		warnings = append(warnings, ValidationWarning{
			Category: "Scan",
			Item:     fmt.Sprintf("ignore[%d]", i),
			Message:  fmt.Sprintf("pattern %q can never match a detected path; paths always start with / or ~/", pattern),
		})
	}

	if c.History.MaxEntries == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "History",
			Item:     "max_entries",
			Message:  "history is unbounded",
		})
	}

	return warnings
}
