// Package history records every attempt to open a link so it can be listed
// and reopened later.
package history

import (
	"strings"
	"time"

	"github.com/hay-kot/termlinks/internal/core/link"
)

// Entry records one attempt to open a link.
type Entry struct {
	ID       string    `json:"id"`
	Link     link.Link `json:"link"`
	Program  string    `json:"program,omitempty"`
	Args     []string  `json:"args,omitempty"`
	Error    string    `json:"error,omitempty"`
	OpenedAt time.Time `json:"opened_at"`
}

// Failed reports whether the program could not be launched.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// CommandString returns the launched command line, program first.
func (e Entry) CommandString() string {
	if len(e.Args) == 0 {
		return e.Program
	}
	return e.Program + " " + strings.Join(e.Args, " ")
}

// Matches reports whether ref selects e, either as the full ID or a prefix.
func (e Entry) Matches(ref string) bool {
	return ref != "" && strings.HasPrefix(e.ID, ref)
}
