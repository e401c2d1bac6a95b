package terminal

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ChangeTracker reports whether the rows of a display differ from the last
// rows it saw. Pollers use it to skip rescanning an unchanged screen so the
// detector generation only advances on real changes.
type ChangeTracker struct {
	lastHash string
}

// NewChangeTracker creates a tracker that treats the first rows as changed.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{}
}

// Changed records rows and returns true if they differ from the previous call.
func (t *ChangeTracker) Changed(rows []string) bool {
	hash := hashRows(rows)
	if t.lastHash != "" && hash == t.lastHash {
		return false
	}
	t.lastHash = hash
	return true
}

// Reset forgets the last rows so the next call reports a change.
func (t *ChangeTracker) Reset() {
	t.lastHash = ""
}

func hashRows(rows []string) string {
	h := sha256.New()
	for _, row := range rows {
		// trailing padding from the pane width is not content
		h.Write([]byte(strings.TrimRight(row, " ")))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
