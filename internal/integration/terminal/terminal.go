// Package terminal turns terminal content into the rows the link detector
// scans.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Source produces the visible rows of a terminal display, top to bottom.
type Source interface {
	// Name identifies the source in logs and output (e.g., "stdin", "tmux:main").
	Name() string
	// Rows returns the current rows. Each call reflects the display at that
	// moment.
	Rows(ctx context.Context) ([]string, error)
}

// Lines splits captured terminal content into rows. Carriage returns and
// ANSI escape sequences are removed so columns count visible characters.
// A final newline does not produce an empty trailing row.
func Lines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	rows := strings.Split(content, "\n")
	for i, row := range rows {
		row = strings.ReplaceAll(row, "\r", "")
		rows[i] = ansi.Strip(row)
	}

	return rows
}

// ReaderSource reads rows from an io.Reader such as stdin or a file. The
// reader is consumed on the first call; later calls return the same rows.
type ReaderSource struct {
	name string
	r    io.Reader
	rows []string
	read bool
}

// NewReaderSource creates a Source backed by r.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

// Name returns the source name.
func (s *ReaderSource) Name() string {
	return s.name
}

// Rows reads the content and splits it into rows.
func (s *ReaderSource) Rows(ctx context.Context) ([]string, error) {
	if s.read {
		return s.rows, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}

	s.rows = Lines(string(data))
	s.read = true
	return s.rows, nil
}

var _ Source = (*ReaderSource)(nil)
