// Package utils holds small helpers shared by the CLI entry point.
package utils

import (
	"io"
	"slices"
	"sync"
)

// DeferredWriter buffers writes until Flush. It holds log output while a
// full screen program owns the terminal.
//
// Each Write is kept as its own entry and replayed as one Write, so writers
// that expect a single log event per call (zerolog.ConsoleWriter) work.
type DeferredWriter struct {
	mu      sync.Mutex
	entries [][]byte
}

// Write stores a copy of p.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries = append(d.entries, slices.Clone(p))
	return len(p), nil
}

// Flush replays every buffered entry to w and empties the buffer.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries := d.entries
	d.entries = nil

	for _, e := range entries {
		if _, err := w.Write(e); err != nil {
			return err
		}
	}
	return nil
}
