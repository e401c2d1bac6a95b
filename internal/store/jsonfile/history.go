// Package jsonfile stores termlinks data as JSON files under the data directory.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hay-kot/termlinks/internal/core/history"
)

// historyVersion is the on-disk format written by this package.
const historyVersion = 1

type historyFile struct {
	Version int             `json:"version"`
	Entries []history.Entry `json:"entries"`
}

// HistoryStore implements history.Store with a single JSON file.
type HistoryStore struct {
	path       string
	maxEntries int
	mu         sync.RWMutex
}

// NewHistoryStore returns a store backed by path. maxEntries <= 0 keeps
// every entry.
func NewHistoryStore(path string, maxEntries int) *HistoryStore {
	return &HistoryStore{path: path, maxEntries: maxEntries}
}

func (s *HistoryStore) List(ctx context.Context) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.read()
	if err != nil {
		return nil, err
	}
	return f.Entries, nil
}

func (s *HistoryStore) Get(ctx context.Context, ref string) (history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := s.read()
	if err != nil {
		return history.Entry{}, err
	}
	return history.Find(f.Entries, ref)
}

func (s *HistoryStore) Save(ctx context.Context, entry history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.read()
	if err != nil {
		return err
	}

	entries := make([]history.Entry, 0, len(f.Entries)+1)
	entries = append(entries, entry)
	entries = append(entries, f.Entries...)
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}

	return s.write(entries)
}

func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(nil)
}

// read loads the file. A missing or empty file is an empty history.
func (s *HistoryStore) read() (historyFile, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return historyFile{Version: historyVersion}, nil
	case err != nil:
		return historyFile{}, fmt.Errorf("read history: %w", err)
	case len(data) == 0:
		return historyFile{Version: historyVersion}, nil
	}

	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return historyFile{}, fmt.Errorf("history file %s is corrupted (reset it with 'termlinks history --clear'): %w", s.path, err)
	}
	if f.Version > historyVersion {
		return historyFile{}, fmt.Errorf("history file %s has version %d, this build reads up to %d", s.path, f.Version, historyVersion)
	}

	return f, nil
}

// write replaces the file through a temp file in the same directory so
// readers never see a partial document.
func (s *HistoryStore) write(entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}

	data, err := json.MarshalIndent(historyFile{Version: historyVersion, Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp history: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

var _ history.Store = (*HistoryStore)(nil)
