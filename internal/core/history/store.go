package history

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no entry matches an ID.
	ErrNotFound = errors.New("history entry not found")
	// ErrAmbiguous is returned when an ID prefix matches more than one entry.
	ErrAmbiguous = errors.New("history id is ambiguous")
)

// Store persists activation history.
type Store interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// Get returns the entry whose ID is ref or starts with ref.
	Get(ctx context.Context, ref string) (Entry, error)
	// Save prepends entry, dropping the oldest entries beyond the store's limit.
	Save(ctx context.Context, entry Entry) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Find selects the entry matching ref. An exact ID wins over prefix matches.
func Find(entries []Entry, ref string) (Entry, error) {
	var (
		found   Entry
		matches int
	)

	for _, e := range entries {
		if e.ID == ref {
			return e, nil
		}
		if e.Matches(ref) {
			found = e
			matches++
		}
	}

	switch matches {
	case 0:
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
	case 1:
		return found, nil
	default:
		return Entry{}, fmt.Errorf("%w: %q matches %d entries", ErrAmbiguous, ref, matches)
	}
}
