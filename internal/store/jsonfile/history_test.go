package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/termlinks/internal/core/history"
	"github.com/hay-kot/termlinks/internal/core/link"
)

func TestHistoryStore(t *testing.T) {
	ctx := t.Context()

	t.Run("list empty when file missing", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), 0)

		entries, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("newest first", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "nested", "history.json"), 0)

		for i, text := range []string{"https://one.example", "/tmp/two"} {
			err := store.Save(ctx, history.Entry{
				ID:       fmt.Sprintf("id%d", i),
				Link:     link.Link{Kind: link.KindURL, Text: text},
				Program:  "xdg-open",
				Args:     []string{text},
				OpenedAt: time.Now(),
			})
			require.NoError(t, err)
		}

		entries, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "/tmp/two", entries[0].Link.Text)
		assert.Equal(t, "https://one.example", entries[1].Link.Text)
	})

	t.Run("keeps link span", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), 0)
		l := link.Link{
			Kind:  link.KindFilePath,
			Start: link.Position{Row: 3, Col: 5},
			End:   link.Position{Row: 3, Col: 14},
			Text:  "/etc/hosts",
		}
		require.NoError(t, store.Save(ctx, history.Entry{ID: "a", Link: l}))

		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, l, got.Link)
	})

	t.Run("prunes to max entries", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), 3)

		for i := range 5 {
			require.NoError(t, store.Save(ctx, history.Entry{ID: fmt.Sprintf("id%d", i)}))
		}

		entries, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "id4", entries[0].ID)
		assert.Equal(t, "id2", entries[2].ID)
	})

	t.Run("get by prefix", func(t *testing.T) {
		store := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), 0)
		require.NoError(t, store.Save(ctx, history.Entry{ID: "k7x2mq"}))
		require.NoError(t, store.Save(ctx, history.Entry{ID: "k7pp3a"}))

		got, err := store.Get(ctx, "k7x")
		require.NoError(t, err)
		assert.Equal(t, "k7x2mq", got.ID)

		_, err = store.Get(ctx, "k7")
		require.ErrorIs(t, err, history.ErrAmbiguous)

		_, err = store.Get(ctx, "missing")
		require.ErrorIs(t, err, history.ErrNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		store := NewHistoryStore(path, 0)
		require.NoError(t, store.Save(ctx, history.Entry{ID: "a"}))

		require.NoError(t, store.Clear(ctx))

		entries, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"entries": []`)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		store := NewHistoryStore(filepath.Join(dir, "history.json"), 0)
		require.NoError(t, store.Save(ctx, history.Entry{ID: "a"}))

		files, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "history.json", files[0].Name())
	})

	t.Run("corrupted file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store := NewHistoryStore(path, 0)
		_, err := store.List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "corrupted")
	})

	t.Run("newer version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": 9, "entries": []}`), 0o644))

		store := NewHistoryStore(path, 0)
		_, err := store.List(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "version 9")
	})
}
