package opener

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/internal/store/jsonfile"
	"github.com/hay-kot/termlinks/pkg/executil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpener(t *testing.T, vars map[string]string, exec *executil.RecordingExecutor) (*Opener, *jsonfile.HistoryStore) {
	t.Helper()

	r, err := NewResolver(ResolverOptions{GOOS: "linux", LookupEnv: env(vars)}, zerolog.Nop())
	require.NoError(t, err)

	store := jsonfile.NewHistoryStore(filepath.Join(t.TempDir(), "history.json"), 10)
	return New(r, exec, store, zerolog.Nop()), store
}

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		vars     map[string]string
		link     link.Link
		wantCmd  string
		wantArgs []string
	}{
		{
			name:     "url",
			link:     link.Link{Kind: link.KindURL, Text: "https://example.com"},
			wantCmd:  "xdg-open",
			wantArgs: []string{"https://example.com"},
		},
		{
			name:     "file with editor",
			vars:     map[string]string{"EDITOR": "vim"},
			link:     link.Link{Kind: link.KindFilePath, Text: "/etc/hosts"},
			wantCmd:  "vim",
			wantArgs: []string{"/etc/hosts"},
		},
		{
			name:     "file without editor",
			link:     link.Link{Kind: link.KindFilePath, Text: "~/notes.md"},
			wantCmd:  "xdg-open",
			wantArgs: []string{"~/notes.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exec := &executil.RecordingExecutor{}
			o, store := newTestOpener(t, tt.vars, exec)

			cmd, err := o.Open(context.Background(), tt.link)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd.Program)
			assert.Equal(t, tt.wantArgs, cmd.Args)

			require.Len(t, exec.Commands, 1)
			assert.Equal(t, executil.RecordedCommand{Cmd: tt.wantCmd, Args: tt.wantArgs, Detached: true}, exec.Commands[0])

			entries, err := store.List(context.Background())
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.link, entries[0].Link)
			assert.False(t, entries[0].Failed())
			assert.Len(t, entries[0].ID, 6)
		})
	}
}

func TestOpener_SpawnFailure(t *testing.T) {
	t.Parallel()

	spawnErr := errors.New("executable file not found")
	exec := &executil.RecordingExecutor{Errors: map[string]error{"xdg-open": spawnErr}}
	o, store := newTestOpener(t, nil, exec)

	l := link.Link{Kind: link.KindURL, Text: "https://example.com"}
	cmd, err := o.Open(context.Background(), l)
	require.ErrorIs(t, err, spawnErr)
	assert.Contains(t, err.Error(), "https://example.com")
	assert.Equal(t, "xdg-open", cmd.Program)

	// no retry
	assert.Len(t, exec.Commands, 1)

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Failed())
	assert.Equal(t, "xdg-open https://example.com", entries[0].CommandString())
}

func TestOpener_UnknownKindDoesNotSpawn(t *testing.T) {
	t.Parallel()

	exec := &executil.RecordingExecutor{}
	o, _ := newTestOpener(t, nil, exec)

	_, err := o.Open(context.Background(), link.Link{Kind: "email", Text: "a@b.c"})
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Empty(t, exec.Commands)
}

func TestOpener_NilHistory(t *testing.T) {
	t.Parallel()

	r, err := NewResolver(ResolverOptions{GOOS: "darwin", LookupEnv: env(nil)}, zerolog.Nop())
	require.NoError(t, err)

	exec := &executil.RecordingExecutor{}
	o := New(r, exec, nil, zerolog.Nop())

	cmd, err := o.Open(context.Background(), link.Link{Kind: link.KindURL, Text: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "open", cmd.Program)
	assert.Same(t, r, o.Resolver())
}
