package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/termlinks/internal/core/config"
	"github.com/hay-kot/termlinks/internal/opener"
	"github.com/hay-kot/termlinks/pkg/executil"
)

func statuses(r Result) []Status {
	out := make([]Status, len(r.Items))
	for i, item := range r.Items {
		out[i] = item.Status
	}
	return out
}

func TestConfigCheck(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		r := NewConfigCheck(nil, "").Run(context.Background())
		assert.Equal(t, []Status{StatusFail}, statuses(r))
	})

	t.Run("defaults pass", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.DataDir = t.TempDir()

		r := NewConfigCheck(&cfg, filepath.Join(t.TempDir(), "missing.yaml")).Run(context.Background())
		assert.Equal(t, []Status{StatusPass}, statuses(r))
		assert.Contains(t, r.Items[0].Detail, "not found")
	})

	t.Run("errors and warnings", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.DataDir = t.TempDir()
		cfg.Opener.EditorEnv = "1BAD"
		cfg.History.MaxEntries = 0

		r := NewConfigCheck(&cfg, "").Run(context.Background())
		assert.Equal(t, []Status{StatusFail, StatusWarn}, statuses(r))
		assert.Equal(t, "opener.editor_env", r.Items[0].Label)
	})
}

func TestOpenerCheck(t *testing.T) {
	t.Parallel()

	newResolver := func(t *testing.T, vars map[string]string) *opener.Resolver {
		t.Helper()
		r, err := opener.NewResolver(opener.ResolverOptions{
			GOOS: "linux",
			LookupEnv: func(key string) (string, bool) {
				v, ok := vars[key]
				return v, ok
			},
		}, zerolog.Nop())
		require.NoError(t, err)
		return r
	}

	tests := []struct {
		name   string
		vars   map[string]string
		errors map[string]error
		want   []Status
	}{
		{
			name: "all found",
			vars: map[string]string{"EDITOR": "vim"},
			want: []Status{StatusPass, StatusPass},
		},
		{
			name: "no editor",
			want: []Status{StatusPass, StatusWarn},
		},
		{
			name:   "open command missing",
			vars:   map[string]string{"EDITOR": "vim"},
			errors: map[string]error{"xdg-open": errors.New("not found")},
			want:   []Status{StatusFail, StatusPass},
		},
		{
			name:   "editor missing",
			vars:   map[string]string{"EDITOR": "code --wait"},
			errors: map[string]error{"code": errors.New("not found")},
			want:   []Status{StatusPass, StatusFail},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exec := &executil.RecordingExecutor{Errors: tt.errors}
			r := NewOpenerCheck(newResolver(t, tt.vars), exec).Run(context.Background())
			assert.Equal(t, tt.want, statuses(r))
		})
	}
}

type fakeTmux struct {
	version string
	err     error
}

func (f fakeTmux) Version(context.Context) (string, error) {
	return f.version, f.err
}

func TestTmuxCheck(t *testing.T) {
	t.Parallel()

	missing := &TmuxCheck{tmux: fakeTmux{err: errors.New("not found")}}
	assert.Equal(t, []Status{StatusWarn}, statuses(missing.Run(context.Background())))

	inside := &TmuxCheck{tmux: fakeTmux{version: "tmux 3.4"}, inTmux: true}
	r := inside.Run(context.Background())
	assert.Equal(t, []Status{StatusPass}, statuses(r))
	assert.Equal(t, "tmux 3.4", r.Items[0].Detail)

	outside := &TmuxCheck{tmux: fakeTmux{version: "tmux 3.4"}}
	assert.Equal(t, []Status{StatusPass, StatusWarn}, statuses(outside.Run(context.Background())))
}

func TestRunAll(t *testing.T) {
	t.Parallel()

	checks := []Check{
		&TmuxCheck{tmux: fakeTmux{version: "tmux 3.4"}},
		NewConfigCheck(nil, ""),
	}

	report := RunAll(context.Background(), checks)
	require.Len(t, report.Checks, 2)
	assert.False(t, report.Healthy)
	assert.Equal(t, Summary{Passed: 1, Warned: 1, Failed: 1}, report.Summary)

	data, err := json.Marshal(report.Checks[1].Items[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Config loaded","status":"fail","detail":"configuration not loaded"}`, string(data))
}

func TestRunAll_WarningsStayHealthy(t *testing.T) {
	t.Parallel()

	report := RunAll(context.Background(), []Check{&TmuxCheck{tmux: fakeTmux{err: errors.New("missing")}}})
	assert.True(t, report.Healthy)
	assert.Equal(t, 1, report.Summary.Warned)
}

func TestStatus_Text(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusPass, StatusWarn, StatusFail} {
		b, err := s.MarshalText()
		require.NoError(t, err)

		var got Status
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}

	var s Status
	require.Error(t, s.UnmarshalText([]byte("maybe")))
}
