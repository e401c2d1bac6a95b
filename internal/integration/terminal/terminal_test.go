package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single row", content: "see /etc/hosts", want: []string{"see /etc/hosts"}},
		{name: "trailing newline dropped", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank rows kept", content: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{
			name:    "ansi colors stripped",
			content: "\x1b[31merror\x1b[0m in \x1b[1m/var/log/app.log\x1b[0m",
			want:    []string{"error in /var/log/app.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Lines(tt.content))
		})
	}
}

func TestReaderSource(t *testing.T) {
	t.Parallel()

	src := NewReaderSource("stdin", strings.NewReader("one\ntwo\n"))
	assert.Equal(t, "stdin", src.Name())

	rows, err := src.Rows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, rows)

	// reader is exhausted; rows are remembered
	rows, err = src.Rows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, rows)
}

func TestReaderSource_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReaderSource("stdin", strings.NewReader("x")).Rows(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestChangeTracker(t *testing.T) {
	t.Parallel()

	tracker := NewChangeTracker()

	assert.True(t, tracker.Changed([]string{"a", "b"}), "first rows are a change")
	assert.False(t, tracker.Changed([]string{"a", "b"}))
	assert.False(t, tracker.Changed([]string{"a  ", "b"}), "trailing padding ignored")
	assert.True(t, tracker.Changed([]string{"a", "c"}))
	assert.True(t, tracker.Changed(nil))
	assert.False(t, tracker.Changed(nil))

	tracker.Reset()
	assert.True(t, tracker.Changed(nil))
}
