package detect

import (
	"testing"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanURLs(t *testing.T) {
	t.Parallel()

	type want struct {
		text  string
		start int
		end   int
	}

	tests := []struct {
		name string
		row  string
		want []want
	}{
		{
			name: "plain url",
			row:  "Visit https://example.com for info",
			want: []want{{text: "https://example.com", start: 6, end: 24}},
		},
		{
			name: "closing paren excluded",
			row:  "(see https://example.com) for details",
			want: []want{{text: "https://example.com", start: 5, end: 23}},
		},
		{
			name: "trailing period excluded",
			row:  "docs live at https://go.dev/doc.",
			want: []want{{text: "https://go.dev/doc", start: 13, end: 30}},
		},
		{
			name: "balanced parens kept",
			row:  "https://en.wikipedia.org/wiki/Go_(programming_language)",
			want: []want{{text: "https://en.wikipedia.org/wiki/Go_(programming_language)", start: 0, end: 54}},
		},
		{
			name: "two urls left to right",
			row:  "http://a.io and ftp://b.io/x",
			want: []want{
				{text: "http://a.io", start: 0, end: 10},
				{text: "ftp://b.io/x", start: 16, end: 27},
			},
		},
		{
			name: "multibyte prefix counts characters",
			row:  "日本 https://example.com",
			want: []want{{text: "https://example.com", start: 3, end: 21}},
		},
		{
			name: "scheme with digit",
			row:  "copy s3://bucket/key now",
			want: []want{{text: "s3://bucket/key", start: 5, end: 19}},
		},
		{name: "mailto is not a url", row: "write to mailto:gopher@example.com"},
		{name: "bare email is not a url", row: "gopher@example.com"},
		{name: "bare domain is not a url", row: "example.com"},
		{name: "no urls", row: "just some words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScanURLs([]string{tt.row})
			require.Len(t, got, len(tt.want))

			for i, w := range tt.want {
				assert.Equal(t, link.KindURL, got[i].Kind)
				assert.Equal(t, w.text, got[i].Text)
				assert.Equal(t, link.Position{Row: 0, Col: w.start}, got[i].Start)
				assert.Equal(t, link.Position{Row: 0, Col: w.end}, got[i].End)
			}
		})
	}
}

func TestScanURLs_RowOrder(t *testing.T) {
	t.Parallel()

	got := ScanURLs([]string{"https://one.example", "", "x https://three.example"})
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Start.Row)
	assert.Equal(t, 2, got[1].Start.Row)
	assert.Equal(t, 2, got[1].Start.Col)
}
