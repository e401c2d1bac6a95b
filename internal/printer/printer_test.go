package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/termlinks/internal/core/link"
)

func TestFatalError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(errors.New("no link at position 3:4"))

	assert.Equal(t, "╭ Error\n│ no link at position 3:4\n╵\n", buf.String())
}

func TestFatalError_FieldErrors(t *testing.T) {
	var errs criterio.FieldErrorsBuilder
	errs = errs.Append("opener.editor_env", errors.New("not a valid name"))
	errs = errs.Append("tmux.path", errors.New("cannot be empty"))

	var buf bytes.Buffer
	New(&buf).FatalError(fmt.Errorf("invalid config: %w", errs.ToError()))

	out := buf.String()
	assert.Contains(t, out, "╭ Validation Error\n│ invalid config\n│\n")
	assert.Contains(t, out, "│ ✘ opener.editor_env: not a valid name\n")
	assert.Contains(t, out, "│ ✘ tmux.path: cannot be empty\n")
}

func TestFatalError_Nil(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(nil)
	assert.Empty(t, buf.String())
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer

	plain := New(&buf)
	assert.False(t, ColorEnabled(&buf))
	assert.Equal(t, "url", plain.KindLabel(link.KindURL))
	assert.Equal(t, "✔ ok", plain.StatusOK())

	colored := plain.WithColor(true)
	assert.Equal(t, ColorCyan+"url"+ColorReset, colored.KindLabel(link.KindURL))

	colored.Successf("Opened %s", "/etc/hosts")
	assert.Equal(t, ColorGreen+"✔ Opened /etc/hosts"+ColorReset+"\n", buf.String())
}

func TestKindLabel(t *testing.T) {
	p := New(&bytes.Buffer{})

	assert.Equal(t, "url", p.KindLabel(link.KindURL))
	assert.Equal(t, "path", p.KindLabel(link.KindFilePath))
	assert.Equal(t, "other", p.KindLabel("other"))
}

func TestItems(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.CheckItem("Config", "defaults")
	p.WarnItem("Editor", "")
	p.FailItem("Open", "xdg-open not found")

	assert.Equal(t, "  ✔ Config: defaults\n  • Editor\n  ✘ Open: xdg-open not found\n", buf.String())
}

func TestCtx_Default(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	assert.Same(t, p, Ctx(NewContext(t.Context(), p)))
	assert.NotNil(t, Ctx(t.Context()))
}
