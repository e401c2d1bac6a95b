// Package printer writes the human-facing lines of the CLI: status messages,
// error boxes, doctor items and the colored cells of tables. Color is only
// emitted when the destination is a terminal and NO_COLOR is unset.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"golang.org/x/term"

	"github.com/hay-kot/termlinks/internal/core/link"
)

// ANSI color codes (Tokyo Night palette)
const (
	ColorReset     = "\033[0m"
	ColorRed       = "\033[38;2;215;95;107m"  // #d75f6b
	ColorGreen     = "\033[38;2;158;206;106m" // #9ece6a
	ColorYellow    = "\033[38;2;224;175;104m" // #e0af68
	ColorCyan      = "\033[38;2;125;207;255m" // #7dcfff
	ColorGray      = "\033[38;2;86;95;137m"   // #565f89
	ColorBold      = "\033[1m"
	ColorUnderline = "\033[4m"
)

const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Printer writes styled lines to a writer.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer for w. Color is enabled when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: ColorEnabled(w)}
}

// WithColor returns a copy of p with color forced on or off.
func (p *Printer) WithColor(on bool) *Printer {
	return &Printer{w: p.w, color: on}
}

// ColorEnabled reports whether w is a terminal and NO_COLOR is unset.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer carried by ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// FatalError prints err in a box. It does not exit.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.validationBox(err, fieldErrs)
		return
	}

	p.box("Error", []string{p.paint(ColorGray, err.Error())})
}

// validationBox lists each field error under the message that wrapped them,
// e.g. "load config: invalid config".
func (p *Printer) validationBox(wrapped error, fieldErrs criterio.FieldErrors) {
	var body []string

	msg, fields := wrapped.Error(), fieldErrs.Error()
	if idx := strings.Index(msg, fields); idx > 0 {
		body = append(body, p.paint(ColorGray, strings.TrimSuffix(msg[:idx], ": ")), "")
	}

	for _, fe := range fieldErrs {
		line := p.paint(ColorRed, Cross) + " "
		if fe.Field != "" {
			line += p.paint(ColorGray, fe.Field+": ")
		}
		body = append(body, line+fe.Err.Error())
	}

	p.box("Validation Error", body)
}

func (p *Printer) box(title string, body []string) {
	var b strings.Builder
	b.WriteString(p.paint(ColorRed, "╭ "+title) + "\n")
	for _, line := range body {
		b.WriteString(strings.TrimRight(p.paint(ColorRed, "│")+" "+line, " ") + "\n")
	}
	b.WriteString(p.paint(ColorRed, "╵") + "\n")
	p.write(b.String())
}

func (p *Printer) Errorf(format string, args ...any) {
	p.write(p.paint(ColorRed, Cross+" "+fmt.Sprintf(format, args...)) + "\n")
}

func (p *Printer) Successf(format string, args ...any) {
	p.write(p.paint(ColorGreen, Check+" "+fmt.Sprintf(format, args...)) + "\n")
}

// Success prints message with an optional dimmed detail line under it.
func (p *Printer) Success(message, detail string) {
	p.Successf("%s", message)
	if detail != "" {
		p.write("  " + p.paint(ColorGray, detail) + "\n")
	}
}

func (p *Printer) Infof(format string, args ...any) {
	p.write(p.paint(ColorGray, Dot+" "+fmt.Sprintf(format, args...)) + "\n")
}

func (p *Printer) Warnf(format string, args ...any) {
	p.write(p.paint(ColorYellow, Dot+" "+fmt.Sprintf(format, args...)) + "\n")
}

// Printf prints an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.write(fmt.Sprintf(format, args...) + "\n")
}

// Section prints a bold, underlined heading.
func (p *Printer) Section(title string) {
	p.write(p.paint(ColorBold+ColorUnderline, title) + "\n")
}

func (p *Printer) CheckItem(label, detail string) { p.item(ColorGreen, Check, label, detail) }
func (p *Printer) WarnItem(label, detail string) { p.item(ColorYellow, Dot, label, detail) }
func (p *Printer) FailItem(label, detail string) { p.item(ColorRed, Cross, label, detail) }

func (p *Printer) item(color, symbol, label, detail string) {
	line := "  " + p.paint(color, symbol) + " " + label
	if detail != "" {
		line += ": " + detail
	}
	p.write(line + "\n")
}

// StatusOK is the table cell for a successful open.
func (p *Printer) StatusOK() string {
	return p.paint(ColorGreen, Check) + " ok"
}

// StatusFailed is the table cell for a failed open.
func (p *Printer) StatusFailed(msg string) string {
	return p.paint(ColorRed, Cross) + " " + msg
}

// KindLabel is the short table label for a link kind.
func (p *Printer) KindLabel(k link.Kind) string {
	switch k {
	case link.KindURL:
		return p.paint(ColorCyan, "url")
	case link.KindFilePath:
		return p.paint(ColorYellow, "path")
	default:
		return p.paint(ColorGray, string(k))
	}
}

func (p *Printer) paint(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ColorReset
}

func (p *Printer) write(s string) {
	_, _ = io.WriteString(p.w, s)
}
