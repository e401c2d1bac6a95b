package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/termlinks/internal/printer"
)

type DocCmd struct {
	flags *Flags
	raw   bool
}

// NewDocCmd creates a new doc command
func NewDocCmd(flags *Flags) *DocCmd {
	return &DocCmd{flags: flags}
}

// Register adds the doc command to the application
func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show the link detection and open rules",
		Description: `Prints a reference of what termlinks detects as a link and which program
opens it. Output is rendered for the terminal; use --raw for markdown.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DocCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer

	if cmd.raw || !printer.ColorEnabled(w) {
		_, err := io.WriteString(w, rulesGuide)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("tokyo-night"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := renderer.Render(rulesGuide)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}

	_, err = io.WriteString(w, out)
	return err
}

const rulesGuide = `# termlinks rules

## Positions

Rows and columns are 0-based. Columns count characters, not bytes, after
ANSI escape sequences are removed. A link's end position is inclusive.

## URLs

Any ` + "`scheme://...`" + ` URL is a link. Trailing punctuation such as a final
period is not part of the URL, and balanced parentheses are kept:

    see https://en.wikipedia.org/wiki/Go_(programming_language).

Bare domains, email addresses, and ` + "`mailto:`" + ` links are not detected.

## File paths

A path starts with ` + "`/`" + ` or ` + "`~/`" + ` at the start of a row or after whitespace or
one of ` + "`` \" ' ( [ { < ` ; | & ``" + `. It continues over letters, digits, and
` + "`/ . _ - + @ : , = %`" + `. Trailing ` + "`. , : ;`" + ` are dropped.

Never reported:

- ` + "`/`" + ` and ` + "`~/`" + ` on their own
- short single-segment paths such as ` + "`/a`" + `
- devices and pseudo files: ` + "`/dev/null`" + `, ` + "`/dev/zero`" + `, ` + "`/dev/random`" + `,
  ` + "`/dev/urandom`" + `, ` + "`/dev/stdin`" + `, ` + "`/dev/stdout`" + `, ` + "`/dev/stderr`" + `,
  ` + "`/dev/tty*`" + `, ` + "`/dev/fd*`" + `, and anything under ` + "`/proc/`" + ` or ` + "`/sys/`" + `
- paths matching a ` + "`scan.ignore`" + ` pattern

Paths are never checked for existence.

## Opening

| Link | $EDITOR set | Program |
|------|-------------|---------|
| URL | any | open command |
| File path | yes | $EDITOR |
| File path | no | open command |

The open command is ` + "`open`" + ` on macOS and ` + "`xdg-open`" + ` elsewhere unless
` + "`opener.open_command`" + ` is set. The link text is always the last argument.
Programs run in the background and termlinks does not wait for them.

## Configuration

` + "```yaml" + `
opener:
  open_command: ""     # empty = platform default
  editor_env: EDITOR   # variable holding the preferred editor
scan:
  ignore: []           # glob patterns, e.g. "/tmp/**"
history:
  max_entries: 200     # 0 keeps everything
tmux:
  path: tmux
` + "```" + `
`
