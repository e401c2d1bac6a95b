// Package opener decides how to open a detected link and launches it.
package opener

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownKind is returned when a link kind has no open rule.
	ErrUnknownKind = errors.New("unknown link kind")
	// ErrNoLink is returned when nothing is linked at the requested position.
	ErrNoLink = errors.New("no link at position")
)

// Command is a program and its arguments, ready to launch.
type Command struct {
	Program string   `json:"program"`
	Args    []string `json:"args"`
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// PlatformOpenCommand returns the generic "open a resource" program:
// open on macOS and xdg-open everywhere else.
func PlatformOpenCommand(goos string) string {
	if goos == "darwin" {
		return "open"
	}
	return "xdg-open"
}

// ResolverOptions configures a Resolver. Zero values select platform defaults.
type ResolverOptions struct {
	// OpenCommand overrides the platform open program. May include arguments.
	OpenCommand string
	// EditorEnv names the environment variable holding the editor preference.
	// Defaults to EDITOR.
	EditorEnv string
	// GOOS selects the platform open program. Defaults to runtime.GOOS.
	GOOS string
	// LookupEnv reads the environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Resolver maps links to the commands that open them. It never launches
// anything.
type Resolver struct {
	open      []string
	editorEnv string
	lookupEnv func(string) (string, bool)
	log       zerolog.Logger
}

// NewResolver creates a Resolver. It fails only when OpenCommand cannot be
// parsed.
func NewResolver(opts ResolverOptions, log zerolog.Logger) (*Resolver, error) {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.EditorEnv == "" {
		opts.EditorEnv = "EDITOR"
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}

	open := []string{PlatformOpenCommand(opts.GOOS)}
	if opts.OpenCommand != "" {
		words, err := shellwords.Parse(opts.OpenCommand)
		if err != nil {
			return nil, fmt.Errorf("parse open command %q: %w", opts.OpenCommand, err)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("open command %q is blank", opts.OpenCommand)
		}
		open = words
	}

	return &Resolver{
		open:      open,
		editorEnv: opts.EditorEnv,
		lookupEnv: opts.LookupEnv,
		log:       log,
	}, nil
}

// Resolve returns the command that opens l:
//
//	url                        -> open command
//	file path, editor set      -> editor
//	file path, no editor       -> open command
//
// The link text is always the last argument.
func (r *Resolver) Resolve(l link.Link) (Command, error) {
	switch l.Kind {
	case link.KindURL:
		return r.withOpen(l.Text), nil
	case link.KindFilePath:
		if editor, ok := r.editor(); ok {
			return Command{Program: editor[0], Args: append(editor[1:], l.Text)}, nil
		}
		return r.withOpen(l.Text), nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownKind, l.Kind)
	}
}

// OpenProgram returns the program used for URLs and for files when no
// editor is set.
func (r *Resolver) OpenProgram() string {
	return r.open[0]
}

// Editor returns the editor program from the environment, if any.
func (r *Resolver) Editor() (string, bool) {
	editor, ok := r.editor()
	if !ok {
		return "", false
	}
	return editor[0], true
}

// EditorEnv returns the name of the environment variable consulted for the editor.
func (r *Resolver) EditorEnv() string {
	return r.editorEnv
}

func (r *Resolver) withOpen(target string) Command {
	args := make([]string, 0, len(r.open))
	args = append(args, r.open[1:]...)
	return Command{Program: r.open[0], Args: append(args, target)}
}

// editor reads the editor preference at call time. Values such as
// "code --wait" are split into program and leading arguments.
func (r *Resolver) editor() ([]string, bool) {
	value, ok := r.lookupEnv(r.editorEnv)
	if !ok || strings.TrimSpace(value) == "" {
		return nil, false
	}

	words, err := shellwords.Parse(value)
	if err != nil || len(words) == 0 {
		r.log.Warn().
			Err(err).
			Str("env", r.editorEnv).
			Str("value", value).
			Msg("ignoring unparsable editor preference")
		return nil, false
	}

	return words, true
}
