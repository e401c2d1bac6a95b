package opener

import (
	"context"
	"fmt"
	"time"

	"github.com/hay-kot/termlinks/internal/core/history"
	"github.com/hay-kot/termlinks/internal/core/link"
	"github.com/hay-kot/termlinks/pkg/executil"
	"github.com/hay-kot/termlinks/pkg/randid"
	"github.com/rs/zerolog"
)

// Opener launches links with the command chosen by its Resolver.
type Opener struct {
	resolver *Resolver
	exec     executil.Executor
	history  history.Store
	log      zerolog.Logger
	now      func() time.Time
}

// New creates an Opener. store may be nil to skip recording history.
func New(resolver *Resolver, exec executil.Executor, store history.Store, log zerolog.Logger) *Opener {
	return &Opener{
		resolver: resolver,
		exec:     exec,
		history:  store,
		log:      log,
		now:      time.Now,
	}
}

// Resolver returns the resolver used to build commands.
func (o *Opener) Resolver() *Resolver {
	return o.resolver
}

// Open launches the program for l without waiting for it. A failure is
// logged and returned for display; it is never retried.
func (o *Opener) Open(ctx context.Context, l link.Link) (Command, error) {
	cmd, err := o.resolver.Resolve(l)
	if err == nil {
		o.log.Debug().
			Str("link", l.Text).
			Str("kind", string(l.Kind)).
			Str("command", cmd.String()).
			Msg("opening link")

		err = o.exec.Start(ctx, cmd.Program, cmd.Args...)
		if err != nil {
			err = fmt.Errorf("open %s with %s: %w", l.Text, cmd.Program, err)
		}
	}

	if err != nil {
		o.log.Error().
			Err(err).
			Str("link", l.Text).
			Str("program", cmd.Program).
			Msg("failed to open link")
	}

	o.record(ctx, l, cmd, err)
	return cmd, err
}

func (o *Opener) record(ctx context.Context, l link.Link, cmd Command, openErr error) {
	if o.history == nil {
		return
	}

	entry := history.Entry{
		ID:       randid.Generate(6),
		Link:     l,
		Program:  cmd.Program,
		Args:     cmd.Args,
		OpenedAt: o.now(),
	}
	if openErr != nil {
		entry.Error = openErr.Error()
	}

	if err := o.history.Save(ctx, entry); err != nil {
		o.log.Warn().Err(err).Msg("failed to record history")
	}
}
