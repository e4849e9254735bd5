package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the process signals that cancel a run.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// WithSignals returns a context that is cancelled on the first SIGINT or
// SIGTERM. A second signal falls back to the default handler, so the
// process dies immediately if cleanup hangs.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, Signals...)

	go func() {
		<-ctx.Done()
		stop()
	}()

	return ctx, stop
}

// Interrupted reports whether err stems from a cancelled run.
func Interrupted(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() != nil
}
