// Package shutdown ties a run's context to process termination signals.
//
// The CLI wraps its root context so that Ctrl-C between browser launches
// stops the remaining windows instead of killing the process mid-launch:
//
//	ctx, cancel := shutdown.WithSignals(context.Background())
//	defer cancel()
//	err := app.RunContext(ctx, os.Args)
package shutdown
