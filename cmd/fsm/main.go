package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yndnr/fsm-go/internal/cli/command"
	"github.com/yndnr/fsm-go/internal/infra/shutdown"
)

func main() {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	app := command.App()

	if err := app.RunContext(ctx, os.Args); err != nil {
		if shutdown.Interrupted(ctx, err) {
			fmt.Fprintln(os.Stderr, "interrupted")
			cancel()
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
