//go:build unix

package shutdown

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWithSignals_SIGTERM(t *testing.T) {
	ctx, cancel := WithSignals(context.Background())
	defer cancel()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
}
