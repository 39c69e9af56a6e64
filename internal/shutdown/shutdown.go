// Package shutdown provides a context canceled on interrupt signals.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context canceled on SIGINT or SIGTERM, and the function that
// releases the signal handlers.
func New() (context.Context, func()) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
