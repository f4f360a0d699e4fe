// Package app provides application-level helpers shared by command line tools.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Context returns a context that is cancelled when the process receives
// SIGINT or SIGTERM. It is intended to be used as the root context of a
// command line tool's main function.
func Context() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}
