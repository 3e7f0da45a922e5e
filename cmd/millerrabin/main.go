// Command millerrabin tests the decimal numbers stored in the given files for primality.
//
// Usage:
//
//	millerrabin [flags] FILE...
//
// Each file must contain a single non-negative decimal number, optionally followed by a newline.
// Flags can also be set through environment variables with prefix MILLERRABIN_, e.g. MILLERRABIN_ROUNDS=100.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// On failure, cobra prints the error, so we only need a non-zero exit status.
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
