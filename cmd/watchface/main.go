// Command watchface draws an analog watchface on a display, or
// renders and traces single frames of it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version is set by the Go linker with -ldflags='-X main.Version=...'.
var Version string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "watchface: %v\n", err)
		os.Exit(1)
	}
}
