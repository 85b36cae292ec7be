// Package appshell wires a RunContext-style entry point to the process:
// signals, arguments, exit status.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCancelled is the status used when SIGINT/SIGTERM stopped the run.
const ExitCancelled = 130

// Main runs run with os.Args and exits with its status. SIGINT and SIGTERM
// cancel the context passed to run.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(run0(run, os.Args[1:], os.Stdout, os.Stderr))
}

func run0(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = ExitCancelled
	}
	return code
}
