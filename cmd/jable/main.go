// Command jable pages through tabular data in the terminal.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/rshade/jable/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // Build-time injected value.
var version = "dev"

// exitInterrupted is the conventional exit status after SIGINT.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := exitCode(run(ctx, os.Args[1:]))
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) error {
	root := cli.NewRootCmd(version)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// exitCode maps the command error to a process exit status. Cobra has
// already printed the error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return 1
	}
}
