package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/taskplanner/internal/cmd"
	"github.com/felixgeelhaar/taskplanner/internal/exitcode"
	"github.com/felixgeelhaar/taskplanner/internal/ux"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		exitcode.Exit(exitcode.Success)
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
		exitcode.Exit(exitcode.Interrupted)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", ux.EnhanceError(err))
	exitcode.ExitWithError(err)
}
