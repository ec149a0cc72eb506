// Package main provides the netsetup entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rennerdo30/netsetup/internal/cli"
	"github.com/rennerdo30/netsetup/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewCommands()
	err := root.ExecuteContext(ctx)
	logging.Close()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	// Mirror the tool's own exit code when it ran but failed.
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	os.Exit(1)
}
