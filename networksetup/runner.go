package networksetup

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// DefaultTool is the command looked up on PATH when no explicit tool path
// is configured.
const DefaultTool = "networksetup"

// ErrToolNotFound is returned when the networksetup binary cannot be
// located or launched. It is the only error this package produces itself;
// a non-zero exit status of the tool is reported via Status, not as an
// error.
var ErrToolNotFound = errors.New("networksetup tool not found")

// Status is the exit outcome of a single networksetup invocation. The code
// is passed through from the tool unchanged; this package does not
// interpret it.
type Status struct {
	Code int
}

// Success reports whether the tool exited with status zero.
func (s Status) Success() bool {
	return s.Code == 0
}

// Runner executes one networksetup invocation with the given arguments.
// The production runner shells out; tests substitute a recording runner.
type Runner interface {
	Run(ctx context.Context, args ...string) (Status, error)
}

// execRunner runs the real tool via os/exec with both output streams
// discarded.
type execRunner struct {
	tool string
}

func (r *execRunner) Run(ctx context.Context, args ...string) (Status, error) {
	cmd := exec.CommandContext(ctx, r.tool, args...)
	// Stdout and Stderr stay nil so both streams go to the null device.
	err := cmd.Run()
	if err == nil {
		return Status{}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Status{Code: exitErr.ExitCode()}, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return Status{}, fmt.Errorf("%w: %v", ErrToolNotFound, err)
	}
	return Status{}, fmt.Errorf("launch %s: %w", r.tool, err)
}
