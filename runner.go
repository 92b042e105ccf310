package rmdrender

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/alnah/go-rmdrender/internal/process"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, cmd *Command) error
}

// Command describes one child process.
type Command struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// defaultWaitDelay bounds how long an interrupted child may keep its
// output pipes open before it is killed.
const defaultWaitDelay = 5 * time.Second

// Compile-time interface implementation check.
var _ CommandRunner = (*ExecRunner)(nil)

// ExecRunner implements CommandRunner using os/exec.
// Canceling ctx interrupts the child rather than killing it outright.
type ExecRunner struct {
	WaitDelay time.Duration // zero means defaultWaitDelay
}

// Run starts the command and waits for it. A non-zero exit is returned
// as *ExitError; other failures are returned as-is.
func (r *ExecRunner) Run(ctx context.Context, c *Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) // #nosec G204 -- engine path is operator-configured
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	cmd.Cancel = func() error {
		return process.Interrupt(cmd.Process)
	}
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = defaultWaitDelay
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return &ExitError{Code: ExitCodeInterrupted, Signaled: true}
		}
		return &ExitError{Code: code}
	}
	return err
}
