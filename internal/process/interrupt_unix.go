//go:build !windows

// Package process holds platform-specific handling of child processes.
package process

import (
	"os"
	"syscall"
)

// Interrupt asks p to stop the way a terminal Ctrl-C would.
func Interrupt(p *os.Process) error {
	return p.Signal(syscall.SIGINT)
}
