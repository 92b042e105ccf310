//go:build windows

// Package process holds platform-specific handling of child processes.
package process

import "os"

// Interrupt stops p. Windows cannot deliver SIGINT to another process,
// so the child is killed.
func Interrupt(p *os.Process) error {
	return p.Kill()
}
