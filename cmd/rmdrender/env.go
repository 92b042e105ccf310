package main

import (
	"io"
	"os"
	"os/exec"
	"time"

	rmdrender "github.com/alnah/go-rmdrender"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, process environment, and engine execution.
type Environment struct {
	Now      func() time.Time
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Environ  []string                     // KEY=value pairs, as from os.Environ
	LookPath func(string) (string, error) // executable lookup
	Runner   rmdrender.CommandRunner      // runs the engine and doctor probes
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Environ:  os.Environ(),
		LookPath: exec.LookPath,
		Runner:   &rmdrender.ExecRunner{},
	}
}
