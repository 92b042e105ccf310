package main

import (
	"errors"

	rmdrender "github.com/alnah/go-rmdrender"
)

// Exit codes for the rmdrender CLI. Any other status is the engine's own.
const (
	ExitSuccess = 0 // Render completed
	ExitGeneral = 1 // Usage, validation, environment, or engine start error
)

// exitCodeFor returns the exit code for an error.
// An engine exit status is propagated verbatim.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *rmdrender.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneral
}

// needsUsage reports whether the usage message should follow err.
func needsUsage(err error) bool {
	return errors.Is(err, errHelp) ||
		errors.Is(err, ErrFlags) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrExtraArgs) ||
		errors.Is(err, rmdrender.ErrEngineNotFound) ||
		errors.Is(err, rmdrender.ErrUnsupportedExtension) ||
		errors.Is(err, rmdrender.ErrUnsupportedFormat)
}
