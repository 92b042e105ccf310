package rmdrender

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrEngineNotFound       = errors.New("rendering engine not found")
	ErrEngineStart          = errors.New("failed to start rendering engine")
	ErrEngineFailed         = errors.New("rendering engine failed")
	ErrInputNotFound        = errors.New("input file not found")
	ErrUnsupportedExtension = errors.New("unsupported input extension")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
	ErrOutputDirectory      = errors.New("cannot create output directory")
	ErrInvalidTag           = errors.New("invalid tag")
)

// ExitCodeInterrupted is reported when the engine was stopped by a signal.
const ExitCodeInterrupted = 130

// ExitError reports a non-zero exit of the rendering engine.
// It matches ErrEngineFailed with errors.Is.
type ExitError struct {
	Code     int  // exit status to propagate
	Signaled bool // engine was terminated by a signal
}

func (e *ExitError) Error() string {
	if e.Signaled {
		return fmt.Sprintf("%v: terminated by signal", ErrEngineFailed)
	}
	return fmt.Sprintf("%v: exit status %d", ErrEngineFailed, e.Code)
}

func (e *ExitError) Unwrap() error {
	return ErrEngineFailed
}
