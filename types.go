package rmdrender

import (
	"io"
	"path/filepath"
	"time"
)

// Request holds the user's choices for one render. Empty fields are derived.
type Request struct {
	InputFile  string // required, must exist
	OutputDir  string // intermediates directory; default: input path without extension + tag
	OutputFile string // final document; default: OutputDir/<input base><tag>.<ext>
	Format     string // "pdf" or "html"; default: DefaultFormat
	Tag        bool   // append "_<label><timestamp>" to derived names
	Verbose    bool   // print derivation details
}

// Plan is the fully derived, validated configuration for one render.
// Every path is absolute, and OutputDir and the parent of OutputFile exist.
type Plan struct {
	InputFile    string
	InputFormat  InputFormat
	OutputDir    string // intermediates directory
	OutputFormat OutputFormat
	OutputFile   string
	Tag          string // empty when tagging is off
	Verbose      bool
}

// FinalDir is the directory receiving the final document.
func (p Plan) FinalDir() string {
	return filepath.Dir(p.OutputFile)
}

// Option configures a Renderer.
type Option func(*Renderer)

// Defaults used when no option overrides them.
const (
	DefaultRscript  = "Rscript"
	DefaultTagLabel = "LP"
)

// WithRscript sets the Rscript executable name or path. Empty keeps the default.
func WithRscript(path string) Option {
	return func(r *Renderer) {
		if path != "" {
			r.rscript = path
		}
	}
}

// WithTagLabel sets the fixed label of name tags. Empty keeps the default.
func WithTagLabel(label string) Option {
	return func(r *Renderer) {
		if label != "" {
			r.tagLabel = label
		}
	}
}

// WithTagFormat sets the timestamp format of name tags, using dateutil
// tokens (YY, MM, DD, HH, mm, ...) or a preset name. Empty keeps the default.
func WithTagFormat(format string) Option {
	return func(r *Renderer) {
		if format != "" {
			r.tagFormat = format
		}
	}
}

// WithRunner replaces the process runner, mainly for tests.
func WithRunner(runner CommandRunner) Option {
	return func(r *Renderer) {
		r.runner = runner
	}
}

// WithLookPath replaces executable lookup, mainly for tests.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(r *Renderer) {
		r.lookPath = fn
	}
}

// WithClock replaces the time source used for name tags.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithOutput sets where progress notices and the engine's output go.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Renderer) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithStdin sets the engine's standard input.
func WithStdin(stdin io.Reader) Option {
	return func(r *Renderer) {
		r.stdin = stdin
	}
}
