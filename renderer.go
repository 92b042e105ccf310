package rmdrender

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/alnah/go-rmdrender/internal/dateutil"
	"github.com/alnah/go-rmdrender/internal/fileutil"
)

// Renderer derives render plans and runs the engine.
// Create with NewRenderer.
type Renderer struct {
	rscript   string
	tagLabel  string
	tagFormat string
	runner    CommandRunner
	lookPath  func(string) (string, error)
	now       func() time.Time
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

// NewRenderer creates a Renderer with default configuration.
// Returns ErrInvalidTag if the tag label or timestamp format is unusable.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		rscript:   DefaultRscript,
		tagLabel:  DefaultTagLabel,
		tagFormat: dateutil.DefaultStampFormat,
		runner:    &ExecRunner{},
		lookPath:  exec.LookPath,
		now:       time.Now,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := fileutil.ValidatePathComponent(r.tagLabel); err != nil {
		return nil, fmt.Errorf("%w: label: %v", ErrInvalidTag, err)
	}
	if _, err := dateutil.FormatStamp(r.tagFormat, time.Time{}); err != nil {
		return nil, fmt.Errorf("%w: format: %v", ErrInvalidTag, err)
	}

	return r, nil
}

// Rscript returns the configured engine entry point.
func (r *Renderer) Rscript() string {
	return r.rscript
}

// LocateEngine checks that the Rscript entry point can be found and
// returns its resolved path.
func (r *Renderer) LocateEngine() (string, error) {
	path, err := r.lookPath(r.rscript)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEngineNotFound, r.rscript, err)
	}
	return path, nil
}

// Tag returns a fresh name tag: "_" + label + timestamp.
func (r *Renderer) Tag() (string, error) {
	stamp, err := dateutil.FormatStamp(r.tagFormat, r.now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTag, err)
	}
	tag := "_" + r.tagLabel + stamp
	if err := fileutil.ValidatePathComponent(tag); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTag, err)
	}
	return tag, nil
}

// Plan validates req and derives every path of the render, creating the
// output directory and the parent of the output file. Steps run in a fixed
// order and stop at the first failure; directories created before a later
// failure are left in place.
func (r *Renderer) Plan(req Request) (Plan, error) {
	if !fileutil.FileExists(req.InputFile) {
		return Plan{}, fmt.Errorf("%w: %s", ErrInputNotFound, req.InputFile)
	}

	inputFormat, err := ClassifyInput(req.InputFile)
	if err != nil {
		return Plan{}, err
	}

	input := fileutil.AbsPath(req.InputFile)
	r.verbosef(req.Verbose, "input %s (%s)", input, inputFormat)

	var tag string
	if req.Tag {
		if tag, err = r.Tag(); err != nil {
			return Plan{}, err
		}
		r.verbosef(req.Verbose, "tag %s", tag)
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = fileutil.StripExt(input) + tag
	}
	if err := fileutil.EnsureDir(outputDir); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrOutputDirectory, err)
	}
	resolvedDir := fileutil.ResolveDir(outputDir)
	fmt.Fprintf(r.stdout, "Output directory: %s -> %s\n", outputDir, resolvedDir)

	outputFormat, err := ParseOutputFormat(req.Format)
	if err != nil {
		return Plan{}, err
	}
	r.verbosef(req.Verbose, "output format %s (%s)", outputFormat.Name, outputFormat.EngineID)

	outputFile := req.OutputFile
	if outputFile == "" {
		outputFile = filepath.Join(resolvedDir, fileutil.BaseName(input)+tag+"."+outputFormat.Extension)
	}
	// The parent is created before resolution so that a new directory still
	// yields an absolute path.
	if err := fileutil.EnsureDir(filepath.Dir(outputFile)); err != nil {
		return Plan{}, fmt.Errorf("%w: %v", ErrOutputDirectory, err)
	}
	outputFile = fileutil.AbsPath(outputFile)
	r.verbosef(req.Verbose, "output file %s", outputFile)

	return Plan{
		InputFile:    input,
		InputFormat:  inputFormat,
		OutputDir:    resolvedDir,
		OutputFormat: outputFormat,
		OutputFile:   outputFile,
		Tag:          tag,
		Verbose:      req.Verbose,
	}, nil
}

// verbosef prints a detail line when verbose is set.
func (r *Renderer) verbosef(verbose bool, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(r.stdout, "verbose: "+format+"\n", args...)
}
