package rmdrender

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// renderExpr is the fixed R program run by Rscript. Paths arrive as
// trailing command-line arguments and are never part of the source text.
const renderExpr = `args <- commandArgs(trailingOnly = TRUE); ` +
	`rmarkdown::render(input = args[[1]], output_format = args[[2]], ` +
	`output_file = args[[3]], output_dir = args[[4]], intermediates_dir = args[[5]], ` +
	`run_pandoc = TRUE, clean = FALSE)`

// Invocation is one engine call as an argument vector.
type Invocation struct {
	Program string   // Rscript entry point
	Args    []string // arguments after Program
	Call    string   // equivalent rmarkdown::render call, for display
}

// CommandLine renders the invocation as a copy-pasteable POSIX shell line.
func (inv Invocation) CommandLine() string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, shellQuote(inv.Program))
	for _, a := range inv.Args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// Invocation builds the engine call for p.
func (r *Renderer) Invocation(p Plan) Invocation {
	finalDir := p.FinalDir()
	return Invocation{
		Program: r.rscript,
		Args: []string{
			"-e", renderExpr,
			p.InputFile,
			p.OutputFormat.EngineID,
			p.OutputFile,
			finalDir,
			p.OutputDir,
		},
		Call: fmt.Sprintf(
			"rmarkdown::render(input = %s, output_format = %s, output_file = %s, "+
				"output_dir = %s, intermediates_dir = %s, run_pandoc = TRUE, clean = FALSE)",
			rQuote(p.InputFile),
			rQuote(p.OutputFormat.EngineID),
			rQuote(p.OutputFile),
			rQuote(finalDir),
			rQuote(p.OutputDir),
		),
	}
}

// Render prints the engine call and runs it to completion. A non-zero
// engine exit is returned as *ExitError carrying the engine's status.
func (r *Renderer) Render(ctx context.Context, p Plan) error {
	inv := r.Invocation(p)

	fmt.Fprintf(r.stdout, "Running: %s\n", inv.Call)
	r.verbosef(p.Verbose, "exec %s", inv.CommandLine())

	err := r.runner.Run(ctx, &Command{
		Name:   inv.Program,
		Args:   inv.Args,
		Stdin:  r.stdin,
		Stdout: r.stdout,
		Stderr: r.stderr,
	})
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrEngineStart, err)
}

// rQuote renders s as an R string literal. Go and R share the escapes
// strconv.Quote emits for printable text.
func rQuote(s string) string {
	return strconv.Quote(s)
}

// shellQuote single-quotes s unless it only holds characters that are
// inert in a POSIX shell.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, c := range s {
		if !isShellSafe(c) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isShellSafe(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.ContainsRune("_-./:=@%+,", c)
}
