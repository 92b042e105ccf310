package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	rmdrender "github.com/alnah/go-rmdrender"
	"github.com/alnah/go-rmdrender/internal/hints"
)

// R programs used to probe the engine. Each prints a bare value.
const (
	rmarkdownVersionExpr = `cat(as.character(utils::packageVersion("rmarkdown")))`
	pandocVersionExpr    = `if (rmarkdown::pandoc_available()) cat(as.character(rmarkdown::pandoc_version()))`
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Engine   engineInfo `json:"engine"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// engineInfo holds R toolchain detection results.
type engineInfo struct {
	Found     bool   `json:"found"`
	Rscript   string `json:"rscript"`
	Path      string `json:"path,omitempty"`
	Version   string `json:"version,omitempty"`
	Rmarkdown string `json:"rmarkdown,omitempty"`
	Pandoc    string `json:"pandoc,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Container bool   `json:"container"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd runs every check, prints the report and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, r *rmdrender.Renderer, env *Environment, jsonOutput bool) int {
	result := runDoctor(ctx, r, env)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, r *rmdrender.Renderer, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Container: hints.IsInContainer(),
		},
	}

	checkEngine(ctx, r, env, result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkEngine locates Rscript, then asks it for its version, the rmarkdown
// package version and the pandoc version rmarkdown would use.
func checkEngine(ctx context.Context, r *rmdrender.Renderer, env *Environment, result *doctorResult) {
	result.Engine.Rscript = r.Rscript()

	path, err := r.LocateEngine()
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Rscript not found (%s). Install R or set %s", r.Rscript(), hints.RscriptEnvVar))
		return
	}
	result.Engine.Found = true
	result.Engine.Path = path

	if out, err := probe(ctx, env, path, "--version"); err == nil {
		result.Engine.Version = firstLine(out)
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get R version: %v", err))
	}

	out, err := probe(ctx, env, path, "-e", rmarkdownVersionExpr)
	if err != nil || out == "" {
		result.Errors = append(result.Errors,
			`rmarkdown package not installed. Run: Rscript -e 'install.packages("rmarkdown")'`)
		return
	}
	result.Engine.Rmarkdown = out

	out, err = probe(ctx, env, path, "-e", pandocVersionExpr)
	if err != nil || out == "" {
		result.Errors = append(result.Errors,
			"pandoc not available to rmarkdown. Install pandoc or set RSTUDIO_PANDOC")
		return
	}
	result.Engine.Pandoc = out
}

// probe runs the engine with args and returns its combined, trimmed output.
func probe(ctx context.Context, env *Environment, path string, args ...string) (string, error) {
	var out bytes.Buffer
	err := env.Runner.Run(ctx, &rmdrender.Command{
		Name:   path,
		Args:   args,
		Stdout: &out,
		Stderr: &out,
	})
	return strings.TrimSpace(out.String()), err
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "rmdrender-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "rmdrender doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "R toolchain")
	if r.Engine.Found {
		fmt.Fprintf(w, "  [OK] Rscript: %s\n", r.Engine.Path)
		if r.Engine.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Engine.Version)
		}
		if r.Engine.Rmarkdown != "" {
			fmt.Fprintf(w, "  [OK] rmarkdown: %s\n", r.Engine.Rmarkdown)
		} else {
			fmt.Fprintln(w, "  [ERROR] rmarkdown: not installed")
		}
		if r.Engine.Pandoc != "" {
			fmt.Fprintf(w, "  [OK] pandoc: %s\n", r.Engine.Pandoc)
		} else if r.Engine.Rmarkdown != "" {
			fmt.Fprintln(w, "  [ERROR] pandoc: not available")
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] Rscript: %s not found\n", r.Engine.Rscript)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to render")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
