package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	rmdrender "github.com/alnah/go-rmdrender"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake engine and environment
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2025, time.March, 7, 9, 5, 42, 0, time.UTC)

// fakeRunner records commands and answers them with respond.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []rmdrender.Command
	respond func(c *rmdrender.Command) error
}

func (f *fakeRunner) Run(_ context.Context, c *rmdrender.Command) error {
	f.mu.Lock()
	f.calls = append(f.calls, *c)
	respond := f.respond
	f.mu.Unlock()

	if respond == nil {
		return nil
	}
	return respond(c)
}

func (f *fakeRunner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testEnv bundles an Environment with its captured streams.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	runner *fakeRunner
}

// newTestEnv returns an environment where Rscript is found under
// /usr/bin and every engine call succeeds.
func newTestEnv(environ ...string) *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	runner := &fakeRunner{}

	return &testEnv{
		Environment: &Environment{
			Now:      func() time.Time { return fixedNow },
			Stdin:    strings.NewReader(""),
			Stdout:   stdout,
			Stderr:   stderr,
			Environ:  environ,
			LookPath: foundLookPath,
			Runner:   runner,
		},
		stdout: stdout,
		stderr: stderr,
		runner: runner,
	}
}

func foundLookPath(name string) (string, error) {
	return filepath.Join("/usr/bin", name), nil
}

func missingLookPath(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

// runCLI runs the CLI with args after the program name.
func runCLI(env *testEnv, args ...string) int {
	return runMain(context.Background(), append([]string{"rmdrender"}, args...), env.Environment)
}

// writeFile creates dir/rel with content and returns its path.
func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleRmd = "---\ntitle: Report\n---\n\n```{r}\n1 + 1\n```\n"
