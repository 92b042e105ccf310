package rmdrender

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// fixedNow is the clock used by every test renderer.
var fixedNow = time.Date(2025, time.March, 7, 9, 5, 42, 0, time.UTC)

// recordingRunner records commands instead of running them.
type recordingRunner struct {
	mu    sync.Mutex
	calls []Command
	err   error
}

func (r *recordingRunner) Run(_ context.Context, c *Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, *c)
	return r.err
}

// foundLookPath pretends every executable exists under /usr/bin.
func foundLookPath(name string) (string, error) {
	return filepath.Join("/usr/bin", name), nil
}

// missingLookPath pretends nothing is installed.
func missingLookPath(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

// newTestRenderer returns a renderer with a fixed clock, a recording runner
// and captured output.
func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *recordingRunner, *bytes.Buffer) {
	t.Helper()

	runner := &recordingRunner{}
	var out bytes.Buffer
	base := []Option{
		WithRunner(runner),
		WithLookPath(foundLookPath),
		WithClock(func() time.Time { return fixedNow }),
		WithOutput(&out, &out),
		WithStdin(bytes.NewReader(nil)),
	}

	r, err := NewRenderer(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r, runner, &out
}

// writeInput creates dir/rel with some content and returns its path.
func writeInput(t *testing.T, dir, rel string) string {
	t.Helper()

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("---\ntitle: Report\n---\n\n# Report\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
