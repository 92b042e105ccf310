package hints

// Notes:
// - ForEngineNotFound tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"strings"
	"testing"
)

func TestForEngineNotFound_Default(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv(RscriptEnvVar, "")

	hint := ForEngineNotFound()

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "rmarkdown") {
		t.Error("expected install suggestion")
	}
	if !strings.Contains(hint, RscriptEnvVar) {
		t.Errorf("expected %s suggestion", RscriptEnvVar)
	}
	if strings.Contains(hint, "rocker") {
		t.Error("should not suggest container image outside a container")
	}
}

func TestForEngineNotFound_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv(RscriptEnvVar, "")

	hint := ForEngineNotFound()

	if !strings.Contains(hint, "rocker/verse") {
		t.Error("expected container image suggestion")
	}
}

func TestForEngineNotFound_OverrideAlreadySet(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv(RscriptEnvVar, "/opt/R/bin/Rscript")

	hint := ForEngineNotFound()

	if strings.Contains(hint, RscriptEnvVar) {
		t.Errorf("should not suggest %s when already set", RscriptEnvVar)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		searched []string
		want     []string
		notWant  []string
	}{
		{
			name:     "suggests user config path",
			searched: []string{"render.yaml", "/home/me/.config/rmdrender/render.yaml"},
			want:     []string{"--config", "create /home/me/.config/rmdrender/render.yaml"},
		},
		{
			name:     "no user path",
			searched: []string{"render.yaml"},
			want:     []string{"--config"},
			notWant:  []string{"create"},
		},
		{
			name:     "nil paths",
			searched: nil,
			want:     []string{"--config"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.searched)
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("ForConfigNotFound() = %q, want to contain %q", hint, w)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(hint, nw) {
					t.Errorf("ForConfigNotFound() = %q, should not contain %q", hint, nw)
				}
			}
		})
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"output directory", ForOutputDirectory(), "writable"},
		{"rmarkdown missing", ForRmarkdownMissing(), "install.packages"},
		{"pandoc missing", ForPandocMissing(), "RSTUDIO_PANDOC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q missing prefix", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint %q should contain %q", tt.got, tt.want)
			}
		})
	}
}

func TestFormatHints_Empty(t *testing.T) {
	t.Parallel()

	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
}
