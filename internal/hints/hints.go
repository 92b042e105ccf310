// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-rmdrender/internal/fileutil"
)

// RscriptEnvVar names the variable that overrides the Rscript location.
const RscriptEnvVar = "RMDRENDER_RSCRIPT"

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForEngineNotFound returns hints for a missing Rscript entry point.
func ForEngineNotFound() string {
	hints := []string{"install R and the rmarkdown package"}

	if IsInContainer() {
		hints = append(hints, "use an image that ships R, such as rocker/verse")
	}
	if os.Getenv(RscriptEnvVar) == "" {
		hints = append(hints, "set "+RscriptEnvVar+" to the Rscript executable")
	}

	return formatHints(hints)
}

// ForRmarkdownMissing returns a hint for an R installation without rmarkdown.
func ForRmarkdownMissing() string {
	return format(`run Rscript -e 'install.packages("rmarkdown")'`)
}

// ForPandocMissing returns a hint for a missing pandoc binary.
func ForPandocMissing() string {
	return format("install pandoc or set RSTUDIO_PANDOC to its directory")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/rmdrender/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/rmdrender") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
