// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-autop/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-autop/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-autop/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
// Inside a container the output directory is usually a missing volume mount.
func ForOutputDirectory() string {
	hints := []string{"check parent directory exists and is writable"}
	if IsInContainer() {
		hints = append(hints, "mount the output directory as a volume")
	}
	return formatHints(hints)
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNoInput returns hints when no input was given.
func ForNoInput() string {
	return format("pass a file, a directory, or - to read stdin")
}

// ForWatchStdin returns hints when --watch is combined with a non-file input.
func ForWatchStdin() string {
	return format("--watch needs a single input file")
}

// ForSameOutput returns hints when the output would overwrite the input.
func ForSameOutput() string {
	return format("use --output or a different output extension")
}

// ForWorkers returns hints for out of range worker counts.
func ForWorkers(maxWorkers int) string {
	return format(fmt.Sprintf("use a value between 1 and %d, or 0 for automatic", maxWorkers))
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
