package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading "~" to the user's home directory and expands
// $VAR references. Paths that cannot be resolved are returned unchanged.
func Expand(path string) string {
	path = os.ExpandEnv(path)

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// DataDir returns the per-user data directory for spinwheel, honoring
// XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "spinwheel")
}
