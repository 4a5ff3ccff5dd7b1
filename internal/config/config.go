package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultBaseDir = "~/.cache/accesstrack"
	DefaultDepth   = 2
)

// BaseDir returns the base directory from ACCESSTRACK_BASE_DIR,
// falling back to DefaultBaseDir.
func BaseDir() string {
	if env := os.Getenv("ACCESSTRACK_BASE_DIR"); env != "" {
		return env
	}
	return DefaultBaseDir
}

// Depth returns the unit depth from ACCESSTRACK_DEPTH. Values that are not
// positive integers fall back to DefaultDepth.
func Depth() int {
	env := os.Getenv("ACCESSTRACK_DEPTH")
	if env == "" {
		return DefaultDepth
	}
	depth, err := strconv.Atoi(strings.TrimSpace(env))
	if err != nil || depth <= 0 {
		return DefaultDepth
	}
	return depth
}

// JournalPath returns an explicit journal database path from
// ACCESSTRACK_JOURNAL, or "" to use the per-base-directory default.
func JournalPath() string {
	return os.Getenv("ACCESSTRACK_JOURNAL")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
