package ux

import (
	"os"
	"path/filepath"
)

// DiscoverProjectDir searches start and its parents for a .taskplanner
// directory, stopping after the first directory that contains .git.
// It reports false when none is found.
func DiscoverProjectDir(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, ProjectDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, true
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DiscoverConfigFile returns the project-level config file when one exists
// under a discovered project directory, else fallback.
func DiscoverConfigFile(start, fallback string) string {
	dir, ok := DiscoverProjectDir(start)
	if !ok {
		return fallback
	}

	path := (&PathDefaults{ProjectDir: dir}).ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return fallback
}

// NewPathDefaultsWithDiscovery roots PathDefaults at the discovered
// project directory, or at ./.taskplanner when none exists.
func NewPathDefaultsWithDiscovery(start string) *PathDefaults {
	if dir, ok := DiscoverProjectDir(start); ok {
		return &PathDefaults{ProjectDir: dir}
	}
	return NewPathDefaults()
}
