// Package store caches generated move lists in BadgerDB, keyed by the
// Zobrist hash of the position they were generated from.
package store

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "movegen"

// dataDir returns the platform-specific data directory for the tool,
// creating it if needed.
// - macOS: ~/Library/Application Support/movegen/
// - Linux: $XDG_DATA_HOME/movegen/ or ~/.local/share/movegen/
// - Windows: %APPDATA%/movegen/
func dataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// GetCacheDir returns the directory holding the move cache database.
func GetCacheDir() (string, error) {
	base, err := dataDir()
	if err != nil {
		return "", err
	}

	cacheDir := filepath.Join(base, "cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", err
	}
	return cacheDir, nil
}
