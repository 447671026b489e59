// Package config resolves the on-disk locations used by patchpad.
package config

import (
	"os"
	"path/filepath"
)

// EnvPatchpadHome overrides the data directory when set.
const EnvPatchpadHome = "PATCHPAD_HOME"

// EnvPatchpadDB overrides the database path when set.
const EnvPatchpadDB = "PATCHPAD_DB"

// DataDir returns the directory used to store patchpad data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvPatchpadHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Use a dot-directory in the user's home on all platforms
	return filepath.Join(home, ".patchpad"), nil
}

// EnsureDataDir returns the data directory, creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// DBPath returns the full path to the SQLite database file.
func DBPath() (string, error) {
	if p := os.Getenv(EnvPatchpadDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "patchpad.db"), nil
}
