package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"patchpad/internal/config"
	"patchpad/internal/db"
	"patchpad/internal/registry"
)

// setupCLI points patchpad at a throwaway data dir and captures root output.
func setupCLI(t *testing.T) *bytes.Buffer {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv(config.EnvPatchpadHome, tmp)
	t.Setenv(config.EnvPatchpadDB, filepath.Join(tmp, "patchpad.db"))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	return &out
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func openRepo(t *testing.T) *registry.Repository {
	t.Helper()
	dbConn, err := db.InitDB()
	if err != nil {
		t.Fatalf("InitDB(): %v", err)
	}
	t.Cleanup(func() { _ = dbConn.Close() })
	return registry.NewRepository(dbConn)
}

func seedSnippet(t *testing.T, name, instruction, body string) {
	t.Helper()
	r := openRepo(t)
	if _, err := r.CreateSnippet(name, nil, instruction, body, nil, nil); err != nil {
		t.Fatalf("CreateSnippet(%q): %v", name, err)
	}
}
