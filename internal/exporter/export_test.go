package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"patchpad/internal/config"
	"patchpad/internal/db"
	"patchpad/internal/registry"
)

func TestExportDatabaseCopiesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "patchpad.db")
	t.Setenv(config.EnvPatchpadDB, dbPath)

	conn, err := db.InitDB()
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	dst := filepath.Join(t.TempDir(), "export", "copy.db")
	require.NoError(t, ExportDatabase(dst))

	src, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, src, got)
}

func TestExportSnippetYAML(t *testing.T) {
	t.Setenv(config.EnvPatchpadDB, filepath.Join(t.TempDir(), "patchpad.db"))
	conn, err := db.InitDB()
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	r := registry.NewRepository(conn)
	desc := "footer fix"
	body := "\n    footer()\n\nend\n"
	id, err := r.CreateSnippet("footer-fix", &desc, "Paste at end", body, nil, nil)
	require.NoError(t, err)
	require.NoError(t, r.AddTag(id, "web"))

	dst := filepath.Join(t.TempDir(), "footer-fix.yaml")
	require.NoError(t, ExportSnippetYAML(conn, "footer-fix", dst))

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	var b Bundle
	require.NoError(t, yaml.Unmarshal(raw, &b))
	require.Equal(t, "footer-fix", b.Name)
	require.Equal(t, "footer fix", b.Description)
	require.Equal(t, "Paste at end", b.Instruction)
	require.Equal(t, body, b.Body)
	require.Equal(t, []string{"web"}, b.Tags)
}

func TestExportSnippetYAMLMissingName(t *testing.T) {
	t.Setenv(config.EnvPatchpadDB, filepath.Join(t.TempDir(), "patchpad.db"))
	conn, err := db.InitDB()
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	err = ExportSnippetYAML(conn, "nope", filepath.Join(t.TempDir(), "out.yaml"))
	require.Error(t, err)
}
