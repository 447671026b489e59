package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportSetImportSetRoundTrip(t *testing.T) {
	setupCLI(t)
	body := "\n    except Exception as e:\n        pass\n"
	seedSnippet(t, "roundtrip", "Paste at line 7", body)

	bundle := filepath.Join(t.TempDir(), "roundtrip.yaml")
	if err := execute("export", "set", "roundtrip", bundle); err != nil {
		t.Fatalf("export set failed: %v", err)
	}
	if _, err := os.Stat(bundle); err != nil {
		t.Fatalf("bundle not written: %v", err)
	}

	// delete and re-import
	if err := execute("delete", "roundtrip", "--yes"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_ = deleteCmd.Flags().Set("yes", "false")

	if err := execute("import", "set", bundle); err != nil {
		t.Fatalf("import set failed: %v", err)
	}

	r := openRepo(t)
	s, err := r.GetSnippetByName("roundtrip")
	if err != nil {
		t.Fatalf("GetSnippetByName: %v", err)
	}
	if s == nil {
		t.Fatalf("expected snippet after import")
	}
	if s.Body != body {
		t.Fatalf("body changed across round trip: %q", s.Body)
	}
	if s.Instruction != "Paste at line 7" {
		t.Fatalf("instruction changed across round trip: %q", s.Instruction)
	}
}

func TestExportDbWritesFile(t *testing.T) {
	setupCLI(t)
	seedSnippet(t, "something", "x", "y\n")

	dst := filepath.Join(t.TempDir(), "backup.db")
	if err := execute("export", "db", dst); err != nil {
		t.Fatalf("export db failed: %v", err)
	}
	fi, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("exported db missing: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("exported db is empty")
	}
}

func TestImportDbReplacesDatabase(t *testing.T) {
	setupCLI(t)
	seedSnippet(t, "original", "x", "y\n")

	backup := filepath.Join(t.TempDir(), "backup.db")
	if err := execute("export", "db", backup); err != nil {
		t.Fatalf("export db failed: %v", err)
	}

	if err := execute("delete", "original", "--yes"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_ = deleteCmd.Flags().Set("yes", "false")

	if err := execute("import", "db", backup, "--yes"); err != nil {
		t.Fatalf("import db failed: %v", err)
	}
	_ = importDbCmd.Flags().Set("yes", "false")

	r := openRepo(t)
	s, err := r.GetSnippetByName("original")
	if err != nil {
		t.Fatalf("GetSnippetByName: %v", err)
	}
	if s == nil {
		t.Fatalf("expected snippet restored from imported db")
	}
}
