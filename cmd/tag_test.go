package cmd

import (
	"strings"
	"testing"
)

func TestTagAddListRm(t *testing.T) {
	out := setupCLI(t)
	seedSnippet(t, "fix", "x", "y\n")

	if err := execute("tag", "add", "fix", "web"); err != nil {
		t.Fatalf("tag add failed: %v", err)
	}
	if err := execute("tag", "add", "fix", "python"); err != nil {
		t.Fatalf("tag add failed: %v", err)
	}

	out.Reset()
	if err := execute("tag", "list", "fix"); err != nil {
		t.Fatalf("tag list failed: %v", err)
	}
	if !strings.Contains(out.String(), "web") || !strings.Contains(out.String(), "python") {
		t.Fatalf("unexpected tag list: %q", out.String())
	}

	if err := execute("tag", "rm", "fix", "web"); err != nil {
		t.Fatalf("tag rm failed: %v", err)
	}
	out.Reset()
	if err := execute("tag", "list", "fix"); err != nil {
		t.Fatalf("tag list failed: %v", err)
	}
	if strings.Contains(out.String(), "web") {
		t.Fatalf("expected tag removed, got: %q", out.String())
	}
}

func TestTagUnknownSnippetFails(t *testing.T) {
	setupCLI(t)
	if err := execute("tag", "add", "ghost", "web"); err == nil {
		t.Fatalf("expected error for unknown snippet")
	}
}
