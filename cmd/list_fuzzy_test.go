package cmd

import (
	"strings"
	"testing"
)

func resetListFlags() {
	_ = listCmd.Flags().Set("tag", "")
	_ = listCmd.Flags().Set("filter", "")
	_ = listCmd.Flags().Set("fuzzy", "false")
}

func TestListIncludesBuiltin(t *testing.T) {
	out := setupCLI(t)
	defer resetListFlags()

	if err := execute("list"); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "dashboard-ending (built-in)") {
		t.Fatalf("expected built-in entry, got: %q", out.String())
	}
}

func TestListFilterFuzzyCLI(t *testing.T) {
	out := setupCLI(t)
	defer resetListFlags()

	seedSnippet(t, "alpha", "Paste there", "\na()\n")
	seedSnippet(t, "beta-demo", "Paste here", "\nb()\n")

	// non-fuzzy filter should not match 'dmo'
	if err := execute("list", "--filter", "dmo"); err != nil {
		t.Fatalf("list --filter failed: %v", err)
	}
	if strings.Contains(out.String(), "beta-demo") {
		t.Fatalf("non-fuzzy filter should not match, got: %q", out.String())
	}
	out.Reset()

	// fuzzy filter should match beta-demo via subsequence
	if err := execute("list", "--filter", "dmo", "--fuzzy"); err != nil {
		t.Fatalf("list --filter --fuzzy failed: %v", err)
	}
	if !strings.Contains(out.String(), "beta-demo") {
		t.Fatalf("expected fuzzy list to include beta-demo, got: %q", out.String())
	}
	if strings.Contains(out.String(), "alpha") {
		t.Fatalf("did not expect alpha in fuzzy results, got: %q", out.String())
	}
}

func TestListByTag(t *testing.T) {
	out := setupCLI(t)
	defer resetListFlags()

	seedSnippet(t, "tagged", "x", "y\n")
	seedSnippet(t, "untagged", "x", "y\n")
	if err := execute("tag", "add", "tagged", "web"); err != nil {
		t.Fatalf("tag add failed: %v", err)
	}

	if err := execute("list", "--tag", "web"); err != nil {
		t.Fatalf("list --tag failed: %v", err)
	}
	if !strings.Contains(out.String(), "tagged") || strings.Contains(out.String(), "untagged") {
		t.Fatalf("unexpected tag listing: %q", out.String())
	}
}
