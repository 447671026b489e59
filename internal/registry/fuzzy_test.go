package registry

import "testing"

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		target string
		query  string
		want   bool
	}{
		{"dashboard-ending", "", true},
		{"dashboard-ending", "dash", true},
		{"dashboard-ending", "DASH", true},
		{"dashboard-ending", "dbend", true},   // subsequence
		{"dashboard-ending", "endingx", false},
		{"beta demo", "dmo", true},
		{"alpha", "dmo", false},
	}
	for _, c := range cases {
		if got := FuzzyMatch(c.target, c.query); got != c.want {
			t.Fatalf("FuzzyMatch(%q, %q) = %v, want %v", c.target, c.query, got, c.want)
		}
	}
}

func TestFuzzySearchSnippets(t *testing.T) {
	r := setupRepo(t)
	desc := "beta demo"
	if _, err := r.CreateSnippet("beta", &desc, "Paste here", "\nb()\n", nil, nil); err != nil {
		t.Fatalf("CreateSnippet: %v", err)
	}
	if _, err := r.CreateSnippet("alpha", nil, "Paste there", "\na()\n", nil, nil); err != nil {
		t.Fatalf("CreateSnippet: %v", err)
	}

	got, err := r.FuzzySearchSnippets("dmo")
	if err != nil {
		t.Fatalf("FuzzySearchSnippets: %v", err)
	}
	if len(got) != 1 || got[0].Name != "beta" {
		t.Fatalf("unexpected fuzzy result: %+v", got)
	}

	// tags participate in fuzzy matching
	s, _ := r.GetSnippetByName("alpha")
	if err := r.AddTag(s.ID, "utilities"); err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	got, err = r.FuzzySearchSnippets("utls")
	if err != nil {
		t.Fatalf("FuzzySearchSnippets: %v", err)
	}
	if len(got) != 1 || got[0].Name != "alpha" {
		t.Fatalf("expected tag fuzzy match, got: %+v", got)
	}
}
