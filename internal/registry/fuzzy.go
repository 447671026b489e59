package registry

import "strings"

// FuzzyMatch returns true if query fuzzy-matches target.
// Matching is case-insensitive and succeeds on substring match or if
// the query characters appear as a subsequence in the target.
func FuzzyMatch(target, query string) bool {
	if query == "" {
		return true
	}
	t := strings.ToLower(target)
	q := strings.ToLower(query)
	if strings.Contains(t, q) {
		return true
	}
	// subsequence match (rune-aware)
	qr := []rune(q)
	i := 0
	for _, ch := range t {
		if i < len(qr) && qr[i] == ch {
			i++
			if i >= len(qr) {
				return true
			}
		}
	}
	return false
}

// fuzzyMatchesSnippet checks name, description, instruction, body, and tags.
func fuzzyMatchesSnippet(s *Snip, query string) bool {
	if FuzzyMatch(s.Name, query) {
		return true
	}
	if s.Description.Valid && FuzzyMatch(s.Description.String, query) {
		return true
	}
	if FuzzyMatch(s.Instruction, query) {
		return true
	}
	if FuzzyMatch(s.Body, query) {
		return true
	}
	for _, tg := range s.Tags {
		if FuzzyMatch(tg, query) {
			return true
		}
	}
	return false
}

// FuzzySearchSnippets searches snippets by fuzzy-matching name, description,
// instruction, body, and tags. Matching happens in Go over the full rows.
func (r *Repository) FuzzySearchSnippets(query string) ([]Snip, error) {
	all, err := r.ListSnippets()
	if err != nil {
		return nil, err
	}
	var out []Snip
	for i := range all {
		if fuzzyMatchesSnippet(&all[i], query) {
			out = append(out, all[i])
		}
	}
	return out, nil
}
