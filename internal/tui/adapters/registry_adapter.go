// Package adapters decouples the TUI from the concrete registry types.
package adapters

import (
	"context"
	"database/sql"

	"patchpad/internal/registry"
	"patchpad/internal/snippet"
)

// SnippetSummary is the read-only view of a snippet the TUI renders.
type SnippetSummary struct {
	Name        string
	Description string
	Instruction string
	Body        string
	Tags        []string
	Builtin     bool
}

// SnippetSource is what the TUI needs from a snippet store.
type SnippetSource interface {
	List(ctx context.Context) ([]SnippetSummary, error)
	Get(ctx context.Context, name string) (*SnippetSummary, error)
}

// RegistryAdapter adapts *registry.Repository to SnippetSource and folds the
// built-in snippet into the listing.
type RegistryAdapter struct {
	repo *registry.Repository
}

// NewRegistryAdapter wraps repo.
func NewRegistryAdapter(repo *registry.Repository) *RegistryAdapter {
	return &RegistryAdapter{repo: repo}
}

func summaryFromSnip(s *registry.Snip) SnippetSummary {
	out := SnippetSummary{
		Name:        s.Name,
		Instruction: s.Instruction,
		Body:        s.Body,
		Tags:        s.Tags,
	}
	if s.Description.Valid {
		out.Description = s.Description.String
	}
	return out
}

func builtinSummary() SnippetSummary {
	b := snippet.Builtin()
	return SnippetSummary{
		Name:        b.Name,
		Description: b.Description,
		Instruction: b.Instruction,
		Body:        b.Body,
		Builtin:     true,
	}
}

// List returns the built-in snippet followed by all stored snippets.
func (a *RegistryAdapter) List(_ context.Context) ([]SnippetSummary, error) {
	snips, err := a.repo.ListSnippets()
	if err != nil {
		return nil, err
	}
	out := make([]SnippetSummary, 0, len(snips)+1)
	out = append(out, builtinSummary())
	for i := range snips {
		out = append(out, summaryFromSnip(&snips[i]))
	}
	return out, nil
}

// Get resolves a snippet by name; the built-in name never misses.
func (a *RegistryAdapter) Get(_ context.Context, name string) (*SnippetSummary, error) {
	if snippet.IsBuiltinName(name) {
		s := builtinSummary()
		return &s, nil
	}
	snip, err := a.repo.GetSnippetByName(name)
	if err != nil {
		return nil, err
	}
	if snip == nil {
		return nil, sql.ErrNoRows
	}
	s := summaryFromSnip(snip)
	return &s, nil
}
