// Package ui implements the Bubble Tea snippet browser used by `patchpad tui`.
package ui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"patchpad/internal/tui/adapters"
)

// TuiModel is the Bubble Tea model used by cmd/tui. The left pane is a
// filterable snippet list, the right pane previews the selection.
type TuiModel struct {
	source adapters.SnippetSource
	list   list.Model
	vp     viewport.Model

	width  int
	height int

	status string
	// name the operator committed with enter; emitted after the program exits
	selected string
	// track last highlighted name so the preview follows the cursor
	lastHighlighted string
}

type snipItem struct {
	s adapters.SnippetSummary
}

func (i snipItem) Title() string {
	if i.s.Builtin {
		return i.s.Name + " (built-in)"
	}
	return i.s.Name
}

func (i snipItem) Description() string {
	if i.s.Description != "" {
		return i.s.Description
	}
	return i.s.Instruction
}

func (i snipItem) FilterValue() string { return i.s.Name }

// NewModel builds the TUI model over source.
func NewModel(source adapters.SnippetSource) *TuiModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "patchpad — snippets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	vp := viewport.New(0, 0)

	return &TuiModel{source: source, list: l, vp: vp}
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(source adapters.SnippetSource) (*tea.Program, *TuiModel) {
	m := NewModel(source)
	p := tea.NewProgram(m, tea.WithAltScreen())
	return p, m
}

// Selected returns the snippet name committed with enter, or "" if the
// browser was quit without a selection.
func (m *TuiModel) Selected() string { return m.selected }

func (m *TuiModel) Init() tea.Cmd {
	return func() tea.Msg {
		items, err := m.source.List(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{items: items}
	}
}

type loadedMsg struct {
	items []adapters.SnippetSummary
}

type errMsg struct{ err error }

func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		items := make([]list.Item, 0, len(msg.items))
		for _, s := range msg.items {
			items = append(items, snipItem{s: s})
		}
		// Give both panes workable defaults so content renders before the
		// first WindowSizeMsg arrives.
		if m.list.Height() == 0 {
			m.list.SetSize(34, 12)
		}
		if m.vp.Width == 0 || m.vp.Height == 0 {
			m.vp = viewport.New(46, 14)
		}
		m.list.SetItems(items)
		if len(items) > 0 {
			m.list.Select(0)
			m.refreshPreview()
		}
		return m, nil

	case errMsg:
		m.status = "error: " + msg.err.Error()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		// global keybindings handled BEFORE passing to the list so they are
		// not swallowed while filtering is enabled
		switch msg.String() {
		case "q", "esc":
			if m.list.FilterState() == list.Filtering {
				break
			}
			return m, tea.Quit
		case "enter":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if it, ok := m.list.SelectedItem().(snipItem); ok {
				m.selected = it.s.Name
			}
			return m, tea.Quit
		case "c":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if it, ok := m.list.SelectedItem().(snipItem); ok {
				if err := clipboard.WriteAll(it.s.Body); err != nil {
					m.status = "clipboard: " + err.Error()
				} else {
					m.status = "copied body of " + it.s.Name
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshPreview()
	return m, cmd
}

// refreshPreview updates the right pane when the cursor moved.
func (m *TuiModel) refreshPreview() {
	it, ok := m.list.SelectedItem().(snipItem)
	if !ok {
		return
	}
	if it.s.Name == m.lastHighlighted {
		return
	}
	m.lastHighlighted = it.s.Name
	m.vp.SetContent(formatDetails(it.s, m.vp.Width))
	m.vp.GotoTop()
}

func (m *TuiModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	listW := m.width * 2 / 5
	if listW < 24 {
		listW = 24
	}
	h := m.height - 2
	m.list.SetSize(listW, h)
	m.vp.Width = m.width - listW - 3
	m.vp.Height = h
	if it, ok := m.list.SelectedItem().(snipItem); ok {
		m.vp.SetContent(formatDetails(it.s, m.vp.Width))
	}
}
