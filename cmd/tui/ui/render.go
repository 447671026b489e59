package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"patchpad/internal/tui/adapters"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#94a3b8"))
	statusStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#94a3b8"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
)

// formatDetails renders the preview pane content for a snippet.
func formatDetails(s adapters.SnippetSummary, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Name))
	if s.Builtin {
		b.WriteString(statusStyle.Render("  built-in"))
	}
	b.WriteString("\n\n")
	if s.Description != "" {
		b.WriteString(labelStyle.Render("Description: "))
		b.WriteString(s.Description)
		b.WriteString("\n")
	}
	if len(s.Tags) > 0 {
		b.WriteString(labelStyle.Render("Tags: "))
		b.WriteString(strings.Join(s.Tags, ", "))
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("Instruction: "))
	b.WriteString(s.Instruction)
	b.WriteString("\n")

	sep := width - 2
	if sep < 8 {
		sep = 8
	}
	b.WriteString(strings.Repeat("─", sep))
	b.WriteString("\n")
	b.WriteString(s.Body)
	return b.String()
}

func (m *TuiModel) View() string {
	left := m.list.View()
	right := borderStyle.Render(m.vp.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := "enter print on exit · c copy · / filter · q quit"
	footer := statusStyle.Render(help)
	if m.status != "" {
		footer = statusStyle.Render(m.status + "  ·  " + help)
	}
	return body + "\n" + footer
}
