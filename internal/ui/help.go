package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	titles := []string{"Search", "Results & product", "General"}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := styles.WarningText.Width(12)
	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(titles) {
			b.WriteString(styles.AccentText.Bold(true).Render(titles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(h.Desc))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	modal := styles.Modal.Width(44).Render(b.String())
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Palette().Background)),
	)
}
