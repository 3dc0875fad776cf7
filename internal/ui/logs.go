package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/scout/internal/termtext"
	"github.com/five82/scout/internal/theme"
)

// handleLogsKey processes keys while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Quit):
		m.showLogs = false
		return m, nil
	case msg.String() == "r":
		return m, m.loadLogsCmd()
	}
	return m, nil
}

// renderLogs renders the most recent log entries that fit in a modal.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	width := max(20, min(m.width-8, 120))
	rows := max(1, m.height-10)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Recent log entries"))
	b.WriteString("  ")
	b.WriteString(styles.FaintText.Render(m.logPath))
	b.WriteString("\n\n")

	switch {
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled."))
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render("Could not read log: " + m.logErr.Error()))
	case len(m.logEntries) == 0:
		b.WriteString(styles.MutedText.Render("No entries yet."))
	default:
		entries := m.logEntries
		if len(entries) > rows {
			entries = entries[len(entries)-rows:]
		}
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, levelStyle(styles, e.Level).Render(termtext.Truncate(termtext.Clean(e.Format()), width-6)))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("r refresh · esc close"))

	modal := styles.Modal.Width(width).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func levelStyle(styles theme.Styles, level zerolog.Level) lipgloss.Style {
	switch {
	case level == zerolog.NoLevel:
		return styles.Text
	case level >= zerolog.ErrorLevel:
		return styles.DangerText
	case level == zerolog.WarnLevel:
		return styles.WarningText
	case level <= zerolog.DebugLevel:
		return styles.FaintText
	}
	return styles.Text
}

