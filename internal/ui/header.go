package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/scout/internal/session"
)

const appName = "scout"

// renderMain renders header, active view and footer.
func (m Model) renderMain() string {
	bodyHeight := max(1, m.height-headerHeight-footerHeight)

	var body string
	switch m.currentView {
	case ViewSearch:
		body = m.renderSearch(bodyHeight)
	case ViewDetail:
		body = m.renderDetail()
	}
	body = lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Padding(0, m.sideMargin()).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderHeader renders the app name, the active view and its session status.
func (m Model) renderHeader() string {
	p := m.theme.Palette()
	styles := m.theme.Styles().WithBackground(p.SurfaceAlt)
	bg := NewBgStyle(p.SurfaceAlt)

	parts := []string{styles.Logo.Render(appName)}
	switch m.currentView {
	case ViewSearch:
		st := m.search.State()
		parts = append(parts, styles.MutedText.Render("search"), statusBadge(styles.InfoText, styles.DangerText, st.Status))
	case ViewDetail:
		st := m.detail.State()
		parts = append(parts, styles.MutedText.Render("product"), statusBadge(styles.InfoText, styles.DangerText, st.Status))
	}
	if m.notice != "" {
		parts = append(parts, styles.WarningText.Render(m.notice))
	}

	left := strings.Join(parts, bg.Spaces(2))
	right := styles.FaintText.Render(m.theme.Variant().String())
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-2)
	return bg.FillLine(bg.Spaces(1)+left+bg.Spaces(gap)+right, m.width)
}

func statusBadge(normal, failed lipgloss.Style, s session.Status) string {
	switch s {
	case session.Idle:
		return ""
	case session.Failed:
		return failed.Render(s.String())
	}
	return normal.Render(s.String())
}

// renderFooter shows the shareable location and the short key help.
func (m Model) renderFooter() string {
	p := m.theme.Palette()
	styles := m.theme.Styles().WithBackground(p.SurfaceAlt)
	bg := NewBgStyle(p.SurfaceAlt)

	loc := styles.AccentText.Render(m.history.Current().String())
	if m.width < LayoutCompactWidth {
		return bg.FillLine(bg.Spaces(1)+loc, m.width)
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, strings.ToLower(h.Desc)))
	}
	right := styles.MutedText.Render(strings.Join(hints, " · "))
	gap := max(1, m.width-lipgloss.Width(loc)-lipgloss.Width(right)-2)
	return bg.FillLine(bg.Spaces(1)+loc+bg.Spaces(gap)+right, m.width)
}

// resize fits the widgets to the terminal.
func (m *Model) resize() {
	width := m.contentWidth()
	m.input.Width = max(10, width-6)
	m.viewport.Width = width
	m.viewport.Height = max(1, m.height-headerHeight-footerHeight)
	m.refreshDetail()
}

func (m Model) contentWidth() int {
	return max(20, min(m.width, maxContentWidth)-2*m.sideMargin())
}

func (m Model) sideMargin() int {
	if m.width < LayoutCompactWidth {
		return 0
	}
	return 1
}
