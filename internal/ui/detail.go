package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/scout/internal/markdown"
	"github.com/five82/scout/internal/nav"
	"github.com/five82/scout/internal/present"
	"github.com/five82/scout/internal/session"
)

// handleDetailKey processes keys for the product view.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "backspace":
		return m.leaveDetail()
	case key.Matches(msg, m.keys.Focus):
		cmd := m.navigate(m.searchLocation())
		focus := m.input.Focus()
		return m, tea.Batch(cmd, focus)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// leaveDetail returns to the previous location, or to the search view when
// the product was opened directly.
func (m Model) leaveDetail() (tea.Model, tea.Cmd) {
	if m.history.CanBack() {
		return m.goBack()
	}
	cmd := m.navigate(m.searchLocation())
	return m, cmd
}

// searchLocation is the search view for the last committed query.
func (m Model) searchLocation() nav.Location {
	return nav.SearchLocation(m.search.Queries().Committed())
}

// refreshDetail re-renders the loaded product into the viewport.
func (m *Model) refreshDetail() {
	st := m.detail.State()
	if st.Status != session.Ready || st.Item == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderProduct(present.DetailOf(*st.Item)))
}

func (m Model) renderProduct(d present.Detail) string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	var b strings.Builder
	mark := styles.Glyph.Render(d.Glyph)
	if d.Image != "" {
		mark = styles.MutedText.Render("[img " + d.Image + "]")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, mark, " ", styles.Heading(1).Render(d.Title)))
	b.WriteString("\n")
	b.WriteString(styles.Badge.Render(present.AvailableBadge))
	b.WriteString("\n\n")

	if d.Description != "" {
		b.WriteString(markdown.New(styles, width).Render(d.Description))
	} else {
		b.WriteString(styles.FaintText.Render("No description provided."))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(width, 40))))
	b.WriteString("\n")
	b.WriteString(styles.Glyph.Render(d.Owner.Glyph) + " " + styles.Strong.Render(d.Owner.Name))
	b.WriteString("\n")
	if d.Owner.Description != "" {
		b.WriteString(markdown.New(styles, width).Render(d.Owner.Description))
		b.WriteString("\n")
	}
	if d.Owner.Website != "" {
		b.WriteString(styles.MutedText.Render("Website  ") + styles.Link.Render(d.Owner.Website))
		b.WriteString("\n")
	}
	if d.PurchaseURL != "" {
		b.WriteString(styles.MutedText.Render("Buy      ") + styles.Link.Render(d.PurchaseURL))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDetail renders the product view body.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	st := m.detail.State()
	switch st.Status {
	case session.Loading:
		return m.spinner.View() + " " + styles.MutedText.Render("Loading product...")
	case session.Failed:
		return styles.DangerText.Render("Product not found.") + "\n" +
			styles.FaintText.Render("Press esc to go back.")
	case session.Ready:
		return m.viewport.View()
	}
	return ""
}
