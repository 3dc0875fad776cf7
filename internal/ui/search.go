package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/scout/internal/nav"
	"github.com/five82/scout/internal/present"
	"github.com/five82/scout/internal/session"
)

// handleInputKey processes keys while the search input has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	suggestions := m.search.Suggestions(maxSuggestions)

	switch {
	case key.Matches(msg, m.keys.Submit):
		var (
			req session.SearchRequest
			ok  bool
		)
		if m.suggestion >= 0 && m.suggestion < len(suggestions) {
			req, ok = m.search.SelectSuggestion(suggestions[m.suggestion])
		} else {
			req, ok = m.search.Commit()
		}
		m.input.SetValue(m.search.Queries().Pending())
		m.input.CursorEnd()
		m.input.Blur()
		m.suggestion = -1
		m.cursor = 0
		if !ok {
			return m, nil
		}
		return m, m.searchCmd(req)

	case key.Matches(msg, m.keys.Accept):
		if len(suggestions) == 0 {
			return m, nil
		}
		text := suggestions[clamp(m.suggestion, 0, len(suggestions)-1)]
		m.search.SetPendingQuery(text)
		m.input.SetValue(text)
		m.input.CursorEnd()
		m.suggestion = -1
		return m, nil

	case key.Matches(msg, m.keys.NextOption):
		if len(suggestions) > 0 {
			m.suggestion = min(m.suggestion+1, len(suggestions)-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevOption):
		m.suggestion = max(m.suggestion-1, -1)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		m.suggestion = -1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search.SetPendingQuery(m.input.Value())
	m.suggestion = -1
	return m, cmd
}

// handleSearchKey processes keys for the result list.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Focus) {
		cmd := m.input.Focus()
		return m, cmd
	}
	if key.Matches(msg, m.keys.Escape) {
		return m.goBack()
	}

	results := m.search.State().Results
	count := len(results)
	if count == 0 {
		return m, nil
	}

	page := max(1, m.visibleCards())
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.navigate(nav.DetailLocation(results[clamp(m.cursor, 0, count-1)].ID))
		return m, cmd
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, count-1)
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	case key.Matches(msg, m.keys.PageDown):
		m.cursor = min(m.cursor+page, count-1)
	case key.Matches(msg, m.keys.PageUp):
		m.cursor = max(m.cursor-page, 0)
	}
	return m, nil
}

// renderSearch renders the input, suggestions, status line and the visible
// slice of result cards.
func (m Model) renderSearch(height int) string {
	styles := m.theme.Styles()
	width := m.contentWidth()

	inputBox := styles.Input
	if m.input.Focused() {
		inputBox = inputBox.BorderForeground(lipgloss.Color(m.theme.Palette().BorderFocus))
	}
	parts := []string{inputBox.Width(max(1, width-2)).Render(m.input.View())}

	if m.input.Focused() {
		for i, s := range m.search.Suggestions(maxSuggestions) {
			line := "  " + s
			if i == m.suggestion {
				line = styles.Selected.Render("> " + s)
			} else {
				line = styles.MutedText.Render(line)
			}
			parts = append(parts, line)
		}
	}

	st := m.search.State()
	parts = append(parts, m.searchStatusLine(st))

	used := lipgloss.Height(strings.Join(parts, "\n"))
	if st.Status == session.Ready && len(st.Results) > 0 {
		if cards := m.renderCards(st, height-used, width); cards != "" {
			parts = append(parts, cards)
		}
	}
	return strings.Join(parts, "\n")
}

func (m Model) searchStatusLine(st session.SearchState) string {
	styles := m.theme.Styles()
	q := st.Committed
	switch st.Status {
	case session.Loading:
		return m.spinner.View() + " " + styles.MutedText.Render(fmt.Sprintf("Searching for %q...", q))
	case session.Failed:
		return styles.DangerText.Render("Search failed, press / and enter to try again")
	case session.Ready:
		switch n := len(st.Results); n {
		case 0:
			return styles.MutedText.Render(fmt.Sprintf("No products match %q", q))
		case 1:
			return styles.MutedText.Render(fmt.Sprintf("1 product for %q", q))
		default:
			return styles.MutedText.Render(fmt.Sprintf("%d products for %q", n, q))
		}
	}
	return styles.FaintText.Render("Press / to search the catalog")
}

// renderCards draws only the cards that fit, keeping the cursor in view.
func (m Model) renderCards(st session.SearchState, height, width int) string {
	visible := max(1, height/cardHeight)
	offset := max(0, m.cursor-visible+1)

	styles := m.theme.Styles()
	var rows []string
	i := 0
	for card := range present.Cards(st.Results, m.cursor) {
		if i >= offset+visible {
			break
		}
		if i >= offset {
			rows = append(rows, present.RenderCard(card, styles, width))
		}
		i++
	}
	return strings.Join(rows, "\n")
}

// visibleCards estimates how many cards fit below the input and status line.
func (m Model) visibleCards() int {
	body := m.height - headerHeight - footerHeight - 4
	return body / cardHeight
}
