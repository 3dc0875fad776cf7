package present

import (
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/scout/internal/catalog"
	"github.com/five82/scout/internal/termtext"
	"github.com/five82/scout/internal/theme"
)

// AvailableBadge labels every listed product.
const AvailableBadge = "Available"

// Card is the summary view of one search result.
type Card struct {
	ID        string
	Title     string
	OwnerName string
	Image     string // empty when neither item nor owner has one
	Glyph     string // placeholder shown when Image is empty
	Badge     string
	Selected  bool
}

// HasImage reports whether the card has an image reference to show.
func (c Card) HasImage() bool {
	return c.Image != ""
}

// CardOf projects a single item. Every displayed field is cleaned of
// terminal escape sequences.
func CardOf(item catalog.Item) Card {
	owner := clean(item.Owner.Name)
	return Card{
		ID:        item.ID,
		Title:     title(item),
		OwnerName: owner,
		Image:     clean(item.ImageRef()),
		Glyph:     initial(owner),
		Badge:     AvailableBadge,
	}
}

func title(item catalog.Item) string {
	if t := clean(item.Name); t != "" {
		return t
	}
	return clean(item.ID)
}

func initial(name string) string {
	return catalog.Owner{Name: name}.Initial()
}

func clean(s string) string {
	return strings.TrimSpace(termtext.Clean(s))
}

// Cards lazily yields one card per item in order. The card at cursor is marked
// selected; pass -1 for none.
func Cards(items []catalog.Item, cursor int) iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for i, item := range items {
			c := CardOf(item)
			c.Selected = i == cursor
			if !yield(c) {
				return
			}
		}
	}
}

// RenderCard draws one card at the given outer width.
func RenderCard(c Card, styles theme.Styles, width int) string {
	box := styles.Card
	if c.Selected {
		box = styles.CardSelected
	}
	inner := max(10, width-box.GetHorizontalFrameSize())

	var mark string
	if c.HasImage() {
		mark = styles.MutedText.Render("[img]")
	} else {
		mark = styles.Glyph.Render(c.Glyph)
	}
	badge := styles.Badge.Render(c.Badge)

	titleWidth := max(1, inner-lipgloss.Width(mark)-lipgloss.Width(badge)-2)
	title := styles.Text.Bold(true).Render(termtext.Truncate(c.Title, titleWidth))
	top := lipgloss.JoinHorizontal(lipgloss.Top, mark, " ", title)
	gap := max(1, inner-lipgloss.Width(top)-lipgloss.Width(badge))
	top += strings.Repeat(" ", gap) + badge

	owner := c.OwnerName
	if owner == "" {
		owner = "Unknown business"
	}
	body := top + "\n" + styles.MutedText.Render(termtext.Truncate(owner, inner))
	return box.Width(inner + box.GetHorizontalPadding()).Render(body)
}
