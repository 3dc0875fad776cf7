package present

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/scout/internal/catalog"
	"github.com/five82/scout/internal/theme"
)

func TestCards_OnePerItemInOrder(t *testing.T) {
	items := []catalog.Item{
		{ID: "p1", Name: "Term Life", Owner: catalog.Owner{Name: "Acme"}},
		{ID: "p2", Name: "Pet Cover", Owner: catalog.Owner{Name: "Bolt", Image: "bolt.png"}},
	}
	cards := slices.Collect(Cards(items, 1))
	require.Len(t, cards, 2)
	assert.Equal(t, "p1", cards[0].ID)
	assert.False(t, cards[0].Selected)
	assert.True(t, cards[1].Selected)
	assert.Equal(t, "bolt.png", cards[1].Image)
	assert.Equal(t, AvailableBadge, cards[0].Badge)
}

func TestCards_IsLazy(t *testing.T) {
	items := make([]catalog.Item, 50)
	n := 0
	for range Cards(items, -1) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
	assert.Empty(t, slices.Collect(Cards(nil, 0)))
}

func TestCardOf_MissingImageFallsBackToGlyph(t *testing.T) {
	c := CardOf(catalog.Item{ID: "p1", Name: "Term Life", Owner: catalog.Owner{Name: "acme"}})
	assert.False(t, c.HasImage())
	assert.Equal(t, "A", c.Glyph)

	blank := CardOf(catalog.Item{ID: "p9"})
	assert.Equal(t, "?", blank.Glyph)
	assert.Equal(t, "p9", blank.Title, "an unnamed item falls back to its id")
}

func TestRenderCard(t *testing.T) {
	styles := theme.NewContext(theme.Dark).Styles()
	c := CardOf(catalog.Item{ID: "p1", Name: "Term Life", Owner: catalog.Owner{Name: "Acme"}})

	out := RenderCard(c, styles, 40)
	assert.Contains(t, out, "Term Life")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, AvailableBadge)

	c.Title = strings.Repeat("long ", 40)
	narrow := RenderCard(c, styles, 30)
	assert.Contains(t, narrow, "...")
	assert.NotPanics(t, func() { RenderCard(Card{}, styles, 0) })
}

func TestDetailOf(t *testing.T) {
	d := DetailOf(catalog.Item{
		ID:          "p1",
		Name:        "Term Life",
		Description: "  # Cover\n",
		URL:         "https://acme.test/buy",
		Owner:       catalog.Owner{Name: "Acme", Website: "https://acme.test", Image: "acme.png"},
	})
	assert.Equal(t, "Term Life", d.Title)
	assert.Equal(t, "# Cover", d.Description)
	assert.Equal(t, "acme.png", d.Image)
	assert.Equal(t, "Acme", d.Owner.Name)
	assert.Equal(t, "https://acme.test", d.Owner.Website)
	assert.Equal(t, "https://acme.test/buy", d.PurchaseURL)

	anon := DetailOf(catalog.Item{ID: "p2"})
	assert.Equal(t, "Unknown business", anon.Owner.Name)
	assert.Equal(t, "?", anon.Glyph)
}

func TestProjections_StripTerminalEscapes(t *testing.T) {
	item := catalog.Item{
		ID:          "p1",
		Name:        "x\x1b]0;pwned\x07",
		Description: "Cover \x1b]52;c;cHduZWQ=\x07 details",
		URL:         "https://acme.test/\x1b[2Jbuy",
		Owner: catalog.Owner{
			Name:    "\x1b[31macme\x1b[0m",
			Website: "https://acme.test\x07",
		},
	}

	c := CardOf(item)
	assert.Equal(t, "x", c.Title)
	assert.Equal(t, "acme", c.OwnerName)
	assert.Equal(t, "A", c.Glyph)
	out := RenderCard(c, theme.NewContext(theme.Dark).Styles(), 40)
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "pwned")

	d := DetailOf(item)
	for _, field := range []string{d.Title, d.Description, d.PurchaseURL, d.Owner.Name, d.Owner.Website} {
		assert.NotContains(t, field, "\x1b")
		assert.NotContains(t, field, "\x07")
	}
	assert.Equal(t, "Cover  details", d.Description)
	assert.Equal(t, "https://acme.test/buy", d.PurchaseURL)
}
