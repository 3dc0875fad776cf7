package present

import "github.com/five82/scout/internal/catalog"

// Detail is the projection of a full product record.
type Detail struct {
	ID          string
	Title       string
	Image       string
	Glyph       string
	Description string // markdown source
	Owner       OwnerBlock
	PurchaseURL string
}

// OwnerBlock describes the publishing business on the detail page.
type OwnerBlock struct {
	Name        string
	Description string
	Website     string
	Glyph       string
}

// DetailOf projects item for the detail view. Text fields are cleaned of
// terminal escape sequences; the description stays markdown source.
func DetailOf(item catalog.Item) Detail {
	name := clean(item.Owner.Name)
	glyph := initial(name)
	if name == "" {
		name = "Unknown business"
	}
	return Detail{
		ID:          item.ID,
		Title:       title(item),
		Image:       clean(item.ImageRef()),
		Glyph:       glyph,
		Description: clean(item.Description),
		Owner: OwnerBlock{
			Name:        name,
			Description: clean(item.Owner.Description),
			Website:     clean(item.Owner.Website),
			Glyph:       glyph,
		},
		PurchaseURL: clean(item.URL),
	}
}
