package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Owner is the business that publishes an Item.
type Owner struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Initial returns the upper-cased first letter of the owner name, or "?" when
// the name is blank.
func (o Owner) Initial() string {
	name := strings.TrimSpace(o.Name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Item mirrors a product record returned by the catalog service. The owner is
// embedded by value; every item carries its own copy.
type Item struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       Owner  `json:"business"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ImageRef returns the item's own image when set, otherwise the owner's.
func (i Item) ImageRef() string {
	if img := strings.TrimSpace(i.Image); img != "" {
		return img
	}
	return strings.TrimSpace(i.Owner.Image)
}

// CloneItems returns an independent copy of items. Empty input yields nil.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
