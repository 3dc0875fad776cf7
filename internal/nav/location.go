package nav

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// QueryParam is the location parameter that carries the committed query.
	QueryParam = "q"

	detailPrefix = "/product/"
)

// Location is a shareable position in the application: the search view with
// an optional committed query, or the detail view of one product.
type Location struct {
	path  string
	query string
}

// Parse reads a location such as "/?q=term+life", "?q=x" or "/product/p1".
// Scheme and host are ignored so full URLs can be pasted.
func Parse(raw string) (Location, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Location{path: "/"}, nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return Location{}, fmt.Errorf("parse location %q: %w", raw, err)
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && !strings.HasPrefix(path, detailPrefix) {
		return Location{}, fmt.Errorf("parse location %q: unknown route %q", raw, path)
	}
	if path == "/" {
		return SearchLocation(u.Query().Get(QueryParam)), nil
	}
	id := strings.TrimSpace(strings.TrimPrefix(path, detailPrefix))
	if id == "" {
		return Location{}, fmt.Errorf("parse location %q: missing product id", raw)
	}
	return DetailLocation(id), nil
}

// SearchLocation returns the search view for query. A blank query yields the
// bare search view.
func SearchLocation(query string) Location {
	return Location{path: "/", query: strings.TrimSpace(query)}
}

// DetailLocation returns the detail view for the product id.
func DetailLocation(id string) Location {
	return Location{path: detailPrefix + strings.TrimSpace(id)}
}

// IsSearch reports whether the location addresses the search view.
func (l Location) IsSearch() bool {
	return l.path == "" || l.path == "/"
}

// Query returns the committed query carried by a search location.
func (l Location) Query() string {
	if !l.IsSearch() {
		return ""
	}
	return l.query
}

// ItemID returns the product id of a detail location.
func (l Location) ItemID() (string, bool) {
	if !strings.HasPrefix(l.path, detailPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(l.path, detailPrefix)
	return id, id != ""
}

// String renders the location in its shareable form.
func (l Location) String() string {
	if id, ok := l.ItemID(); ok {
		return detailPrefix + url.PathEscape(id)
	}
	if l.query == "" {
		return "/"
	}
	values := url.Values{}
	values.Set(QueryParam, l.query)
	return "/?" + values.Encode()
}
