package session

import (
	"strings"

	"github.com/five82/scout/internal/nav"
)

// NormalizeQuery trims text and reports whether anything is left.
func NormalizeQuery(text string) (string, bool) {
	q := strings.TrimSpace(text)
	return q, q != ""
}

// Navigator is the location history the query store reflects commits into.
// *nav.History implements it.
type Navigator interface {
	Current() nav.Location
	Push(loc nav.Location) bool
	Entries() []nav.Location
}

// QueryStore owns the draft (pending) query and the committed query, and keeps
// the committed query in step with the shareable location.
type QueryStore struct {
	nav       Navigator
	pending   string
	committed string
}

// NewQueryStore starts from the navigator's current location, so a location
// carrying ?q= comes up already committed.
func NewQueryStore(n Navigator) *QueryStore {
	s := &QueryStore{nav: n}
	s.Sync(n.Current())
	return s
}

// Pending returns the draft text exactly as typed.
func (s *QueryStore) Pending() string { return s.pending }

// Committed returns the query driving the displayed results.
func (s *QueryStore) Committed() string { return s.committed }

// Location returns the navigator's active location.
func (s *QueryStore) Location() nav.Location { return s.nav.Current() }

// SetPending replaces the draft text.
func (s *QueryStore) SetPending(text string) {
	s.pending = text
}

// Commit promotes the normalized draft to the committed query and pushes the
// matching search location. A blank draft commits the empty query.
func (s *QueryStore) Commit() string {
	q, _ := NormalizeQuery(s.pending)
	s.committed = q
	s.nav.Push(nav.SearchLocation(q))
	return q
}

// Sync adopts the query carried by loc without touching the history. Detail
// locations leave the store unchanged.
func (s *QueryStore) Sync(loc nav.Location) string {
	if !loc.IsSearch() {
		return s.committed
	}
	s.committed = loc.Query()
	s.pending = s.committed
	return s.committed
}

// Recent returns distinct committed queries from the history, newest first,
// that extend the current draft. The draft itself is never suggested.
func (s *QueryStore) Recent(limit int) []string {
	if limit <= 0 {
		return nil
	}
	prefix := strings.ToLower(strings.TrimSpace(s.pending))
	entries := s.nav.Entries()
	seen := make(map[string]bool, len(entries))
	var out []string
	for i := len(entries) - 1; i >= 0 && len(out) < limit; i-- {
		q := entries[i].Query()
		key := strings.ToLower(q)
		if q == "" || seen[key] {
			continue
		}
		seen[key] = true
		if key == prefix || !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, q)
	}
	return out
}
