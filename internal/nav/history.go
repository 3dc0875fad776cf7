package nav

// History is a back/forward stack of visited locations. It is owned by the
// UI event loop and is not safe for concurrent use.
type History struct {
	entries []Location
	index   int
}

// NewHistory starts a history at start.
func NewHistory(start Location) *History {
	if start.path == "" {
		start.path = "/"
	}
	return &History{entries: []Location{start}}
}

// Current returns the active location.
func (h *History) Current() Location {
	return h.entries[h.index]
}

// Push makes loc the active location and drops any forward entries. Pushing
// the active location again is a no-op and reports false.
func (h *History) Push(loc Location) bool {
	if loc == h.Current() {
		return false
	}
	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
	return true
}

// Back moves one entry back.
func (h *History) Back() (Location, bool) {
	if h.index == 0 {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Forward moves one entry forward.
func (h *History) Forward() (Location, bool) {
	if h.index >= len(h.entries)-1 {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// CanBack reports whether Back would move.
func (h *History) CanBack() bool { return h.index > 0 }

// CanForward reports whether Forward would move.
func (h *History) CanForward() bool { return h.index < len(h.entries)-1 }

// Entries returns the visited locations, oldest first, up to and including
// the active one.
func (h *History) Entries() []Location {
	out := make([]Location, h.index+1)
	copy(out, h.entries[:h.index+1])
	return out
}
