package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/five82/scout/internal/catalog"
	"github.com/five82/scout/internal/nav"
)

// SearchState is a point-in-time copy of the search session.
type SearchState struct {
	Committed string
	Results   []catalog.Item
	Status    Status
	Err       error
}

// SearchRequest is a dispatched search waiting to be run off the event loop.
type SearchRequest struct {
	Token   Token
	catalog Searcher
}

// Run performs the search. It never touches controller state; feed the
// response back through SearchController.Resolve.
func (r SearchRequest) Run(ctx context.Context) SearchResponse {
	items, err := r.catalog.Search(ctx, r.Token.Key)
	return SearchResponse{Token: r.Token, Items: items, Err: err}
}

// SearchResponse carries a search outcome tagged with its dispatch token.
type SearchResponse struct {
	Token Token
	Items []catalog.Item
	Err   error
}

// SearchController turns committed queries into catalog searches and keeps
// only the outcome of the most recently committed one. It is driven from a
// single event loop and is not safe for concurrent use.
type SearchController struct {
	catalog Searcher
	queries *QueryStore
	log     zerolog.Logger

	seq      uint64
	inflight Token
	fetched  string
	state    SearchState
}

// NewSearchController builds a controller over queries. Call Start to fetch
// the query the initial location carries.
func NewSearchController(c Searcher, queries *QueryStore, opts ...Option) *SearchController {
	o := buildOptions(opts)
	return &SearchController{
		catalog: c,
		queries: queries,
		log:     o.log,
		state:   SearchState{Committed: queries.Committed()},
	}
}

// Queries exposes the query store backing the controller.
func (c *SearchController) Queries() *QueryStore { return c.queries }

// State returns a copy of the session; the results slice is cloned.
func (c *SearchController) State() SearchState {
	st := c.state
	st.Results = catalog.CloneItems(c.state.Results)
	return st
}

// InFlight returns the outstanding request token, if any.
func (c *SearchController) InFlight() (Token, bool) {
	return c.inflight, !c.inflight.IsZero()
}

// Start dispatches the query of the current location, if any.
func (c *SearchController) Start() (SearchRequest, bool) {
	return c.LocationChanged(c.queries.Location())
}

// SetPendingQuery updates the draft text only.
func (c *SearchController) SetPendingQuery(text string) {
	c.queries.SetPending(text)
}

// Commit promotes the draft. A blank draft clears the results without a
// request; the query already loading or shown is not fetched again; a failed
// query is retried.
func (c *SearchController) Commit() (SearchRequest, bool) {
	q := c.queries.Commit()
	return c.dispatch(q, true)
}

// SelectSuggestion commits text as if it had been typed and submitted.
func (c *SearchController) SelectSuggestion(text string) (SearchRequest, bool) {
	c.SetPendingQuery(text)
	return c.Commit()
}

// Suggestions returns up to limit recent queries extending the draft.
func (c *SearchController) Suggestions(limit int) []string {
	return c.queries.Recent(limit)
}

// LocationChanged re-derives the committed query after back/forward navigation
// and fetches only when it differs from the last fetched query.
func (c *SearchController) LocationChanged(loc nav.Location) (SearchRequest, bool) {
	if !loc.IsSearch() {
		return SearchRequest{}, false
	}
	q := c.queries.Sync(loc)
	return c.dispatch(q, false)
}

// Resolve applies resp if it answers the current request and reports whether
// it did. Responses for superseded requests are dropped untouched.
func (c *SearchController) Resolve(resp SearchResponse) bool {
	if c.inflight.IsZero() || resp.Token != c.inflight || resp.Token.Key != c.queries.Committed() {
		c.log.Debug().
			Str("query", resp.Token.Key).
			Uint64("seq", resp.Token.Seq).
			Uint64("current_seq", c.inflight.Seq).
			Msg("discarding stale search response")
		return false
	}
	c.inflight = Token{}

	if resp.Err != nil {
		c.state.Status = Failed
		c.state.Results = nil
		c.state.Err = resp.Err
		c.log.Warn().Err(resp.Err).Str("query", resp.Token.Key).Msg("search failed")
		return true
	}
	c.state.Status = Ready
	c.state.Results = catalog.CloneItems(resp.Items)
	c.state.Err = nil
	c.log.Debug().Str("query", resp.Token.Key).Int("results", len(resp.Items)).Msg("search resolved")
	return true
}

// Discard drops the session when the search view is left. Outstanding
// responses are invalidated and the next visit fetches again.
func (c *SearchController) Discard() {
	c.seq++
	c.inflight = Token{}
	c.fetched = ""
	c.state = SearchState{Committed: c.queries.Committed(), Status: Idle}
}

func (c *SearchController) dispatch(q string, retryFailed bool) (SearchRequest, bool) {
	if q == "" {
		c.seq++
		c.inflight = Token{}
		c.fetched = ""
		c.state = SearchState{Status: Idle}
		return SearchRequest{}, false
	}
	if q == c.fetched {
		switch c.state.Status {
		case Loading, Ready:
			return SearchRequest{}, false
		case Failed:
			if !retryFailed {
				return SearchRequest{}, false
			}
		}
	}

	c.seq++
	c.inflight = Token{Seq: c.seq, Key: q}
	c.fetched = q
	c.state = SearchState{Committed: q, Status: Loading}
	c.log.Debug().Str("query", q).Uint64("seq", c.seq).Msg("dispatching search")
	return SearchRequest{Token: c.inflight, catalog: c.catalog}, true
}
