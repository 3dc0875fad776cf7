package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/scout/internal/catalog"
)

// DetailState is a point-in-time copy of the detail session.
type DetailState struct {
	ID     string
	Item   *catalog.Item
	Status Status
	Err    error
}

// DetailRequest is a dispatched lookup waiting to be run off the event loop.
type DetailRequest struct {
	Token   Token
	catalog ItemGetter
}

// Run fetches the record.
func (r DetailRequest) Run(ctx context.Context) DetailResponse {
	item, err := r.catalog.GetItem(ctx, r.Token.Key)
	return DetailResponse{Token: r.Token, Item: item, Err: err}
}

// DetailResponse carries a lookup outcome tagged with its dispatch token.
type DetailResponse struct {
	Token Token
	Item  catalog.Item
	Err   error
}

// DetailController fetches and holds one product record at a time.
type DetailController struct {
	catalog ItemGetter
	log     zerolog.Logger

	seq      uint64
	inflight Token
	state    DetailState
}

// NewDetailController builds an idle detail controller.
func NewDetailController(c ItemGetter, opts ...Option) *DetailController {
	o := buildOptions(opts)
	return &DetailController{catalog: c, log: o.log}
}

// State returns a copy of the session.
func (c *DetailController) State() DetailState {
	st := c.state
	if c.state.Item != nil {
		item := *c.state.Item
		st.Item = &item
	}
	return st
}

// Open starts loading id, superseding any outstanding lookup. A blank id fails
// immediately as not found.
func (c *DetailController) Open(id string) (DetailRequest, bool) {
	id = strings.TrimSpace(id)
	if id != "" && id == c.state.ID && c.state.Status == Loading {
		return DetailRequest{}, false
	}

	c.seq++
	if id == "" {
		c.inflight = Token{}
		c.state = DetailState{Status: Failed, Err: fmt.Errorf("product id required: %w", catalog.ErrNotFound)}
		return DetailRequest{}, false
	}
	c.inflight = Token{Seq: c.seq, Key: id}
	c.state = DetailState{ID: id, Status: Loading}
	c.log.Debug().Str("id", id).Uint64("seq", c.seq).Msg("dispatching detail lookup")
	return DetailRequest{Token: c.inflight, catalog: c.catalog}, true
}

// Resolve applies resp if it answers the current lookup.
func (c *DetailController) Resolve(resp DetailResponse) bool {
	if c.inflight.IsZero() || resp.Token != c.inflight {
		c.log.Debug().Str("id", resp.Token.Key).Uint64("seq", resp.Token.Seq).Msg("discarding stale detail response")
		return false
	}
	c.inflight = Token{}

	if resp.Err != nil {
		c.state.Status = Failed
		c.state.Item = nil
		c.state.Err = resp.Err
		c.log.Warn().Err(resp.Err).Str("id", resp.Token.Key).Msg("detail lookup failed")
		return true
	}
	item := resp.Item
	c.state.Item = &item
	c.state.Status = Ready
	c.state.Err = nil
	return true
}

// Close abandons the detail view; a late response is discarded.
func (c *DetailController) Close() {
	c.seq++
	c.inflight = Token{}
	c.state = DetailState{}
}
