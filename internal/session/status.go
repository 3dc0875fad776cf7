package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/five82/scout/internal/catalog"
)

// Status is the fetch lifecycle stage of a session.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Token tags one dispatched request. Seq grows with every dispatch so that a
// response can be matched to the exact request that produced it, even when
// the same key is requested twice.
type Token struct {
	Seq uint64
	Key string
}

// IsZero reports whether the token is unset.
func (t Token) IsZero() bool {
	return t.Seq == 0 && t.Key == ""
}

// Searcher runs free-text catalog searches.
type Searcher interface {
	Search(ctx context.Context, query string) ([]catalog.Item, error)
}

// ItemGetter fetches one catalog record.
type ItemGetter interface {
	GetItem(ctx context.Context, id string) (catalog.Item, error)
}

// Option configures a controller.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger sets the logger controllers report dispatches and discards to.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
