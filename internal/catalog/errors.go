package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a well-formed request with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrEmptyQuery is returned by Search for a blank query. Callers are
	// expected to guard against it before dispatching.
	ErrEmptyQuery = errors.New("empty query")
)

// TransportError reports a failed round trip to the catalog service: the
// service was unreachable, answered with a non-2xx status, or sent a body that
// could not be decoded.
type TransportError struct {
	Op     string // request path, e.g. "/search"
	Status int    // HTTP status, zero when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("catalog %s returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransport reports whether err came from the transport layer.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
