// Package session holds the search and detail controllers that sit between
// the TUI event loop and the catalog client.
//
// Controllers never perform I/O themselves. A state-changing call such as
// SearchController.Commit returns a request value; the caller runs it off the
// event loop and feeds the response back through Resolve. Every request
// carries a Token whose Seq grows with each dispatch, and Resolve applies a
// response only when its token is still the current one. Responses for
// superseded queries or identifiers are dropped without touching state, so
// the last committed query wins regardless of the order replies arrive in.
//
// Controllers are not safe for concurrent use. They are owned by a single
// goroutine (the Bubble Tea Update loop); only Request.Run may execute
// elsewhere.
package session
