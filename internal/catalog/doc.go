// Package catalog provides an HTTP client for the product catalog API.
//
// # Overview
//
// The catalog service exposes two read-only endpoints that Scout consumes:
//
//   - GET /search?search=<query>: products matching a free-text query
//   - GET /products/{id}: one product with its publishing business embedded
//
// Both return JSON. Products carry their business (Owner) by value, so every
// Item decoded from a search response is self-contained.
//
// # Client Usage
//
//	client, err := catalog.NewClient("http://127.0.0.1:8000",
//		catalog.WithTimeout(10*time.Second),
//		catalog.WithRateLimit(5),
//		catalog.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	items, err := client.Search(ctx, "term life")
//
// The base URL may carry a path prefix ("https://host/api"); endpoint paths are
// joined onto it.
//
// # Request Handling
//
// All requests:
//   - Honour the caller's context for cancellation
//   - Wait on a token-bucket limiter when a rate limit is configured
//   - Set Accept: application/json and User-Agent: scout/0.1
//   - Carry a fresh X-Request-ID so service logs can be correlated
//   - Are logged at debug level with method, path, status and duration
//
// # Error Handling
//
// Failures fall into three groups:
//
//   - ErrNotFound: the detail endpoint answered 404 or an empty body
//   - *TransportError: unreachable service, non-2xx status, undecodable body
//   - ErrEmptyQuery: Search was called with a blank query; no request is made
//
// Use IsNotFound and IsTransport (or errors.Is/errors.As) to tell them apart.
// The session controllers fold all of them into a Failed status.
//
// # Design Rationale
//
// The client is intentionally thin:
//   - No caching (every commit asks the service)
//   - No retries (the user re-issues the action)
//   - No pagination (the service decides the result window)
package catalog
