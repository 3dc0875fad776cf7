package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultAPIURL+"/" {
		t.Fatalf("base = %q, want %q", u.String(), DefaultAPIURL+"/")
	}

	u, err = parseBaseURL("example.com:1234/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" || u.Path != "/api" {
		t.Fatalf("url not normalized: %q", u.String())
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("query/fragment kept: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_SearchEncodesQueryAndHeaders(t *testing.T) {
	t.Parallel()

	var gotPath, gotSearch, gotUA, gotRequestID, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSearch = r.URL.Query().Get("search")
		gotUA = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(requestIDHeader)
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id":"p2","name":"Whole Life","business":{"_id":"b1","name":"Acme","image":"acme.png"}},
			{"_id":"p1","name":"Term Life","business":{"_id":"b1","name":"Acme"},"image":"term.png"}
		]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.Search(ctx, "  term life  ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if gotPath != "/api/search" {
		t.Fatalf("path = %q, want /api/search", gotPath)
	}
	if gotSearch != "term life" {
		t.Fatalf("search param = %q, want %q", gotSearch, "term life")
	}
	if !strings.HasPrefix(gotUA, "scout/") {
		t.Fatalf("User-Agent = %q, want scout/*", gotUA)
	}
	if gotRequestID == "" {
		t.Fatalf("X-Request-ID header missing")
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}

	if len(items) != 2 || items[0].ID != "p2" || items[1].ID != "p1" {
		t.Fatalf("items = %#v, want service order p2, p1", items)
	}
	if items[0].Owner.Name != "Acme" || items[0].ImageRef() != "acme.png" {
		t.Fatalf("owner not decoded: %#v", items[0].Owner)
	}
	if items[1].ImageRef() != "term.png" {
		t.Fatalf("ImageRef = %q, want item override term.png", items[1].ImageRef())
	}
}

func TestClient_SearchBlankQueryMakesNoRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Search(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("Search error = %v, want ErrEmptyQuery", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hit %d times, want 0", hits.Load())
	}
}

func TestClient_GetItem(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.EscapedPath() {
		case "/products/p1":
			_ = json.NewEncoder(w).Encode(Item{
				ID:          "p1",
				Name:        "Term Life",
				Description: "# Cover\nTwenty years.",
				Owner:       Owner{ID: "b1", Name: "Acme", Description: "Insurer"},
			})
		case "/products/a%2Fb":
			_ = json.NewEncoder(w).Encode(Item{ID: "a/b", Name: "Slashed"})
		case "/products/empty":
			_, _ = w.Write([]byte("null"))
		case "/products/broken":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	item, err := c.GetItem(ctx, "p1")
	if err != nil {
		t.Fatalf("GetItem returned error: %v", err)
	}
	if item.Name != "Term Life" || item.Owner.Description != "Insurer" {
		t.Fatalf("GetItem = %#v, want Term Life by Acme", item)
	}

	item, err = c.GetItem(ctx, "a/b")
	if err != nil || item.ID != "a/b" {
		t.Fatalf("GetItem(a/b) = %#v, %v; want escaped path lookup", item, err)
	}

	for _, id := range []string{"missing", "empty", "  "} {
		_, err = c.GetItem(ctx, id)
		if !IsNotFound(err) {
			t.Fatalf("GetItem(%q) error = %v, want ErrNotFound", id, err)
		}
	}

	_, err = c.GetItem(ctx, "broken")
	if !IsTransport(err) || IsNotFound(err) {
		t.Fatalf("GetItem(broken) error = %v, want transport error", err)
	}
	var te *TransportError
	if !errors.As(err, &te) || te.Status != http.StatusInternalServerError {
		t.Fatalf("GetItem(broken) error = %#v, want status 500", err)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "nope", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Search(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "returned status 502") {
		t.Fatalf("Search error = %v, want status 502 error", err)
	}

	fail.Store(false)
	_, err = c.Search(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Search error = %v, want decode response error", err)
	}
	if !IsTransport(err) {
		t.Fatalf("decode error should be a transport error: %v", err)
	}
}

func TestClient_UnreachableIsTransportError(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", WithTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Search(context.Background(), "x")
	if !IsTransport(err) {
		t.Fatalf("Search error = %v, want transport error", err)
	}
}

func TestClient_CancelledContextFailsBeforeRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("[]"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithRateLimit(0.001))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	// The first request consumes the only token.
	if _, err := c.Search(context.Background(), "a"); err != nil {
		t.Fatalf("first Search returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Search(ctx, "b")
	if !IsTransport(err) {
		t.Fatalf("Search error = %v, want rate limit transport error", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("server hit %d times, want 1", hits.Load())
	}
}
