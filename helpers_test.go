package client

import (
	"net/http"
	"testing"
)

// roundTripFunc adapts a closure to http.RoundTripper for transport tests.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

// newSignedInStack wires a Client, Session and EntityStore against serverURL
// with "alice" already signed in, skipping the login round trip.
func newSignedInStack(t *testing.T, serverURL string) (*Client, *Session, *EntityStore) {
	t.Helper()
	c := New(serverURL)
	t.Cleanup(func() { _ = c.Close() })
	s := NewSession(c)
	s.username = "alice"
	return c, s, NewEntityStore(c, s)
}
