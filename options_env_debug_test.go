package client

import (
	"context"
	"net/http"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("AINOTES_DEBUG", "true")
	c := New("http://example.com", WithExecutor(&stubExec{}))
	t.Cleanup(func() { _ = c.Close() })

	// The request-id wrapper is installed last, so the debug transport sits
	// directly underneath it.
	rid, ok := c.http.Transport.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := rid.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport when AINOTES_DEBUG=true, got %T", rid.base)
	}
}

func TestNew_DebugOffByDefault(t *testing.T) {
	t.Setenv("AINOTES_DEBUG", "")
	t.Setenv("DEBUG", "")
	c := New("http://example.com", WithExecutor(&stubExec{}))
	t.Cleanup(func() { _ = c.Close() })

	rid, ok := c.http.Transport.(*requestIDTransport)
	if !ok {
		t.Fatalf("expected requestIDTransport outermost, got %T", c.http.Transport)
	}
	if _, ok := rid.base.(*debugTransport); ok {
		t.Fatal("debugTransport must not be installed by default")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c := New("http://example.com",
		WithExecutor(&stubExec{}),
		WithHTTPClient(&http.Client{Transport: rt}),
		WithDebugLogging(true))
	t.Cleanup(func() { _ = c.Close() })

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatal("expected error from underlying transport")
	}
}
