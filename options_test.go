package client

import (
	"net/http"
	"testing"
	"time"
)

func TestWithHTTPTimeout(t *testing.T) {
	c := New("http://example.com", WithExecutor(&stubExec{}), WithHTTPTimeout(5*time.Second))
	t.Cleanup(func() { _ = c.Close() })
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("timeout not applied: %v", c.http.Timeout)
	}
}

func TestWithHTTPTimeout_RejectsNonPositive(t *testing.T) {
	var c Client
	c.http = &http.Client{}
	if err := WithHTTPTimeout(0)(&c); err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if err := WithHTTPTimeout(-time.Second)(&c); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c := New("http://example.com", WithExecutor(&stubExec{}), WithHTTPClient(hc))
	t.Cleanup(func() { _ = c.Close() })
	if c.http != hc {
		t.Fatal("custom http client not installed")
	}
}

func TestWithHTTPClient_RejectsNil(t *testing.T) {
	var c Client
	if err := WithHTTPClient(nil)(&c); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestWithExecutor(t *testing.T) {
	s := &stubExec{}
	c := New("http://example.com", WithExecutor(s))
	if c.exec != s {
		t.Fatal("custom executor not installed")
	}
	_ = c.Close()
	if s.stops != 1 {
		t.Fatalf("close did not stop the executor, stops=%d", s.stops)
	}
}

func TestWithExecutor_RejectsNil(t *testing.T) {
	var c Client
	if err := WithExecutor(nil)(&c); err == nil {
		t.Fatal("expected error for nil executor")
	}
}
