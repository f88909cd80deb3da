package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ainotes/ainotes-go/internal/apierr"
	"github.com/ainotes/ainotes-go/internal/types"
)

func TestSearch_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/alice" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "a+b" {
			t.Errorf("query not escaped/forwarded, got %q", got)
		}
		_ = json.NewEncoder(w).Encode(types.SearchResponse{
			Results: []types.SearchResult{{Note: types.Note{ID: 1, Title: "a+b test"}, Score: 0.9}},
			Query:   "a+b",
			Count:   1,
		})
	}))
	defer srv.Close()

	got, err := Search(context.Background(), srv.Client(), srv.URL, "alice", "a+b")
	if err != nil || got.Count != 1 || got.Results[0].Score != 0.9 {
		t.Fatalf("Search unexpected: %+v, err=%v", got, err)
	}
}

func TestSearch_NonOK(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "user not found"})
	}))
	defer srv.Close()

	_, err := Search(context.Background(), srv.Client(), srv.URL, "ghost", "x")
	if !apierr.IsRejected(err) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestSearch_TransportError(t *testing.T) {
	t.Parallel()
	if _, err := Search(context.Background(), errClient(), "http://example.com", "alice", "x"); !apierr.IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
