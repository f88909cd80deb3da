package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ainotes/ainotes-go/internal/types"
)

func TestSummarize_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.SummarizeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.MaxLength != 150 || req.MinLength != 30 {
			t.Errorf("length bounds not forwarded: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(types.SummaryResponse{Summary: "short version"})
	}))
	defer srv.Close()

	got, err := Summarize(context.Background(), srv.Client(), srv.URL, types.SummarizeRequest{Content: "long text", MaxLength: 150, MinLength: 30})
	if err != nil || got.Summary != "short version" {
		t.Fatalf("Summarize unexpected: %+v, err=%v", got, err)
	}
}

func TestExtractKeywords_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.KeywordsResponse{Keywords: []string{"go", "notes"}})
	}))
	defer srv.Close()

	got, err := ExtractKeywords(context.Background(), srv.Client(), srv.URL, types.KeywordsRequest{Content: "x", TopN: 5})
	if err != nil || len(got.Keywords) != 2 {
		t.Fatalf("ExtractKeywords unexpected: %+v, err=%v", got, err)
	}
}

func TestGenerateAutoTags_BodylessPost(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes/8/auto_tags" {
			t.Errorf("expected POST /notes/8/auto_tags, got %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.MessageResponse{Message: "tags generated"})
	}))
	defer srv.Close()

	got, err := GenerateAutoTags(context.Background(), srv.Client(), srv.URL, 8)
	if err != nil || got.Message != "tags generated" {
		t.Fatalf("GenerateAutoTags unexpected: %+v, err=%v", got, err)
	}
}

func TestGenerateAITags_ReturnsReplacementList(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/ai_tags") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.AITagsResponse{Tags: []string{"go", "sdk"}})
	}))
	defer srv.Close()

	got, err := GenerateAITags(context.Background(), srv.Client(), srv.URL, 8)
	if err != nil || len(got.Tags) != 2 {
		t.Fatalf("GenerateAITags unexpected: %+v, err=%v", got, err)
	}
}
