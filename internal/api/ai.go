package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ainotes/ainotes-go/internal/types"
)

// Summarize asks the service for a summary of req.Content.
func Summarize(ctx context.Context, httpClient *http.Client, baseURL string, req types.SummarizeRequest) (*types.SummaryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/summarize/", baseURL), req)
	if err != nil {
		return nil, err
	}
	var sr types.SummaryResponse
	if err := do(httpClient, httpReq, http.StatusOK, "summarize", &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}

// ExtractKeywords asks the service for the top keywords of req.Content.
func ExtractKeywords(ctx context.Context, httpClient *http.Client, baseURL string, req types.KeywordsRequest) (*types.KeywordsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/extract_keywords/", baseURL), req)
	if err != nil {
		return nil, err
	}
	var kr types.KeywordsResponse
	if err := do(httpClient, httpReq, http.StatusOK, "extract keywords", &kr); err != nil {
		return nil, err
	}
	return &kr, nil
}

// GenerateAutoTags asks the service to derive and attach tags for a note.
// The response is only an acknowledgment; callers re-fetch the note list to
// observe the new tags.
func GenerateAutoTags(ctx context.Context, httpClient *http.Client, baseURL string, noteID int) (*types.MessageResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(noteID, "noteId"); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/notes/%d/auto_tags", baseURL, noteID), nil)
	if err != nil {
		return nil, err
	}
	var mr types.MessageResponse
	if err := do(httpClient, req, http.StatusOK, "auto tags", &mr); err != nil {
		return nil, err
	}
	return &mr, nil
}

// GenerateAITags asks the service to regenerate a note's tags and returns the
// replacement tag list, letting callers patch the one note locally instead of
// re-fetching the collection.
func GenerateAITags(ctx context.Context, httpClient *http.Client, baseURL string, noteID int) (*types.AITagsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(noteID, "noteId"); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/notes/%d/ai_tags", baseURL, noteID), nil)
	if err != nil {
		return nil, err
	}
	var tr types.AITagsResponse
	if err := do(httpClient, req, http.StatusOK, "ai tags", &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
