package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ainotes/ainotes-go/internal/types"
)

// Search runs a full-text query scoped to username. Results arrive sorted by
// relevance score, best first.
func Search(ctx context.Context, httpClient *http.Client, baseURL, username, query string) (*types.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/search/%s?query=%s", baseURL, url.PathEscape(username), url.QueryEscape(query))
	req, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var sr types.SearchResponse
	if err := do(httpClient, req, http.StatusOK, "search", &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}
