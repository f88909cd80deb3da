package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ainotes/ainotes-go/internal/types"
)

// ListTags returns the user's complete tag collection.
func ListTags(ctx context.Context, httpClient *http.Client, baseURL, username string) ([]types.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/tags/%s", baseURL, url.PathEscape(username)), nil)
	if err != nil {
		return nil, err
	}
	var tags []types.Tag
	if err := do(httpClient, req, http.StatusOK, "list tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag for username. Creating an existing name returns the
// existing tag unchanged.
func CreateTag(ctx context.Context, httpClient *http.Client, baseURL, username string, req types.CreateTagRequest) (*types.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := types.ValidateTitle(req.Name); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/tags/?username=%s", baseURL, url.QueryEscape(username))
	httpReq, err := newJSONRequest(ctx, http.MethodPost, u, req)
	if err != nil {
		return nil, err
	}
	var tag types.Tag
	if err := do(httpClient, httpReq, http.StatusOK, "create tag", &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// AddTagsToNote attaches tags to a note by name, creating missing tags on the
// service side.
func AddTagsToNote(ctx context.Context, httpClient *http.Client, baseURL, username string, noteID int, names []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateID(noteID, "noteId"); err != nil {
		return err
	}
	if err := types.ValidateUsername(username); err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("tag names are required")
	}
	u := fmt.Sprintf("%s/notes/%d/tags?username=%s", baseURL, noteID, url.QueryEscape(username))
	req, err := newJSONRequest(ctx, http.MethodPost, u, types.AddTagsRequest{TagNames: names})
	if err != nil {
		return err
	}
	return do(httpClient, req, http.StatusOK, "add tags", nil)
}
