package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ainotes/ainotes-go/internal/types"
)

// ListNotes returns the user's complete note collection. Callers replace
// their cached list with the result; nothing is patched incrementally.
func ListNotes(ctx context.Context, httpClient *http.Client, baseURL, username string) ([]types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/notes/%s", baseURL, url.PathEscape(username)), nil)
	if err != nil {
		return nil, err
	}
	var notes []types.Note
	if err := do(httpClient, req, http.StatusOK, "list notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote posts a new note and returns the created Note as the service
// recorded it.
func CreateNote(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateNoteRequest) (*types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := types.ValidateTitle(req.Title); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPost, fmt.Sprintf("%s/notes/", baseURL), req)
	if err != nil {
		return nil, err
	}
	var note types.Note
	if err := do(httpClient, httpReq, http.StatusOK, "create note", &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces a note's title/content/folder. The response carries
// only the acknowledgment and the new updated_at; the caller merges its own
// draft values locally.
func UpdateNote(ctx context.Context, httpClient *http.Client, baseURL string, noteID int, req types.UpdateNoteRequest) (*types.UpdateNoteResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(noteID, "noteId"); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := types.ValidateTitle(req.Title); err != nil {
		return nil, err
	}
	httpReq, err := newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("%s/notes/%d", baseURL, noteID), req)
	if err != nil {
		return nil, err
	}
	var ur types.UpdateNoteResponse
	if err := do(httpClient, httpReq, http.StatusOK, "update note", &ur); err != nil {
		return nil, err
	}
	return &ur, nil
}

// DeleteNote removes a note owned by username.
func DeleteNote(ctx context.Context, httpClient *http.Client, baseURL string, noteID int, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateID(noteID, "noteId"); err != nil {
		return err
	}
	if err := types.ValidateUsername(username); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/notes/%d?username=%s", baseURL, noteID, url.QueryEscape(username))
	req, err := newJSONRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	return do(httpClient, req, http.StatusOK, "delete note", nil)
}
