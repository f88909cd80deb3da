package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ainotes/ainotes-go/internal/types"
)

// ListFolders returns the user's complete folder collection.
func ListFolders(ctx context.Context, httpClient *http.Client, baseURL, username string) ([]types.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/folders/%s", baseURL, url.PathEscape(username)), nil)
	if err != nil {
		return nil, err
	}
	var folders []types.Folder
	if err := do(httpClient, req, http.StatusOK, "list folders", &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// FolderTree returns the user's folders as a nested tree.
func FolderTree(ctx context.Context, httpClient *http.Client, baseURL, username string) ([]types.FolderNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	req, err := newJSONRequest(ctx, http.MethodGet, fmt.Sprintf("%s/folders/%s/tree", baseURL, url.PathEscape(username)), nil)
	if err != nil {
		return nil, err
	}
	var tree []types.FolderNode
	if err := do(httpClient, req, http.StatusOK, "folder tree", &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// CreateFolder creates a folder for username.
func CreateFolder(ctx context.Context, httpClient *http.Client, baseURL, username string, req types.CreateFolderRequest) (*types.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := types.ValidateTitle(req.Name); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/folders/?username=%s", baseURL, url.QueryEscape(username))
	httpReq, err := newJSONRequest(ctx, http.MethodPost, u, req)
	if err != nil {
		return nil, err
	}
	var folder types.Folder
	if err := do(httpClient, httpReq, http.StatusOK, "create folder", &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// UpdateFolder replaces a folder's name/color/parent.
func UpdateFolder(ctx context.Context, httpClient *http.Client, baseURL, username string, folderID int, req types.UpdateFolderRequest) (*types.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(folderID, "folderId"); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := types.ValidateTitle(req.Name); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/folders/%d?username=%s", baseURL, folderID, url.QueryEscape(username))
	httpReq, err := newJSONRequest(ctx, http.MethodPut, u, req)
	if err != nil {
		return nil, err
	}
	var folder types.Folder
	if err := do(httpClient, httpReq, http.StatusOK, "update folder", &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder. The service moves the folder's notes to the
// root, so callers should re-fetch notes as well as folders.
func DeleteFolder(ctx context.Context, httpClient *http.Client, baseURL, username string, folderID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateID(folderID, "folderId"); err != nil {
		return err
	}
	if err := types.ValidateUsername(username); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/folders/%d?username=%s", baseURL, folderID, url.QueryEscape(username))
	req, err := newJSONRequest(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	return do(httpClient, req, http.StatusOK, "delete folder", nil)
}

// FolderNotes returns the notes inside one folder without touching the
// caller's cached collection.
func FolderNotes(ctx context.Context, httpClient *http.Client, baseURL, username string, folderID int) ([]types.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateID(folderID, "folderId"); err != nil {
		return nil, err
	}
	if err := types.ValidateUsername(username); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/folders/%d/notes?username=%s", baseURL, folderID, url.QueryEscape(username))
	req, err := newJSONRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	var notes []types.Note
	if err := do(httpClient, req, http.StatusOK, "folder notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}
