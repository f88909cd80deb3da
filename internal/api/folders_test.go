package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ainotes/ainotes-go/internal/types"
)

func TestListFolders_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/folders/alice" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]types.Folder{{ID: 1, Name: "work", Color: "#67c23a"}})
	}))
	defer srv.Close()

	folders, err := ListFolders(context.Background(), srv.Client(), srv.URL, "alice")
	if err != nil || len(folders) != 1 || folders[0].Name != "work" {
		t.Fatalf("ListFolders unexpected: %+v, err=%v", folders, err)
	}
}

func TestFolderTree_Nested(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/folders/alice/tree" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]types.FolderNode{
			{ID: 1, Name: "work", Children: []types.FolderNode{{ID: 2, Name: "projects"}}},
		})
	}))
	defer srv.Close()

	tree, err := FolderTree(context.Background(), srv.Client(), srv.URL, "alice")
	if err != nil || len(tree) != 1 || len(tree[0].Children) != 1 || tree[0].Children[0].Name != "projects" {
		t.Fatalf("FolderTree unexpected: %+v, err=%v", tree, err)
	}
}

func TestCreateFolder_PassesUsernameQuery(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("username") != "alice" {
			t.Errorf("missing username query: %s", r.URL.RawQuery)
		}
		var req types.CreateFolderRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(types.Folder{ID: 3, Name: req.Name, Color: req.Color})
	}))
	defer srv.Close()

	folder, err := CreateFolder(context.Background(), srv.Client(), srv.URL, "alice", types.CreateFolderRequest{Name: "work", Color: "#67c23a"})
	if err != nil || folder.ID != 3 {
		t.Fatalf("CreateFolder unexpected: %+v, err=%v", folder, err)
	}
}

func TestDeleteFolder_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/folders/3" {
			t.Errorf("expected DELETE /folders/3, got %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.MessageResponse{Message: "deleted"})
	}))
	defer srv.Close()

	if err := DeleteFolder(context.Background(), srv.Client(), srv.URL, "alice", 3); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
}

func TestFolderNotes_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/folders/3/notes" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]types.Note{{ID: 1, Title: "in folder"}})
	}))
	defer srv.Close()

	notes, err := FolderNotes(context.Background(), srv.Client(), srv.URL, "alice", 3)
	if err != nil || len(notes) != 1 {
		t.Fatalf("FolderNotes unexpected: %+v, err=%v", notes, err)
	}
}

func TestUpdateFolder_ValidatesID(t *testing.T) {
	t.Parallel()
	if _, err := UpdateFolder(context.Background(), http.DefaultClient, "http://example.com", "alice", 0, types.UpdateFolderRequest{Name: "x"}); err == nil {
		t.Fatal("expected error for folderId 0")
	}
}
