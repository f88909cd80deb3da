package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Note is a note as the service returns it. FolderName is derived server-side
// from FolderID; the client only displays it and never resolves the reference
// itself. Tags are referenced by name, not by id.
type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	UpdatedAt  time.Time `json:"updated_at"`
	FolderID   *int      `json:"folder_id,omitempty"`
	FolderName string    `json:"folder_name,omitempty"`
	Tags       []string  `json:"tags"`
}

// Folder is a user-scoped folder. ParentID models nesting, but folder
// selection in the client stays flat.
type Folder struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	ParentID  *int      `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FolderNode is one node of the /folders/{user}/tree response.
type FolderNode struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Color     string       `json:"color"`
	CreatedAt time.Time    `json:"created_at"`
	Children  []FolderNode `json:"children"`
}

// Tag is a user-scoped label.
type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// SearchResult decorates a Note with a relevance score used for display and
// sort. Match spans are located at render time, not precomputed.
type SearchResult struct {
	Note
	Score float64 `json:"score"`
}
