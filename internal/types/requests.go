package types

// ------------------------------
// Request Types
// ------------------------------

// Credentials is the /register and /login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the /change_password request body.
type ChangePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateNoteRequest holds parameters for a new note.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
	FolderID *int   `json:"folder_id,omitempty"`
}

// UpdateNoteRequest holds the full replacement values for a note edit.
type UpdateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
	FolderID *int   `json:"folder_id,omitempty"`
}

// CreateFolderRequest holds parameters for a new folder.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	ParentID *int   `json:"parent_id,omitempty"`
}

// UpdateFolderRequest holds the full replacement values for a folder.
type UpdateFolderRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	ParentID *int   `json:"parent_id,omitempty"`
}

// CreateTagRequest holds parameters for a new tag.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AddTagsRequest attaches existing or new tags to a note by name.
type AddTagsRequest struct {
	TagNames []string `json:"tag_names"`
}

// SummarizeRequest asks the service to summarize free-form content.
type SummarizeRequest struct {
	Content   string `json:"content"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

// KeywordsRequest asks the service for the top N keywords of content.
type KeywordsRequest struct {
	Content string `json:"content"`
	TopN    int    `json:"top_n"`
}
