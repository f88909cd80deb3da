package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/ainotes/ainotes-go/internal/types"
)

// EntityStore is the in-memory cache of the signed-in user's notes, folders
// and tags. Mutating operations call the service and then reconcile: for
// everything except note edits and AI-tag generation that means re-fetching
// the whole collection (refreshNotes/refreshFolders/refreshTags), and the
// refresh is gated on the mutation having succeeded — a rejected call leaves
// the cache untouched and returns the error.
//
// All methods are safe for concurrent use; the cache is only ever mutated
// here, never by callers.
type EntityStore struct {
	c       *Client
	session *Session

	mu             sync.Mutex
	notes          []types.Note
	folders        []types.Folder
	tags           []types.Tag
	selectedFolder *int
}

// NewEntityStore builds a store bound to s. Logging out resets it.
func NewEntityStore(c *Client, s *Session) *EntityStore {
	st := &EntityStore{c: c, session: s}
	s.subscribeReset(st.Reset)
	return st
}

// Reset drops every cached collection and the folder selection.
func (st *EntityStore) Reset() {
	st.mu.Lock()
	st.notes, st.folders, st.tags, st.selectedFolder = nil, nil, nil, nil
	st.mu.Unlock()
}

// ------------------------------
// Accessors
// ------------------------------

// Notes returns a copy of the cached note collection.
func (st *EntityStore) Notes() []Note {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Note, len(st.notes))
	copy(out, st.notes)
	return out
}

// Folders returns a copy of the cached folder collection.
func (st *EntityStore) Folders() []Folder {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Folder, len(st.folders))
	copy(out, st.folders)
	return out
}

// Tags returns a copy of the cached tag collection.
func (st *EntityStore) Tags() []Tag {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Tag, len(st.tags))
	copy(out, st.tags)
	return out
}

// NoteByID returns the cached note with the given id.
func (st *EntityStore) NoteByID(id int) (Note, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, n := range st.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// SelectedFolder returns the active folder filter, if any.
func (st *EntityStore) SelectedFolder() (int, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.selectedFolder == nil {
		return 0, false
	}
	return *st.selectedFolder, true
}

// SelectFolder sets the folder filter applied to the visible note list.
func (st *EntityStore) SelectFolder(id int) {
	st.mu.Lock()
	st.selectedFolder = &id
	st.mu.Unlock()
}

// ClearFolderSelection removes the folder filter.
func (st *EntityStore) ClearFolderSelection() {
	st.mu.Lock()
	st.selectedFolder = nil
	st.mu.Unlock()
}

// ------------------------------
// Reconciliation
// ------------------------------

// RefreshNotes replaces the cached note collection with the service's.
func (st *EntityStore) RefreshNotes(ctx context.Context) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	notes, err := st.c.ListNotes(ctx, user)
	if err != nil {
		return err
	}
	st.mu.Lock()
	st.notes = notes
	st.mu.Unlock()
	return nil
}

// RefreshFolders replaces the cached folder collection with the service's.
func (st *EntityStore) RefreshFolders(ctx context.Context) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	folders, err := st.c.ListFolders(ctx, user)
	if err != nil {
		return err
	}
	st.mu.Lock()
	st.folders = folders
	st.mu.Unlock()
	return nil
}

// RefreshTags replaces the cached tag collection with the service's.
func (st *EntityStore) RefreshTags(ctx context.Context) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	tags, err := st.c.ListTags(ctx, user)
	if err != nil {
		return err
	}
	st.mu.Lock()
	st.tags = tags
	st.mu.Unlock()
	return nil
}

// ------------------------------
// Note mutations
// ------------------------------

// CreateNote posts a new note and, on success, re-fetches the collection.
// The created note is returned so the UI can clear its compose inputs.
func (st *EntityStore) CreateNote(ctx context.Context, title, content string, folderID *int) (*Note, error) {
	user, err := st.session.require()
	if err != nil {
		return nil, err
	}
	note, err := st.c.CreateNote(ctx, CreateNoteRequest{
		Title:    title,
		Content:  content,
		Username: user,
		FolderID: folderID,
	})
	if err != nil {
		return nil, err
	}
	if err := st.RefreshNotes(ctx); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note and, on success, re-fetches the collection. A
// rejected delete is reported to the caller and leaves the cache untouched.
func (st *EntityStore) DeleteNote(ctx context.Context, id int) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	if err := st.c.DeleteNote(ctx, id, user); err != nil {
		return err
	}
	return st.RefreshNotes(ctx)
}

// SaveNoteEdit replaces a note's title and content. Unlike the other
// mutations this one does not re-fetch: the draft values are applied to the
// cached note directly, taking only updated_at from the response.
func (st *EntityStore) SaveNoteEdit(ctx context.Context, id int, title, content string) (*Note, error) {
	user, err := st.session.require()
	if err != nil {
		return nil, err
	}
	cached, ok := st.NoteByID(id)
	if !ok {
		return nil, fmt.Errorf("note %d is not in the cache", id)
	}
	resp, err := st.c.UpdateNote(ctx, id, UpdateNoteRequest{
		Title:    title,
		Content:  content,
		Username: user,
		FolderID: cached.FolderID,
	})
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.notes {
		if st.notes[i].ID == id {
			st.notes[i].Title = title
			st.notes[i].Content = content
			st.notes[i].UpdatedAt = resp.UpdatedAt
			updated := st.notes[i]
			return &updated, nil
		}
	}
	// The note vanished from the cache between the lookup and the merge;
	// surface the draft values anyway.
	updated := cached
	updated.Title, updated.Content, updated.UpdatedAt = title, content, resp.UpdatedAt
	return &updated, nil
}

// ------------------------------
// Folder mutations
// ------------------------------

// CreateFolder creates a folder and, on success, re-fetches the collection.
func (st *EntityStore) CreateFolder(ctx context.Context, name, color string, parentID *int) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	if _, err := st.c.CreateFolder(ctx, user, CreateFolderRequest{Name: name, Color: color, ParentID: parentID}); err != nil {
		return err
	}
	return st.RefreshFolders(ctx)
}

// UpdateFolder replaces a folder and, on success, re-fetches the collection.
func (st *EntityStore) UpdateFolder(ctx context.Context, id int, name, color string, parentID *int) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	if _, err := st.c.UpdateFolder(ctx, user, id, UpdateFolderRequest{Name: name, Color: color, ParentID: parentID}); err != nil {
		return err
	}
	return st.RefreshFolders(ctx)
}

// DeleteFolder removes a folder. The service moves its notes to the root, so
// both collections are re-fetched; deleting the selected folder clears the
// selection.
func (st *EntityStore) DeleteFolder(ctx context.Context, id int) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	if err := st.c.DeleteFolder(ctx, user, id); err != nil {
		return err
	}

	st.mu.Lock()
	if st.selectedFolder != nil && *st.selectedFolder == id {
		st.selectedFolder = nil
	}
	st.mu.Unlock()

	if err := st.RefreshFolders(ctx); err != nil {
		return err
	}
	return st.RefreshNotes(ctx)
}

// FolderNotes fetches the notes inside one folder without replacing the
// cached collection.
func (st *EntityStore) FolderNotes(ctx context.Context, folderID int) ([]Note, error) {
	user, err := st.session.require()
	if err != nil {
		return nil, err
	}
	return st.c.FolderNotes(ctx, user, folderID)
}

// FolderTree fetches the nested folder tree. Selection stays flat; the tree
// is display-only.
func (st *EntityStore) FolderTree(ctx context.Context) ([]FolderNode, error) {
	user, err := st.session.require()
	if err != nil {
		return nil, err
	}
	return st.c.FolderTree(ctx, user)
}

// ------------------------------
// Tag mutations
// ------------------------------

// CreateTag creates a tag and, on success, re-fetches the tag collection.
func (st *EntityStore) CreateTag(ctx context.Context, name, color string) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	if _, err := st.c.CreateTag(ctx, user, CreateTagRequest{Name: name, Color: color}); err != nil {
		return err
	}
	return st.RefreshTags(ctx)
}

// AddTagsToNote attaches tags by name and, on success, re-fetches the note
// collection so every surface (including search-result staleness) is
// consistent.
func (st *EntityStore) AddTagsToNote(ctx context.Context, id int, names []string) error {
	user, err := st.session.require()
	if err != nil {
		return err
	}
	if err := st.c.AddTagsToNote(ctx, user, id, names); err != nil {
		return err
	}
	return st.RefreshNotes(ctx)
}

// GenerateAutoTags asks the service to tag the note and re-fetches notes on
// success; the endpoint only acknowledges, it does not return the tags.
func (st *EntityStore) GenerateAutoTags(ctx context.Context, id int) (string, error) {
	if _, err := st.session.require(); err != nil {
		return "", err
	}
	mr, err := st.c.GenerateAutoTags(ctx, id)
	if err != nil {
		return "", err
	}
	if err := st.RefreshNotes(ctx); err != nil {
		return "", err
	}
	return mr.Message, nil
}

// GenerateAITags regenerates the note's tags and patches only that note in
// the cache — the one reconciliation that deliberately avoids a full
// re-fetch.
func (st *EntityStore) GenerateAITags(ctx context.Context, id int) ([]string, error) {
	if _, err := st.session.require(); err != nil {
		return nil, err
	}
	tr, err := st.c.GenerateAITags(ctx, id)
	if err != nil {
		return nil, err
	}
	st.patchNoteTags(id, tr.Tags)
	return tr.Tags, nil
}

// patchNoteTags replaces one cached note's tag list in place.
func (st *EntityStore) patchNoteTags(id int, tags []string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i := range st.notes {
		if st.notes[i].ID == id {
			st.notes[i].Tags = tags
			return
		}
	}
}
