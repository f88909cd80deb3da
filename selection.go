package client

import (
	"context"
	"errors"
	"sync"
)

// SelectionPhase is where the "what note is open" state machine sits.
type SelectionPhase int

const (
	NoSelection SelectionPhase = iota
	Viewing
	Editing
)

// String returns a human-readable representation of the phase.
func (p SelectionPhase) String() string {
	switch p {
	case NoSelection:
		return "NoSelection"
	case Viewing:
		return "Viewing"
	case Editing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// Draft is the ephemeral edit buffer that shadows the selected note while in
// edit mode. It is discarded on cancel and promoted to the note on save.
type Draft struct {
	Title   string
	Content string
}

// Illegal-transition errors.
var (
	ErrNoSelection = errors.New("no note selected")
	ErrNotEditing  = errors.New("not in edit mode")
	ErrNotViewing  = errors.New("not viewing a note")
)

// Selection is the state machine for the open note and its edit state.
// Keeping selection, edit mode and draft in one machine makes the illegal
// combinations (a draft without an edit, an edit without a note)
// unrepresentable.
type Selection struct {
	store *EntityStore

	mu       sync.Mutex
	phase    SelectionPhase
	note     Note
	draft    Draft
	onChange func()
}

// SelectionOption configures a Selection during construction.
type SelectionOption func(*Selection)

// WithSelectionNotify registers fn to run after every transition.
func WithSelectionNotify(fn func()) SelectionOption {
	return func(s *Selection) { s.onChange = fn }
}

// NewSelection builds the machine over st. Logging out clears it.
func NewSelection(st *EntityStore, opts ...SelectionOption) *Selection {
	s := &Selection{store: st}
	for _, opt := range opts {
		opt(s)
	}
	st.session.subscribeReset(s.Clear)
	return s
}

// Phase returns the machine's current phase.
func (s *Selection) Phase() SelectionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Note returns the selected note while Viewing or Editing.
func (s *Selection) Note() (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.note, s.phase != NoSelection
}

// Draft returns the edit buffer while Editing.
func (s *Selection) Draft() (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, s.phase == Editing
}

// Select opens note for viewing from any state. An in-progress edit of a
// different note is abandoned, as is its draft. Detail-pane AI output needs
// no clearing here: task state is keyed by note id, so the new selection's
// entries start Idle.
func (s *Selection) Select(note Note) {
	s.mu.Lock()
	s.phase = Viewing
	s.note = note
	s.draft = Draft{}
	s.mu.Unlock()
	s.notify()
}

// Clear returns to NoSelection from any state (used when opening the
// compose-new-note surface).
func (s *Selection) Clear() {
	s.mu.Lock()
	s.phase = NoSelection
	s.note = Note{}
	s.draft = Draft{}
	s.mu.Unlock()
	s.notify()
}

// StartEdit moves Viewing → Editing, seeding the draft from the note.
func (s *Selection) StartEdit() error {
	s.mu.Lock()
	if s.phase != Viewing {
		s.mu.Unlock()
		if s.phase == NoSelection {
			return ErrNoSelection
		}
		return ErrNotViewing
	}
	s.phase = Editing
	s.draft = Draft{Title: s.note.Title, Content: s.note.Content}
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetDraft updates the edit buffer. Only legal while Editing.
func (s *Selection) SetDraft(title, content string) error {
	s.mu.Lock()
	if s.phase != Editing {
		s.mu.Unlock()
		return ErrNotEditing
	}
	s.draft = Draft{Title: title, Content: content}
	s.mu.Unlock()
	s.notify()
	return nil
}

// SaveEdit commits the draft through the store. On success the machine moves
// to Viewing the updated note; on failure it stays in Editing with the draft
// intact so the user can retry.
func (s *Selection) SaveEdit(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != Editing {
		s.mu.Unlock()
		return ErrNotEditing
	}
	id := s.note.ID
	draft := s.draft
	s.mu.Unlock()

	updated, err := s.store.SaveNoteEdit(ctx, id, draft.Title, draft.Content)
	if err != nil {
		return err
	}

	s.mu.Lock()
	// Only adopt the result if the user is still editing this note.
	if s.phase == Editing && s.note.ID == id {
		s.phase = Viewing
		s.note = *updated
		s.draft = Draft{}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// CancelEdit moves Editing → Viewing, discarding the draft.
func (s *Selection) CancelEdit() error {
	s.mu.Lock()
	if s.phase != Editing {
		s.mu.Unlock()
		return ErrNotEditing
	}
	s.phase = Viewing
	s.draft = Draft{}
	s.mu.Unlock()
	s.notify()
	return nil
}

// DeleteFromEdit deletes the note being edited after confirm agrees, then
// clears the selection. A declined confirmation is a no-op.
func (s *Selection) DeleteFromEdit(ctx context.Context, confirm func() bool) error {
	s.mu.Lock()
	if s.phase != Editing {
		s.mu.Unlock()
		return ErrNotEditing
	}
	id := s.note.ID
	s.mu.Unlock()

	if confirm != nil && !confirm() {
		return nil
	}
	if err := s.store.DeleteNote(ctx, id); err != nil {
		return err
	}
	s.Clear()
	return nil
}

func (s *Selection) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
