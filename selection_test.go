package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func newSelectionFixture(t *testing.T, handler http.Handler) (*Selection, *EntityStore, *Session) {
	t.Helper()
	hs := httptest.NewServer(handler)
	t.Cleanup(hs.Close)
	_, s, st := newSignedInStack(t, hs.URL)
	return NewSelection(st), st, s
}

func TestSelection_SelectAndClear(t *testing.T) {
	t.Parallel()
	sel, _, _ := newSelectionFixture(t, http.NewServeMux())

	if sel.Phase() != NoSelection {
		t.Fatalf("fresh machine: %v", sel.Phase())
	}
	sel.Select(Note{ID: 1, Title: "First"})
	if sel.Phase() != Viewing {
		t.Fatalf("after select: %v", sel.Phase())
	}
	if n, ok := sel.Note(); !ok || n.ID != 1 {
		t.Fatalf("note not held: %+v %v", n, ok)
	}
	sel.Clear()
	if sel.Phase() != NoSelection {
		t.Fatalf("after clear: %v", sel.Phase())
	}
	if _, ok := sel.Note(); ok {
		t.Fatal("cleared machine must not expose a note")
	}
}

func TestSelection_StartEditSeedsDraft(t *testing.T) {
	t.Parallel()
	sel, _, _ := newSelectionFixture(t, http.NewServeMux())

	if err := sel.StartEdit(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("edit without selection: %v", err)
	}

	sel.Select(Note{ID: 1, Title: "T", Content: "C"})
	if err := sel.StartEdit(); err != nil {
		t.Fatalf("start edit: %v", err)
	}
	d, ok := sel.Draft()
	if !ok || d.Title != "T" || d.Content != "C" {
		t.Fatalf("draft not seeded: %+v %v", d, ok)
	}

	// A second StartEdit is illegal: already editing.
	if err := sel.StartEdit(); !errors.Is(err, ErrNotViewing) {
		t.Fatalf("double edit: %v", err)
	}
}

func TestSelection_SetDraftOnlyWhileEditing(t *testing.T) {
	t.Parallel()
	sel, _, _ := newSelectionFixture(t, http.NewServeMux())

	if err := sel.SetDraft("x", "y"); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("set draft while idle: %v", err)
	}
	sel.Select(Note{ID: 1, Title: "T", Content: "C"})
	if err := sel.SetDraft("x", "y"); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("set draft while viewing: %v", err)
	}
	_ = sel.StartEdit()
	if err := sel.SetDraft("x", "y"); err != nil {
		t.Fatalf("set draft: %v", err)
	}
	if d, _ := sel.Draft(); d.Title != "x" || d.Content != "y" {
		t.Fatalf("draft not updated: %+v", d)
	}
}

func TestSelection_CancelDiscardsDraft(t *testing.T) {
	t.Parallel()
	sel, _, _ := newSelectionFixture(t, http.NewServeMux())

	if err := sel.CancelEdit(); !errors.Is(err, ErrNotEditing) {
		t.Fatalf("cancel while idle: %v", err)
	}
	sel.Select(Note{ID: 1, Title: "T", Content: "C"})
	_ = sel.StartEdit()
	_ = sel.SetDraft("changed", "changed")

	if err := sel.CancelEdit(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if sel.Phase() != Viewing {
		t.Fatalf("after cancel: %v", sel.Phase())
	}
	if n, _ := sel.Note(); n.Title != "T" {
		t.Fatalf("cancel must leave the note untouched: %+v", n)
	}
	if _, ok := sel.Draft(); ok {
		t.Fatal("cancel must discard the draft")
	}
}

func TestSelection_SaveEditCommitsAndReturnsToViewing(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/notes/alice", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(seedNotesJSON))
	})
	mux.HandleFunc("/notes/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"updated","updated_at":"2025-06-01T12:00:00Z"}`))
	})
	sel, st, _ := newSelectionFixture(t, mux)
	if err := st.RefreshNotes(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	note, _ := st.NoteByID(1)
	sel.Select(note)
	_ = sel.StartEdit()
	_ = sel.SetDraft("New title", "New content")

	if err := sel.SaveEdit(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if sel.Phase() != Viewing {
		t.Fatalf("after save: %v", sel.Phase())
	}
	if n, _ := sel.Note(); n.Title != "New title" || n.Content != "New content" {
		t.Fatalf("updated note not adopted: %+v", n)
	}
}

func TestSelection_SaveEditFailureKeepsDraft(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/notes/alice", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(seedNotesJSON))
	})
	mux.HandleFunc("/notes/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"storage unavailable"}`))
	})
	sel, st, _ := newSelectionFixture(t, mux)
	if err := st.RefreshNotes(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	note, _ := st.NoteByID(1)
	sel.Select(note)
	_ = sel.StartEdit()
	_ = sel.SetDraft("New title", "New content")

	if err := sel.SaveEdit(context.Background()); err == nil {
		t.Fatal("expected save failure")
	}
	if sel.Phase() != Editing {
		t.Fatalf("failed save must stay in edit mode: %v", sel.Phase())
	}
	if d, ok := sel.Draft(); !ok || d.Title != "New title" {
		t.Fatalf("draft must survive a failed save: %+v %v", d, ok)
	}
}

func TestSelection_DeleteFromEdit(t *testing.T) {
	t.Parallel()
	var deletes int32
	mux := http.NewServeMux()
	mux.HandleFunc("/notes/alice", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(seedNotesJSON))
	})
	mux.HandleFunc("/notes/1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&deletes, 1)
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	})
	sel, st, _ := newSelectionFixture(t, mux)
	if err := st.RefreshNotes(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	note, _ := st.NoteByID(1)
	sel.Select(note)
	_ = sel.StartEdit()

	// Declined confirmation is a no-op.
	if err := sel.DeleteFromEdit(context.Background(), func() bool { return false }); err != nil {
		t.Fatalf("declined delete: %v", err)
	}
	if atomic.LoadInt32(&deletes) != 0 || sel.Phase() != Editing {
		t.Fatal("declined confirmation must not delete or change phase")
	}

	if err := sel.DeleteFromEdit(context.Background(), func() bool { return true }); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if atomic.LoadInt32(&deletes) != 1 {
		t.Fatalf("expected one delete call, got %d", deletes)
	}
	if sel.Phase() != NoSelection {
		t.Fatalf("after delete: %v", sel.Phase())
	}
}

func TestSelection_SelectAbandonsEdit(t *testing.T) {
	t.Parallel()
	sel, _, _ := newSelectionFixture(t, http.NewServeMux())

	sel.Select(Note{ID: 1, Title: "A"})
	_ = sel.StartEdit()
	_ = sel.SetDraft("half-typed", "draft")

	sel.Select(Note{ID: 2, Title: "B"})
	if sel.Phase() != Viewing {
		t.Fatalf("after reselect: %v", sel.Phase())
	}
	if n, _ := sel.Note(); n.ID != 2 {
		t.Fatalf("wrong note selected: %+v", n)
	}
	if _, ok := sel.Draft(); ok {
		t.Fatal("reselecting must abandon the old draft")
	}
}

func TestSelection_ResetOnLogout(t *testing.T) {
	t.Parallel()
	sel, _, s := newSelectionFixture(t, http.NewServeMux())

	sel.Select(Note{ID: 1})
	s.Logout()
	if sel.Phase() != NoSelection {
		t.Fatalf("logout must clear the selection: %v", sel.Phase())
	}
}

func TestSelection_NotifyFiresOnTransitions(t *testing.T) {
	t.Parallel()
	hs := httptest.NewServer(http.NewServeMux())
	t.Cleanup(hs.Close)
	_, _, st := newSignedInStack(t, hs.URL)

	var notifies int32
	sel := NewSelection(st, WithSelectionNotify(func() { atomic.AddInt32(&notifies, 1) }))

	sel.Select(Note{ID: 1})
	_ = sel.StartEdit()
	_ = sel.CancelEdit()
	if got := atomic.LoadInt32(&notifies); got != 3 {
		t.Fatalf("expected 3 notifications, got %d", got)
	}
}
