package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ainotes/ainotes-go/internal/apierr"
	"github.com/ainotes/ainotes-go/internal/job"
	"github.com/ainotes/ainotes-go/internal/taskqueue"
	"github.com/ainotes/ainotes-go/messages"
)

// TaskKind identifies one family of AI augmentation calls.
type TaskKind string

const (
	TaskSummary  TaskKind = "summary"
	TaskKeywords TaskKind = "keywords"
	TaskAutoTags TaskKind = "auto_tags"
	TaskAITags   TaskKind = "ai_tags"
)

// TaskPhase is the lifecycle position of one (note, kind) task.
type TaskPhase int

const (
	TaskIdle TaskPhase = iota
	TaskPending
	TaskSucceeded
	TaskFailed
)

// String returns a human-readable representation of the phase.
func (p TaskPhase) String() string {
	switch p {
	case TaskIdle:
		return "Idle"
	case TaskPending:
		return "Pending"
	case TaskSucceeded:
		return "Succeeded"
	case TaskFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// TaskState is the displayed outcome of one (note, kind) task. Payload holds
// the successful result (a summary string, a keyword or tag list, or an
// acknowledgment message); Err holds the user-facing failure text. State and
// payload are never conflated into one string.
type TaskState struct {
	Phase   TaskPhase
	Payload any
	Err     string
}

type taskKey struct {
	noteID int
	kind   TaskKind
}

// TaskRegistry tracks AI tasks per (note, kind) so concurrently running
// operations on different notes — or different kinds on the same note — never
// overwrite each other's displayed outcome. Starting a new task for a key
// immediately supersedes the displayed state of the prior one; the prior
// network call is not cancelled, and whichever call resolves last wins.
//
// A UI typically holds two registries: one for the inline list quick actions
// and one for the detail pane. Selecting a different note needs no cleanup —
// states are keyed by note id, so the new note's entries simply start Idle.
type TaskRegistry struct {
	store *EntityStore
	msgs  *messages.Catalog

	mu       sync.Mutex
	states   map[taskKey]TaskState
	onChange func()
}

// RegistryOption configures a TaskRegistry during construction.
type RegistryOption func(*TaskRegistry)

// WithTaskNotify registers fn to run after every task state transition.
func WithTaskNotify(fn func()) RegistryOption {
	return func(r *TaskRegistry) { r.onChange = fn }
}

// WithTaskMessages overrides the fallback message catalog (default "en").
func WithTaskMessages(cat *messages.Catalog) RegistryOption {
	return func(r *TaskRegistry) { r.msgs = cat }
}

// NewTaskRegistry builds a registry over st's client and session. Logging out
// resets it.
func NewTaskRegistry(st *EntityStore, opts ...RegistryOption) *TaskRegistry {
	r := &TaskRegistry{
		store:  st,
		states: make(map[taskKey]TaskState),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.msgs == nil {
		r.msgs, _ = messages.Load("en")
	}
	st.session.subscribeReset(r.reset)
	return r
}

// State returns the displayed state for (noteID, kind); Idle when the key has
// never run.
func (r *TaskRegistry) State(noteID int, kind TaskKind) TaskState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.states[taskKey{noteID, kind}]; ok {
		return s
	}
	return TaskState{Phase: TaskIdle}
}

// Run transitions (noteID, kind) to Pending synchronously, then executes fn
// on the async executor. fn's result settles the entry to Succeeded or
// Failed. fallbackKey names the catalog message shown when a failure carries
// no service detail.
func (r *TaskRegistry) Run(ctx context.Context, noteID int, kind TaskKind, fallbackKey string, fn func(context.Context) (any, error)) error {
	key := taskKey{noteID, kind}

	r.mu.Lock()
	r.states[key] = TaskState{Phase: TaskPending}
	r.mu.Unlock()
	r.notify()
	tasksStartedTotal.WithLabelValues(string(kind)).Inc()

	j := job.New(func(jobCtx context.Context) error {
		payload, err := fn(jobCtx)
		r.settle(key, payload, err, fallbackKey)
		// The settle above is the error path; the queue must not see the
		// failure or it would double-count it.
		return nil
	})

	execKey := fmt.Sprintf("%d/%s", noteID, kind)
	if err := r.store.c.exec.Submit(ctx, execKey, j); err != nil {
		if errors.Is(err, taskqueue.ErrQueueFull) {
			err = fmt.Errorf("%w: %s", ErrBackPressure, execKey)
		}
		r.settle(key, nil, err, fallbackKey)
		return err
	}
	return nil
}

// settle records the final state for key. Last writer wins by design: a
// superseded call that resolves after its replacement simply overwrites it.
func (r *TaskRegistry) settle(key taskKey, payload any, err error, fallbackKey string) {
	r.mu.Lock()
	if err != nil {
		r.states[key] = TaskState{Phase: TaskFailed, Err: apierr.Message(err, r.msgs.Get(fallbackKey))}
	} else {
		r.states[key] = TaskState{Phase: TaskSucceeded, Payload: payload}
	}
	r.mu.Unlock()
	if err != nil {
		tasksFailedTotal.WithLabelValues(string(key.kind)).Inc()
	}
	r.notify()
}

// reset drops every task state.
func (r *TaskRegistry) reset() {
	r.mu.Lock()
	r.states = make(map[taskKey]TaskState)
	r.mu.Unlock()
	r.notify()
}

func (r *TaskRegistry) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}

// ------------------------------
// Endpoint-specific runners
// ------------------------------

// Summarization defaults matching the service's own bounds.
const (
	defaultSummaryMaxLength = 150
	defaultSummaryMinLength = 30
	defaultKeywordTopN      = 5
)

// RunSummary requests a summary of note's content. The payload is the
// summary string.
func (r *TaskRegistry) RunSummary(ctx context.Context, note Note) error {
	return r.Run(ctx, note.ID, TaskSummary, "summary_failed", func(jobCtx context.Context) (any, error) {
		resp, err := r.store.c.Summarize(jobCtx, SummarizeRequest{
			Content:   note.Content,
			MaxLength: defaultSummaryMaxLength,
			MinLength: defaultSummaryMinLength,
		})
		if err != nil {
			return nil, err
		}
		return resp.Summary, nil
	})
}

// RunKeywords requests the top keywords of note's content. The payload is a
// []string.
func (r *TaskRegistry) RunKeywords(ctx context.Context, note Note) error {
	return r.Run(ctx, note.ID, TaskKeywords, "keywords_failed", func(jobCtx context.Context) (any, error) {
		resp, err := r.store.c.ExtractKeywords(jobCtx, KeywordsRequest{
			Content: note.Content,
			TopN:    defaultKeywordTopN,
		})
		if err != nil {
			return nil, err
		}
		return resp.Keywords, nil
	})
}

// RunAutoTags asks the service to tag the note. On success the store
// re-fetches the note collection, since the endpoint only acknowledges. The
// payload is the acknowledgment message.
func (r *TaskRegistry) RunAutoTags(ctx context.Context, noteID int) error {
	return r.Run(ctx, noteID, TaskAutoTags, "auto_tags_failed", func(jobCtx context.Context) (any, error) {
		msg, err := r.store.GenerateAutoTags(jobCtx, noteID)
		if err != nil {
			return nil, err
		}
		return msg, nil
	})
}

// RunAITags regenerates the note's tags. On success the store patches just
// that note's tag list, so the list view updates without a re-fetch. The
// payload is the []string of new tags.
func (r *TaskRegistry) RunAITags(ctx context.Context, noteID int) error {
	return r.Run(ctx, noteID, TaskAITags, "ai_tags_failed", func(jobCtx context.Context) (any, error) {
		tags, err := r.store.GenerateAITags(jobCtx, noteID)
		if err != nil {
			return nil, err
		}
		return tags, nil
	})
}
