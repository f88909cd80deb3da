// Package client is a Go SDK for the AI Notes service. It wraps the service's
// JSON/HTTP endpoints and provides the stateful pieces a front end needs:
// a session gate, an entity store with re-fetch reconciliation, a debounced
// search controller, a per-note AI task registry, a selection/edit state
// machine, and the split-pane drag math.
package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ainotes/ainotes-go/internal/api"
	"github.com/ainotes/ainotes-go/internal/job"
	"github.com/ainotes/ainotes-go/internal/taskqueue"
	"github.com/ainotes/ainotes-go/internal/types"
)

// Client is the low-level handle to the notes service. Higher-level state
// (Session, EntityStore, ...) is built on top of it; Client itself holds no
// user state beyond the HTTP client and the async executor.
type Client struct {
	baseURL string
	http    *http.Client
	exec    executor

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the service at baseURL.
// Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	// Wrap the transport so every request carries a correlation id.
	c.wrapTransportWithRequestID()

	return c
}

// wrapTransportWithRequestID wraps the HTTP client's transport to stamp an
// X-Request-Id header on every outgoing request.
func (c *Client) wrapTransportWithRequestID() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &requestIDTransport{base: baseTransport}
}

// requestIDTransport wraps an http.RoundTripper to add a per-request
// correlation id, which the debug transport and server logs can join on.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	return t.base.RoundTrip(cloned)
}

// Close stops the background executor (if any). Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// AwaitTasks blocks until all previously submitted async tasks for the given
// key have been executed by the internal executor. It works by submitting a
// no-op job and waiting for it to run, thereby guaranteeing FIFO ordering has
// flushed. TaskRegistry keys are "noteID/kind".
func (c *Client) AwaitTasks(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	j := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, key, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the taskqueue executor from TQ_* env
// variables, falling back to defaults when the environment is unusable.
// MaxAttempts defaults to 1: the client never retries on its own.
func newDefaultExecutor() *taskqueue.Executor {
	cfg, err := taskqueue.LoadConfig()
	if err != nil {
		cfg = taskqueue.Config{}
	}
	return taskqueue.New(cfg)
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, password string) (*MessageResponse, error) {
	return api.Register(ctx, c.http, c.baseURL, types.Credentials{Username: username, Password: password})
}

// Login verifies credentials. Most callers want Session.Login, which also
// records the signed-in identity.
func (c *Client) Login(ctx context.Context, username, password string) (*MessageResponse, error) {
	return api.Login(ctx, c.http, c.baseURL, types.Credentials{Username: username, Password: password})
}

// ChangePassword rotates a password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) (*ChangePasswordResponse, error) {
	return api.ChangePassword(ctx, c.http, c.baseURL, req)
}

// --------------------------------------------------------------------
// Note operations - delegated to internal/api
// --------------------------------------------------------------------

// ListNotes retrieves the user's complete note collection.
func (c *Client) ListNotes(ctx context.Context, username string) ([]Note, error) {
	return api.ListNotes(ctx, c.http, c.baseURL, username)
}

// CreateNote creates a new note.
func (c *Client) CreateNote(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	return api.CreateNote(ctx, c.http, c.baseURL, req)
}

// UpdateNote replaces a note's title/content/folder.
func (c *Client) UpdateNote(ctx context.Context, noteID int, req UpdateNoteRequest) (*UpdateNoteResponse, error) {
	return api.UpdateNote(ctx, c.http, c.baseURL, noteID, req)
}

// DeleteNote removes a note owned by username.
func (c *Client) DeleteNote(ctx context.Context, noteID int, username string) error {
	return api.DeleteNote(ctx, c.http, c.baseURL, noteID, username)
}

// --------------------------------------------------------------------
// Folder operations - delegated to internal/api
// --------------------------------------------------------------------

// ListFolders retrieves the user's folders.
func (c *Client) ListFolders(ctx context.Context, username string) ([]Folder, error) {
	return api.ListFolders(ctx, c.http, c.baseURL, username)
}

// FolderTree retrieves the user's folders as a nested tree.
func (c *Client) FolderTree(ctx context.Context, username string) ([]FolderNode, error) {
	return api.FolderTree(ctx, c.http, c.baseURL, username)
}

// CreateFolder creates a folder.
func (c *Client) CreateFolder(ctx context.Context, username string, req CreateFolderRequest) (*Folder, error) {
	return api.CreateFolder(ctx, c.http, c.baseURL, username, req)
}

// UpdateFolder replaces a folder's name/color/parent.
func (c *Client) UpdateFolder(ctx context.Context, username string, folderID int, req UpdateFolderRequest) (*Folder, error) {
	return api.UpdateFolder(ctx, c.http, c.baseURL, username, folderID, req)
}

// DeleteFolder removes a folder; its notes move to the root on the service.
func (c *Client) DeleteFolder(ctx context.Context, username string, folderID int) error {
	return api.DeleteFolder(ctx, c.http, c.baseURL, username, folderID)
}

// FolderNotes retrieves the notes inside one folder.
func (c *Client) FolderNotes(ctx context.Context, username string, folderID int) ([]Note, error) {
	return api.FolderNotes(ctx, c.http, c.baseURL, username, folderID)
}

// --------------------------------------------------------------------
// Tag operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTags retrieves the user's tags.
func (c *Client) ListTags(ctx context.Context, username string) ([]Tag, error) {
	return api.ListTags(ctx, c.http, c.baseURL, username)
}

// CreateTag creates a tag; creating an existing name is a no-op on the
// service side.
func (c *Client) CreateTag(ctx context.Context, username string, req CreateTagRequest) (*Tag, error) {
	return api.CreateTag(ctx, c.http, c.baseURL, username, req)
}

// AddTagsToNote attaches tags to a note by name.
func (c *Client) AddTagsToNote(ctx context.Context, username string, noteID int, names []string) error {
	return api.AddTagsToNote(ctx, c.http, c.baseURL, username, noteID, names)
}

// --------------------------------------------------------------------
// Search - delegated to internal/api
// --------------------------------------------------------------------

// Search runs a full-text query scoped to username. Most callers want a
// SearchController, which debounces and discards stale responses.
func (c *Client) Search(ctx context.Context, username, query string) (*SearchResponse, error) {
	return api.Search(ctx, c.http, c.baseURL, username, query)
}

// --------------------------------------------------------------------
// AI operations - delegated to internal/api (callers usually go through a
// TaskRegistry so pending/failed state is tracked per note)
// --------------------------------------------------------------------

// Summarize returns a service-generated summary of content.
func (c *Client) Summarize(ctx context.Context, req SummarizeRequest) (*SummaryResponse, error) {
	return api.Summarize(ctx, c.http, c.baseURL, req)
}

// ExtractKeywords returns the top keywords of content.
func (c *Client) ExtractKeywords(ctx context.Context, req KeywordsRequest) (*KeywordsResponse, error) {
	return api.ExtractKeywords(ctx, c.http, c.baseURL, req)
}

// GenerateAutoTags derives and attaches tags for a note server-side.
func (c *Client) GenerateAutoTags(ctx context.Context, noteID int) (*MessageResponse, error) {
	return api.GenerateAutoTags(ctx, c.http, c.baseURL, noteID)
}

// GenerateAITags regenerates a note's tags and returns the replacement list.
func (c *Client) GenerateAITags(ctx context.Context, noteID int) (*AITagsResponse, error) {
	return api.GenerateAITags(ctx, c.http, c.baseURL, noteID)
}

// Transcribe uploads audio and returns the recognized text, typically fed
// into the compose-content draft.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (*TranscriptionResponse, error) {
	return api.Transcribe(ctx, c.http, c.baseURL, filename, audio)
}
