package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSearchDebounce is how long the query must stay unchanged before a
// search request is issued.
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchController debounces a text query, issues search requests, and holds
// the latest result set.
//
// Every issued request carries a generation token; a response whose token is
// no longer the latest is discarded, so out-of-order completions can never
// show results for a query the user has already replaced. An empty or
// whitespace-only query clears the results synchronously, without a network
// call, and cancels any pending debounce.
type SearchController struct {
	store    *EntityStore
	debounce time.Duration
	onChange func()

	mu      sync.Mutex
	query   string
	results []SearchResult
	pending bool
	timer   *time.Timer
	gen     string // token of the latest issued (or about-to-issue) request
}

// SearchOption configures a SearchController during construction.
type SearchOption func(*SearchController)

// WithSearchDebounce overrides the debounce interval. Useful in tests.
func WithSearchDebounce(d time.Duration) SearchOption {
	return func(sc *SearchController) { sc.debounce = d }
}

// WithSearchNotify registers fn to run after every state transition
// (pending, results replaced, results cleared). UIs re-render from it.
func WithSearchNotify(fn func()) SearchOption {
	return func(sc *SearchController) { sc.onChange = fn }
}

// NewSearchController builds a controller over st's client and session.
// Logging out clears it.
func NewSearchController(st *EntityStore, opts ...SearchOption) *SearchController {
	sc := &SearchController{store: st, debounce: DefaultSearchDebounce}
	for _, opt := range opts {
		opt(sc)
	}
	st.session.subscribeReset(sc.reset)
	return sc
}

// SetQuery records every keystroke. Each call resets the debounce timer; the
// request fires only after the query has been stable for the debounce
// interval.
func (sc *SearchController) SetQuery(ctx context.Context, query string) {
	sc.mu.Lock()
	sc.query = query
	if sc.timer != nil {
		sc.timer.Stop()
		sc.timer = nil
	}
	if strings.TrimSpace(query) == "" {
		// Invalidating the token makes any in-flight response stale.
		sc.gen = ""
		sc.results = nil
		sc.pending = false
		sc.mu.Unlock()
		sc.notify()
		return
	}
	sc.timer = time.AfterFunc(sc.debounce, func() { sc.run(ctx, query) })
	sc.mu.Unlock()
}

// run issues one search request for query and installs the response unless a
// newer query has superseded it.
func (sc *SearchController) run(ctx context.Context, query string) {
	user, err := sc.store.session.require()
	if err != nil {
		return
	}

	token := uuid.NewString()
	sc.mu.Lock()
	sc.gen = token
	sc.pending = true
	sc.mu.Unlock()
	sc.notify()

	searchesTotal.Inc()
	resp, err := sc.store.c.Search(ctx, user, query)

	sc.mu.Lock()
	if sc.gen != token {
		sc.mu.Unlock()
		searchesStaleTotal.Inc()
		return
	}
	sc.pending = false
	if err != nil {
		sc.results = nil
	} else {
		sc.results = resp.Results
	}
	sc.mu.Unlock()
	sc.notify()
}

// Query returns the current query text.
func (sc *SearchController) Query() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.query
}

// Pending reports whether a search request is in flight.
func (sc *SearchController) Pending() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.pending
}

// Results returns a copy of the latest result set, best match first.
func (sc *SearchController) Results() []SearchResult {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	out := make([]SearchResult, len(sc.results))
	copy(out, sc.results)
	return out
}

// Visible returns the note list the UI should show: the search results while
// a query is active, the full cached collection otherwise. The store's folder
// selection filters whichever list is active by folder-id equality.
func (sc *SearchController) Visible() []Note {
	sc.mu.Lock()
	query := sc.query
	results := sc.results
	var notes []Note
	if strings.TrimSpace(query) != "" {
		notes = make([]Note, 0, len(results))
		for _, r := range results {
			notes = append(notes, r.Note)
		}
	}
	sc.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		notes = sc.store.Notes()
	}

	folderID, ok := sc.store.SelectedFolder()
	if !ok {
		return notes
	}
	filtered := notes[:0]
	for _, n := range notes {
		if n.FolderID != nil && *n.FolderID == folderID {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

// reset clears query, results and any pending debounce.
func (sc *SearchController) reset() {
	sc.mu.Lock()
	if sc.timer != nil {
		sc.timer.Stop()
		sc.timer = nil
	}
	sc.query, sc.gen = "", ""
	sc.results = nil
	sc.pending = false
	sc.mu.Unlock()
	sc.notify()
}

func (sc *SearchController) notify() {
	if sc.onChange != nil {
		sc.onChange()
	}
}

// HighlightSpans returns the [start, end) byte offsets of case-insensitive
// occurrences of query in text, treating query as a literal string — never as
// a pattern, so metacharacters like "a+b" match themselves.
func HighlightSpans(text, query string) [][2]int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		// Case folding changed byte offsets somewhere; fall back to scanning
		// the original text so spans stay valid, at the cost of matching
		// case-sensitively.
		lower = text
	}

	var spans [][2]int
	for from := 0; ; {
		i := strings.Index(lower[from:], q)
		if i < 0 {
			break
		}
		start := from + i
		spans = append(spans, [2]int{start, start + len(q)})
		from = start + len(q)
	}
	return spans
}
