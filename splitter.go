package client

import "sync"

// Pane layout bounds. MinPaneWidth is the single authoritative minimum: the
// drag handler and the surrounding container must both clamp to it.
const (
	MinPaneWidth     = 300.0
	DefaultPaneWidth = 350.0
)

// Splitter converts a press-move-release pointer sequence into a clamped
// pane width. It knows nothing about notes; it is pure coordinate math.
// Move events apply continuously — this is a synchronous, high-frequency
// path with no debounce.
type Splitter struct {
	mu         sync.Mutex
	width      float64
	minWidth   float64
	dragging   bool
	startX     float64
	startWidth float64
}

// NewSplitter returns a splitter at the default width.
func NewSplitter() *Splitter {
	return &Splitter{width: DefaultPaneWidth, minWidth: MinPaneWidth}
}

// Width returns the current pane width.
func (sp *Splitter) Width() float64 {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.width
}

// Dragging reports whether a drag is in progress.
func (sp *Splitter) Dragging() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.dragging
}

// Press starts a drag, capturing the pointer origin and the current width.
// The caller attaches its move/release listeners for the duration of the
// drag only.
func (sp *Splitter) Press(x float64) {
	sp.mu.Lock()
	sp.dragging = true
	sp.startX = x
	sp.startWidth = sp.width
	sp.mu.Unlock()
}

// Move applies the pointer position and returns the resulting width,
// clamped to the minimum. Ignored unless a drag is in progress.
func (sp *Splitter) Move(x float64) float64 {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if !sp.dragging {
		return sp.width
	}
	w := sp.startWidth + (x - sp.startX)
	if w < sp.minWidth {
		w = sp.minWidth
	}
	sp.width = w
	return w
}

// Release ends the drag. The caller removes its listeners and restores the
// default cursor.
func (sp *Splitter) Release() {
	sp.mu.Lock()
	sp.dragging = false
	sp.mu.Unlock()
}
