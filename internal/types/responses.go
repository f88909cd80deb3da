package types

import "time"

// ------------------------------
// Response Types
// ------------------------------

// MessageResponse is the generic `{message}` acknowledgment many mutating
// endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}

// ChangePasswordResponse carries the service's verdict. The endpoint answers
// HTTP 200 even when the old password is wrong; MsgType distinguishes the two
// outcomes.
type ChangePasswordResponse struct {
	Msg     string `json:"msg"`
	MsgType string `json:"msgType"`
}

// UpdateNoteResponse acknowledges a note edit. Only UpdatedAt is merged into
// the local cache; title/content come from the caller's draft.
type UpdateNoteResponse struct {
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SearchResponse wraps the /search/{user} result.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Query   string         `json:"query"`
	Count   int            `json:"count"`
}

// SummaryResponse wraps /summarize/.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// KeywordsResponse wraps /extract_keywords/.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// AITagsResponse wraps /notes/{id}/ai_tags. Tags is the note's full
// replacement tag list, not a delta.
type AITagsResponse struct {
	Tags []string `json:"tags"`
}

// TranscriptionResponse wraps /asr/.
type TranscriptionResponse struct {
	Text string `json:"text"`
}
