package client

import "github.com/ainotes/ainotes-go/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Note         = types.Note
	Folder       = types.Folder
	FolderNode   = types.FolderNode
	Tag          = types.Tag
	SearchResult = types.SearchResult

	// Requests
	Credentials           = types.Credentials
	ChangePasswordRequest = types.ChangePasswordRequest
	CreateNoteRequest     = types.CreateNoteRequest
	UpdateNoteRequest     = types.UpdateNoteRequest
	CreateFolderRequest   = types.CreateFolderRequest
	UpdateFolderRequest   = types.UpdateFolderRequest
	CreateTagRequest      = types.CreateTagRequest
	AddTagsRequest        = types.AddTagsRequest
	SummarizeRequest      = types.SummarizeRequest
	KeywordsRequest       = types.KeywordsRequest

	// Responses
	MessageResponse        = types.MessageResponse
	ChangePasswordResponse = types.ChangePasswordResponse
	UpdateNoteResponse     = types.UpdateNoteResponse
	SearchResponse         = types.SearchResponse
	SummaryResponse        = types.SummaryResponse
	KeywordsResponse       = types.KeywordsResponse
	AITagsResponse         = types.AITagsResponse
	TranscriptionResponse  = types.TranscriptionResponse
)

// Errors re-exported in errors.go
