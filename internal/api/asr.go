package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ainotes/ainotes-go/internal/types"
)

// Transcribe uploads an audio file as multipart form data and returns the
// recognized text.
func Transcribe(ctx context.Context, httpClient *http.Client, baseURL, filename string, audio io.Reader) (*types.TranscriptionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/asr/", baseURL), &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var tr types.TranscriptionResponse
	if err := do(httpClient, req, http.StatusOK, "transcribe", &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}
