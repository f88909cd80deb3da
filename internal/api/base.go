// Package api holds one free function per notes-service endpoint. Every
// function follows the same shape: check the context, validate inputs, issue
// a single HTTP request, and classify any failure via apierr so callers can
// distinguish transport faults from explicit rejections.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ainotes/ainotes-go/internal/apierr"
)

// newJSONRequest builds a request carrying in as a JSON body. in may be nil
// for bodyless requests.
func newJSONRequest(ctx context.Context, method, url string, in any) (*http.Request, error) {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and decodes a JSON body into out (skipped when out is nil).
// A status other than want becomes a Rejected error carrying the `{detail}`
// body; a failed round trip or an undecodable body becomes a Transport error.
func do(httpClient *http.Client, req *http.Request, want int, op string, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return apierr.Network(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != want {
		return apierr.FromResponse(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierr.Network(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
