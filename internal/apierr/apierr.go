// Package apierr classifies failures from the notes service so callers can
// tell a transport fault from an explicit rejection, and can surface the
// service's detail message verbatim when one is present.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Category separates the two ways a call can fail.
type Category int

const (
	// Transport means the request never completed: connection failure,
	// timeout, or an unreadable/undecodable response.
	Transport Category = iota

	// Rejected means the service answered with a non-2xx status, usually
	// carrying a structured `{detail}` body.
	Rejected
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case Transport:
		return "Transport"
	case Rejected:
		return "Rejected"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error carries the classification alongside the underlying cause.
type Error struct {
	Category   Category
	StatusCode int    // HTTP status (0 for transport failures)
	Detail     string // service-provided detail, empty when absent
	Op         string // short operation name, e.g. "create note"
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0 && e.Detail != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Detail)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Err }

// maxDetailBody bounds how much of an error body is read for `{detail}`.
const maxDetailBody = 4096

// FromResponse builds a Rejected error from a non-2xx response, extracting
// the `{detail}` body when the service supplies one. The change_password
// endpoint is the one place a rejection hides behind HTTP 200; callers handle
// that separately.
func FromResponse(op string, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxDetailBody))
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &payload)
	return &Error{
		Category:   Rejected,
		StatusCode: resp.StatusCode,
		Detail:     payload.Detail,
		Op:         op,
		Err:        fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode),
	}
}

// Rejection builds a Rejected error with an explicit detail message, for the
// endpoints that signal failure inside a 2xx body.
func Rejection(op string, statusCode int, detail string) *Error {
	return &Error{
		Category:   Rejected,
		StatusCode: statusCode,
		Detail:     detail,
		Op:         op,
		Err:        fmt.Errorf("%s: rejected by service", op),
	}
}

// Network builds a Transport error for a request that never completed.
func Network(op string, err error) *Error {
	return &Error{
		Category: Transport,
		Op:       op,
		Err:      err,
	}
}

// IsRejected reports whether err is an explicit service rejection.
func IsRejected(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Rejected
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Category == Transport
}

// Detail returns the service-provided detail message, or "" when err carries
// none.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}
	return ""
}

// Message returns the service detail when available, else fallback. This is
// the single place the "surface detail verbatim, else a generic message"
// policy lives.
func Message(err error, fallback string) string {
	if d := Detail(err); d != "" {
		return d
	}
	return fallback
}

// Irrecoverable reports whether err should not be retried: 4xx rejections
// other than 408/429. Transport faults and 5xx answers may be transient.
func Irrecoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) || e.Category != Rejected {
		return false
	}
	if e.StatusCode < 400 || e.StatusCode >= 500 {
		return false
	}
	switch e.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	default:
		return true
	}
}
