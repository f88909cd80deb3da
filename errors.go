package client

import (
	"errors"

	"github.com/ainotes/ainotes-go/internal/apierr"
	"github.com/ainotes/ainotes-go/internal/taskqueue"
)

// ErrBackPressure is returned when the client's internal task queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// ErrNotSignedIn is returned by operations that require a signed-in identity.
var ErrNotSignedIn = errors.New("not signed in")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool {
	return errors.Is(err, ErrBackPressure) || errors.Is(err, taskqueue.ErrQueueFull)
}

// IsRejected reports whether the service answered and explicitly refused the
// request (non-2xx, or an in-band error verdict).
func IsRejected(err error) bool { return apierr.IsRejected(err) }

// IsTransport reports whether the request never completed (connection
// failure, timeout, unreadable response). These are the failures worth a
// user-initiated retry.
func IsTransport(err error) bool { return apierr.IsTransport(err) }

// ErrorDetail returns the service-provided detail message, or "" when err
// carries none.
func ErrorDetail(err error) string { return apierr.Detail(err) }

// ErrorMessage returns the service detail verbatim when available, else
// fallback. UIs use this to pick between the service's wording and a generic
// localized message.
func ErrorMessage(err error, fallback string) string { return apierr.Message(err, fallback) }
