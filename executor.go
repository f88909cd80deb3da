package client

import (
	"context"

	"github.com/ainotes/ainotes-go/internal/taskqueue"
)

// executor abstracts the internal async job runner used by the task registry.
type executor interface {
	Submit(context.Context, string, taskqueue.Job) error
	Stop()
}

// Note: all clients include an executor by default; async methods require it.
