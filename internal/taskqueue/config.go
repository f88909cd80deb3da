package taskqueue

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config controls executor sizing and the per-job retry policy.
//
// MaxAttempts defaults to 1: a failed job settles immediately and any retry
// is the caller's decision. Values above 1 enable exponential backoff between
// attempts for recoverable failures only.
type Config struct {
	Shards         int           `envconfig:"SHARDS" default:"4"`
	QueueSize      int           `envconfig:"QUEUE_SIZE" default:"128"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`
	MaxAttempts    int           `envconfig:"MAX_ATTEMPTS" default:"1"`
	BaseBackoff    time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval    time.Duration `envconfig:"MAX_INTERVAL" default:"20s"`

	// ErrorHandler receives the final error of a job that exhausted its
	// attempts (or failed irrecoverably). Optional.
	ErrorHandler func(error) `ignored:"true"`
}

// LoadConfig reads TQ_* environment variables into a Config, applying the
// struct defaults for unset variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("tq", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
