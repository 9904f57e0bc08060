package waitloop

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a Wait call.
type Option func(*options)

type options struct {
	timeout     time.Duration
	interval    time.Duration
	backoff     BackoffStrategy
	description string
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		interval:    DefaultInterval,
		description: "condition",
		logger:      slog.Default(),
	}
}

// WithTimeout sets the deadline for the whole wait. Non-positive values are
// ignored, leaving the wait unbounded.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithInterval sets a fixed delay between poll attempts. Ignored when a
// backoff strategy is configured.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithBackoff sets the strategy used to compute the delay between attempts,
// overriding the fixed interval.
func WithBackoff(b BackoffStrategy) Option {
	return func(o *options) {
		if b != nil {
			o.backoff = b
		}
	}
}

// WithDescription sets the human-readable description of what is being
// waited for. Used only in log records.
func WithDescription(desc string) Option {
	return func(o *options) {
		if desc != "" {
			o.description = desc
		}
	}
}

// WithLogger sets the logger for wait diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig applies env-driven settings in one call.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Interval > 0 {
			o.interval = cfg.Interval
		}
		if cfg.Timeout > 0 {
			o.timeout = cfg.Timeout
		}
	}
}
