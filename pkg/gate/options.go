package gate

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/gatekit/pkg/waitloop"
)

// Option is a functional option for configuring a gate at construction.
type Option func(*Gate)

// WithDefaultTimeout sets the timeout used by Wait when none is given per
// call. Zero means unbounded.
func WithDefaultTimeout(d time.Duration) Option {
	return func(g *Gate) {
		g.defaultTimeout = d
	}
}

// WithTimeoutError sets the hook translating a wait timeout into a
// caller-specific error. The hook receives the original timeout error;
// returning nil keeps the original error identity.
func WithTimeoutError(translate func(original error) error) Option {
	return func(g *Gate) {
		g.translate = translate
	}
}

// WithLogger sets the logger for gate diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithWaiter replaces the default poll loop driving Wait.
func WithWaiter(w Waiter) Option {
	return func(g *Gate) {
		if w != nil {
			g.waiter = w
		}
	}
}

// WithPollInterval sets the fixed delay between polls for the default
// waiter. Ignored when a custom Waiter is injected.
func WithPollInterval(d time.Duration) Option {
	return func(g *Gate) {
		if d > 0 {
			g.pollInterval = d
		}
	}
}

// WithBackoff sets the backoff strategy between polls for the default
// waiter. Ignored when a custom Waiter is injected.
func WithBackoff(b waitloop.BackoffStrategy) Option {
	return func(g *Gate) {
		if b != nil {
			g.backoff = b
		}
	}
}

// WaitOption is a functional option for a single Wait call.
type WaitOption func(*waitConfig)

type waitConfig struct {
	timeout time.Duration
}

// WithTimeout sets the deadline for this Wait call, overriding the gate's
// default timeout.
func WithTimeout(d time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = d
	}
}
