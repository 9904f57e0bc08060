package gate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/gatekit/pkg/waitloop"
)

// Waiter drives repeated polling until the step reports completion or the
// timeout elapses. The description identifies the awaited condition in
// diagnostics. A non-positive timeout means no deadline.
//
// The default implementation delegates to pkg/waitloop; inject a custom
// Waiter with WithWaiter to control scheduling in tests or embed the gate in
// an existing poll loop.
type Waiter interface {
	Wait(ctx context.Context, step func(ctx context.Context) (bool, error), timeout time.Duration, description string) error
}

type loopWaiter struct {
	interval time.Duration
	backoff  waitloop.BackoffStrategy
	logger   *slog.Logger
}

func (w loopWaiter) Wait(ctx context.Context, step func(ctx context.Context) (bool, error), timeout time.Duration, description string) error {
	opts := []waitloop.Option{
		waitloop.WithTimeout(timeout),
		waitloop.WithDescription(description),
		waitloop.WithLogger(w.logger),
	}
	if w.backoff != nil {
		opts = append(opts, waitloop.WithBackoff(w.backoff))
	} else {
		opts = append(opts, waitloop.WithInterval(w.interval))
	}
	return waitloop.Wait(ctx, waitloop.Step(step), opts...)
}
