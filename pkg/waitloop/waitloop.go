package waitloop

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// DefaultInterval is the poll interval used when no interval or backoff
// strategy is configured.
const DefaultInterval = 500 * time.Millisecond

// Step is a single poll attempt. It returns true when the awaited condition
// holds. A non-nil error aborts the loop and is returned to the caller
// unchanged.
type Step func(ctx context.Context) (bool, error)

// Wait repeatedly invokes step until it returns true, the configured timeout
// elapses, or the context is done.
//
// The step function runs once immediately before the first sleep, so a
// condition that already holds returns without any delay. On timeout the
// returned error satisfies both errors.Is(err, ErrTimeout) and
// errors.Is(err, context.DeadlineExceeded). A zero or negative timeout means
// no deadline: the loop runs until step succeeds, step fails, or the context
// is canceled.
func Wait(ctx context.Context, step Step, opts ...Option) error {
	if step == nil {
		return ErrNilStep
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.logger.DebugContext(ctx, "waiting",
		slog.String("waiting_for", cfg.description),
		slog.Duration("timeout", cfg.timeout))

	var deadline <-chan time.Time
	if cfg.timeout > 0 {
		timer := time.NewTimer(cfg.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for attempt := 1; ; attempt++ {
		ok, err := step(ctx)
		if err != nil {
			return err
		}
		if ok {
			cfg.logger.DebugContext(ctx, "finished waiting",
				slog.String("waiting_for", cfg.description),
				slog.Int("attempts", attempt))
			return nil
		}

		delay := cfg.interval
		if cfg.backoff != nil {
			delay = cfg.backoff.NextInterval(attempt)
		}

		sleep := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			sleep.Stop()
			return ctx.Err()
		case <-deadline:
			sleep.Stop()
			cfg.logger.DebugContext(ctx, "timed out waiting",
				slog.String("waiting_for", cfg.description),
				slog.Duration("timeout", cfg.timeout),
				slog.Int("attempts", attempt))
			return errors.Join(ErrTimeout, context.DeadlineExceeded)
		case <-sleep.C:
		}
	}
}
