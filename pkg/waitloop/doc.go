// Package waitloop implements the polling loop behind gate.Wait: it
// repeatedly invokes a step function until the step reports completion, a
// deadline elapses, or the context is done.
//
// The loop owns the sleep/backoff policy between attempts. The step runs once
// immediately, so an already-satisfied condition never sleeps. Delays between
// attempts come either from a fixed interval (WithInterval) or from a
// BackoffStrategy (WithBackoff) such as ExponentialBackoff with jitter.
//
// # Usage
//
//	err := waitloop.Wait(ctx, func(ctx context.Context) (bool, error) {
//	    return store.Ready(ctx)
//	},
//	    waitloop.WithTimeout(30*time.Second),
//	    waitloop.WithInterval(time.Second),
//	    waitloop.WithDescription("store ready"),
//	)
//	if errors.Is(err, waitloop.ErrTimeout) {
//	    // deadline elapsed
//	}
//
// # Error Handling
//
// A step error aborts the loop and is returned unchanged. On timeout the
// returned error satisfies both errors.Is(err, ErrTimeout) and
// errors.Is(err, context.DeadlineExceeded), so callers can match whichever
// sentinel fits their code. Context cancellation surfaces as ctx.Err().
package waitloop
