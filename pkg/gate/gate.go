package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gatekit/pkg/waitloop"
)

// Condition reports whether the awaited completion condition holds. It must
// be cheap enough to evaluate on every poll tick. A non-nil error propagates
// out of Poll and Wait unchanged.
type Condition func(ctx context.Context) (bool, error)

// Callback runs on a gate lifecycle event. Bind arguments by capturing them
// in the closure at registration time.
type Callback func() error

// Gate tracks a condition that becomes true at some future point, discovered
// by repeated polling. Callbacks can be attached to run on completion, on
// each poll, and on wait timeout.
//
// A gate is owned by a single logical poller. The completion-callback latch
// uses compare-and-set so that interleaved cooperative polls cannot fire the
// callbacks twice, but concurrent Poll calls from preemptively scheduled
// goroutines are not otherwise synchronized.
type Gate struct {
	name      string
	id        uuid.UUID
	condition Condition

	finished  bool
	triggered atomic.Bool
	isGroup   bool

	then      []Callback
	during    []Callback
	onTimeout []Callback

	defaultTimeout time.Duration
	translate      func(error) error
	waiter         Waiter
	pollInterval   time.Duration
	backoff        waitloop.BackoffStrategy
	logger         *slog.Logger
}

// New creates a gate for the given condition. The name identifies the gate in
// diagnostics; it has no required format.
func New(name string, condition Condition, opts ...Option) (*Gate, error) {
	if condition == nil {
		return nil, ErrNilCondition
	}

	g := &Gate{
		name:      name,
		id:        uuid.New(),
		condition: condition,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.waiter == nil {
		g.waiter = loopWaiter{interval: g.pollInterval, backoff: g.backoff, logger: g.logger}
	}

	g.logger.Debug("gate created",
		slog.String("gate", g.name),
		slog.String("gate_id", g.id.String()))

	return g, nil
}

// MustNew works like New but panics on invalid configuration. Useful for
// gates constructed at startup.
func MustNew(name string, condition Condition, opts ...Option) *Gate {
	g, err := New(name, condition, opts...)
	if err != nil {
		panic(fmt.Sprintf("gate: %v", err))
	}
	return g
}

// Name returns the human-readable gate identifier.
func (g *Gate) Name() string { return g.name }

// ID returns the unique gate identifier attached to log records.
func (g *Gate) ID() uuid.UUID { return g.id }

func (g *Gate) String() string {
	if g.name == "" {
		return fmt.Sprintf("gate %s", g.id)
	}
	return fmt.Sprintf("gate %s (%s)", g.name, g.id)
}

// IsFinished reports whether the condition has been observed true. It never
// resets: false flips to true exactly once and stays there.
func (g *Gate) IsFinished() bool { return g.finished }

// Poll runs one detection step. In order: if the gate already finished it
// returns true immediately without re-running during-callbacks; otherwise it
// runs every during-callback in registration order, re-evaluates the
// condition, and - the first time completion is observed - runs every
// completion callback in registration order.
//
// A during-callback error aborts the batch and propagates before the
// condition is evaluated. Completion callbacks are isolated instead: each
// error is logged, the first one is retained and the remaining callbacks
// still run; the retained error is returned after the batch. The returned
// bool is always the completion state, so a true result may be paired with a
// non-nil error - callers that need the authoritative flag after an error
// should consult IsFinished.
func (g *Gate) Poll(ctx context.Context) (bool, error) {
	if g.finished {
		return true, nil
	}

	for _, cb := range g.during {
		if err := cb(); err != nil {
			return false, err
		}
	}

	ok, err := g.condition(ctx)
	if err != nil {
		return false, err
	}
	g.finished = ok

	if ok && g.triggered.CompareAndSwap(false, true) {
		var firstErr error
		for _, cb := range g.then {
			if err := cb(); err != nil {
				g.logger.DebugContext(ctx, "completion callback failed",
					slog.String("gate", g.name),
					slog.String("gate_id", g.id.String()),
					slog.Any("error", err))
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		if firstErr != nil {
			return true, firstErr
		}
	}

	return g.finished, nil
}

// Then registers a callback to run once when the gate completes. Callbacks
// fire in registration order at most once per gate, no matter how many polls
// follow. Registration fails with ErrGateFinished once the gate completed.
func (g *Gate) Then(cb Callback) error {
	return g.register(&g.then, cb)
}

// During registers a callback to run on every poll made before completion.
func (g *Gate) During(cb Callback) error {
	return g.register(&g.during, cb)
}

// OnTimeout registers a callback to run when a Wait deadline elapses.
func (g *Gate) OnTimeout(cb Callback) error {
	return g.register(&g.onTimeout, cb)
}

func (g *Gate) register(registry *[]Callback, cb Callback) error {
	if cb == nil {
		return ErrNilCallback
	}
	if g.finished {
		return ErrGateFinished
	}
	*registry = append(*registry, cb)
	return nil
}

// SetDefaultTimeout sets the timeout used by Wait when no explicit timeout
// option is given. Zero means unbounded. The value is not validated beyond
// the configuration guard; the wait loop defines the semantics of
// non-positive timeouts.
func (g *Gate) SetDefaultTimeout(d time.Duration) error {
	if g.finished {
		return ErrGateFinished
	}
	g.defaultTimeout = d
	return nil
}

// Wait blocks until the gate completes or a deadline elapses. The effective
// timeout is the explicit WithTimeout option if given, else the default set
// via SetDefaultTimeout or WithDefaultTimeout, else unbounded.
//
// On timeout every on-timeout callback runs in registration order with no
// error isolation: the first error aborts the batch and is returned. After
// the callbacks the timeout translation hook runs; if it returns a non-nil
// error that error replaces the original, otherwise the original timeout
// error is returned unchanged. Any other error from polling is logged and
// returned as is.
func (g *Gate) Wait(ctx context.Context, opts ...WaitOption) error {
	cfg := waitConfig{timeout: g.defaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.logger.DebugContext(ctx, "waiting for gate",
		slog.String("gate", g.name),
		slog.String("gate_id", g.id.String()),
		slog.Duration("timeout", cfg.timeout))

	err := g.waiter.Wait(ctx, g.Poll, cfg.timeout, g.String())
	if err == nil {
		g.logger.DebugContext(ctx, "finished waiting for gate",
			slog.String("gate", g.name),
			slog.String("gate_id", g.id.String()))
		return nil
	}

	if errors.Is(err, waitloop.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		for _, cb := range g.onTimeout {
			if cbErr := cb(); cbErr != nil {
				return cbErr
			}
		}
		if g.translate != nil {
			if translated := g.translate(err); translated != nil {
				return translated
			}
		}
		return err
	}

	g.logger.DebugContext(ctx, "error while waiting for gate",
		slog.String("gate", g.name),
		slog.String("gate_id", g.id.String()),
		slog.Any("error", err))
	return err
}
