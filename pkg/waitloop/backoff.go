package waitloop

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy calculates the delay before the next poll attempt.
// Implementations should be safe for concurrent use.
type BackoffStrategy interface {
	// NextInterval returns the delay to sleep after the given attempt.
	// Attempt starts at 1 for the first failed poll.
	NextInterval(attempt int) time.Duration
}

// ConstantBackoff polls at a fixed interval regardless of how many attempts
// have been made. This is the default strategy for readiness polling where
// the condition is expected to flip soon.
type ConstantBackoff struct {
	Interval time.Duration
}

func (c ConstantBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if c.Interval <= 0 {
		return DefaultInterval
	}
	return c.Interval
}

// LinearBackoff grows the poll interval linearly, capped at MaxInterval.
// Formula: min(Interval * attempt, MaxInterval)
type LinearBackoff struct {
	Interval    time.Duration
	MaxInterval time.Duration
}

func (l LinearBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	max := l.MaxInterval
	if max <= 0 {
		max = 30 * time.Second
	}

	delay := interval * time.Duration(attempt)
	if delay > max {
		delay = max
	}
	return delay
}

// ExponentialBackoff doubles (by default) the poll interval on each attempt,
// with optional jitter to spread out probes from concurrently waiting
// processes. Formula: min(InitialInterval * Multiplier^(attempt-1) * (1 ± JitterFactor), MaxInterval)
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	initial := e.InitialInterval
	if initial <= 0 {
		initial = DefaultInterval
	}

	max := e.MaxInterval
	if max <= 0 {
		max = 30 * time.Second
	}

	multiplier := e.Multiplier
	if multiplier == 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))

	// Zero jitter stays deterministic, which tests rely on.
	if e.JitterFactor > 0 {
		randomJitter := (rand.Float64()*2 - 1) * e.JitterFactor
		interval = interval * (1 + randomJitter)
	}

	if interval > float64(max) {
		interval = float64(max)
	}
	return time.Duration(interval)
}
