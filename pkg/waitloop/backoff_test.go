package waitloop_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/pkg/waitloop"
)

func TestConstantBackoff(t *testing.T) {
	t.Parallel()

	b := waitloop.ConstantBackoff{Interval: 250 * time.Millisecond}
	for _, attempt := range []int{1, 2, 10} {
		assert.Equal(t, 250*time.Millisecond, b.NextInterval(attempt))
	}

	assert.Zero(t, b.NextInterval(0))
	assert.Equal(t, waitloop.DefaultInterval, waitloop.ConstantBackoff{}.NextInterval(1))
}

func TestLinearBackoff(t *testing.T) {
	t.Parallel()

	b := waitloop.LinearBackoff{
		Interval:    100 * time.Millisecond,
		MaxInterval: 350 * time.Millisecond,
	}

	assert.Equal(t, 100*time.Millisecond, b.NextInterval(1))
	assert.Equal(t, 200*time.Millisecond, b.NextInterval(2))
	assert.Equal(t, 300*time.Millisecond, b.NextInterval(3))
	assert.Equal(t, 350*time.Millisecond, b.NextInterval(4), "capped at max")
	assert.Zero(t, b.NextInterval(0))
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		backoff  waitloop.ExponentialBackoff
		attempts []int
		want     []time.Duration
	}{
		{
			name:     "default values",
			backoff:  waitloop.ExponentialBackoff{},
			attempts: []int{1, 2, 3, 4},
			want: []time.Duration{
				500 * time.Millisecond,
				time.Second,
				2 * time.Second,
				4 * time.Second,
			},
		},
		{
			name: "custom values with max cap",
			backoff: waitloop.ExponentialBackoff{
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     time.Second,
				Multiplier:      3,
			},
			attempts: []int{1, 2, 3, 4},
			want: []time.Duration{
				100 * time.Millisecond,
				300 * time.Millisecond,
				900 * time.Millisecond,
				time.Second,
			},
		},
		{
			name:     "non-positive attempts return zero",
			backoff:  waitloop.ExponentialBackoff{},
			attempts: []int{0, -1},
			want:     []time.Duration{0, 0},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, len(tt.attempts), len(tt.want), "test setup error")

			for i, attempt := range tt.attempts {
				assert.Equal(t, tt.want[i], tt.backoff.NextInterval(attempt), "attempt %d", attempt)
			}
		})
	}
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	t.Parallel()

	b := waitloop.ExponentialBackoff{
		InitialInterval: time.Second,
		MaxInterval:     time.Minute,
		Multiplier:      2,
		JitterFactor:    0.5,
	}

	// Jittered intervals stay within (1 ± JitterFactor) of the base value.
	for i := 0; i < 100; i++ {
		got := b.NextInterval(2)
		assert.GreaterOrEqual(t, got, time.Second)
		assert.LessOrEqual(t, got, 3*time.Second)
	}
}
