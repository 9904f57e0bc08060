package waitloop

import "time"

// Config holds env-driven wait loop settings, loaded with pkg/config.
type Config struct {
	Interval time.Duration `env:"WAIT_POLL_INTERVAL" envDefault:"500ms"` // Interval is the delay between poll attempts.
	Timeout  time.Duration `env:"WAIT_TIMEOUT" envDefault:"0"`           // Timeout is the deadline for the whole wait. Zero means unbounded.
}
