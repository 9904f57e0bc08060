package readiness

import "errors"

var (
	// ErrEmptyAddress is returned when a probe is constructed without a
	// target address or URL.
	ErrEmptyAddress = errors.New("readiness: empty probe address")

	// ErrProbeFailed wraps unexpected probe failures that are not a plain
	// "not ready yet" outcome, e.g. a stat on an unreadable path.
	ErrProbeFailed = errors.New("readiness: probe failed")

	// ErrInvalidConfig wraps client construction failures when a probe is
	// built from an env-driven config, e.g. an unparsable connection URL.
	ErrInvalidConfig = errors.New("readiness: invalid probe config")
)
