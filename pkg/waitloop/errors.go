package waitloop

import "errors"

var (
	// ErrTimeout indicates the deadline elapsed before the step function
	// reported completion. Timeout errors returned by Wait also satisfy
	// errors.Is(err, context.DeadlineExceeded).
	ErrTimeout = errors.New("waitloop: timed out waiting for completion")

	// ErrNilStep is returned when Wait is called without a step function.
	ErrNilStep = errors.New("waitloop: nil step function")
)
