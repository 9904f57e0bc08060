package gate

import "errors"

var (
	// ErrGateFinished is returned when callbacks are registered or the
	// default timeout is changed after the gate has already completed.
	ErrGateFinished = errors.New("gate: cannot configure a finished gate")

	// ErrNilCondition is returned by New when no completion condition is
	// supplied.
	ErrNilCondition = errors.New("gate: nil completion condition")

	// ErrNilCallback is returned when a nil callback is registered.
	ErrNilCallback = errors.New("gate: nil callback")

	// ErrAbsorbGroup is returned when AddAbsorb is called with a nested
	// group; absorbing the callbacks of a whole group is not supported.
	ErrAbsorbGroup = errors.New("gate: absorbing a group is not supported")
)
