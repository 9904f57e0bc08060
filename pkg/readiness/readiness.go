package readiness

import (
	"context"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// WaitFor builds a gate around the given condition and blocks until it
// completes or the timeout configured via the gate options elapses. It is a
// convenience for the common "wait for infrastructure on startup" case:
//
//	err := readiness.WaitFor(ctx, "postgres", readiness.Postgres(pool),
//	    gate.WithDefaultTimeout(30*time.Second))
func WaitFor(ctx context.Context, name string, cond gate.Condition, opts ...gate.Option) error {
	g, err := gate.New(name, cond, opts...)
	if err != nil {
		return err
	}
	return g.Wait(ctx)
}

// Check is a named readiness condition for All.
type Check struct {
	Name      string
	Condition gate.Condition
}

// All builds a gate group over the given checks and waits for every one of
// them. Checks are polled in the given order, head first.
func All(ctx context.Context, name string, checks []Check, opts ...gate.Option) error {
	members := make([]*gate.Gate, 0, len(checks))
	for _, check := range checks {
		member, err := gate.New(check.Name, check.Condition)
		if err != nil {
			return err
		}
		members = append(members, member)
	}
	grp, err := gate.NewGroup(name, members, opts...)
	if err != nil {
		return err
	}
	return grp.Wait(ctx)
}
