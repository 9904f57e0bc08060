// Package gate implements a deferred-completion primitive: a Gate represents
// a condition that becomes true at some future point, discovered by repeated
// polling rather than by push notification.
//
// Callers attach callbacks to run on completion (Then), on each poll cycle
// (During), and on wait timeout (OnTimeout), then block with Wait until the
// condition holds or a deadline elapses. The condition itself is an ordinary
// closure, so anything that can be probed - a process exiting, a file
// appearing, a service answering - can back a gate (see pkg/readiness for
// ready-made conditions).
//
// # Usage
//
//	g := gate.MustNew("db ready", readiness.Postgres(pool),
//	    gate.WithDefaultTimeout(30*time.Second),
//	    gate.WithPollInterval(time.Second),
//	)
//	_ = g.Then(func() error {
//	    log.Println("database is up")
//	    return nil
//	})
//	if err := g.Wait(ctx); err != nil {
//	    // deadline elapsed or a callback/condition failed
//	}
//
// Gates compose: Group awaits an ordered collection of gates and is itself a
// Gate.
//
// # Completion protocol
//
// Poll drives the state machine: pending until the condition is first
// observed true, then finished forever. Completion callbacks fire exactly
// once, on the poll that observes the transition; the latch is a
// compare-and-set, so interleaved polls from cooperatively scheduled tasks
// cannot double-fire. Once a gate is finished, registering callbacks or
// changing the default timeout fails with ErrGateFinished.
//
// # Error Handling
//
// Error treatment is deliberately asymmetric. Completion callbacks are
// isolated: every callback in the batch runs, the first error is retained
// and returned after the batch. During- and timeout-callbacks are
// fail-fast: the first error aborts the batch and propagates. Condition
// errors always propagate unchanged. A wait timeout is returned as the wait
// loop's timeout error unless the WithTimeoutError hook translates it into a
// caller-specific error.
//
// The gate never sleeps itself; the delay between polls is owned by the
// injected Waiter (pkg/waitloop by default).
package gate
