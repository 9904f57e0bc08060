// Package readiness provides ready-made gate conditions for common
// infrastructure dependencies: Postgres, Redis, MongoDB, OpenSearch, plain
// HTTP endpoints, TCP listeners, and files on disk.
//
// Each condition treats a failed probe as the normal pending state - the
// dependency simply is not up yet - and reports "not ready" instead of an
// error, so the gate keeps polling until the dependency appears or the wait
// deadline elapses. Only failures that polling cannot fix (an invalid
// request, an unreadable path) surface as errors.
//
// # Usage
//
// Wait for one dependency:
//
//	err := readiness.WaitFor(ctx, "redis", readiness.Redis(client),
//	    gate.WithDefaultTimeout(30*time.Second))
//
// Wait for several, in order:
//
//	err := readiness.All(ctx, "startup", []readiness.Check{
//	    {Name: "postgres", Condition: readiness.Postgres(pool)},
//	    {Name: "redis", Condition: readiness.Redis(client)},
//	    {Name: "search", Condition: readiness.OpenSearch(osClient)},
//	}, gate.WithDefaultTimeout(time.Minute))
//
// Conditions are plain gate.Condition closures, so they combine freely with
// hand-written ones and with the full gate callback API.
//
// Each backend also has an env-driven Config struct and a FromConfig
// constructor for zero-config wiring through pkg/config:
//
//	var cfg readiness.RedisConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	cond, err := readiness.RedisFromConfig(cfg)
package readiness
