package readiness

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// Redis returns a condition that holds once the Redis server answers PING.
// A failed ping is the normal pending state and reports "not ready" rather
// than an error, so the gate keeps polling until the server comes up.
func Redis(client redis.UniversalClient) gate.Condition {
	return func(ctx context.Context) (bool, error) {
		if err := client.Ping(ctx).Err(); err != nil {
			return false, nil
		}
		return true, nil
	}
}

// RedisFromConfig builds a Redis probe from an env-driven config. The client
// is created eagerly but does not dial until the condition is polled, so an
// unreachable server is still just "not ready". An unparsable connection URL
// is a construction error and returns ErrInvalidConfig.
func RedisFromConfig(cfg RedisConfig) (gate.Condition, error) {
	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return Redis(redis.NewClient(opt)), nil
}
