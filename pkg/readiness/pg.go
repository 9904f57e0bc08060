package readiness

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// Postgres returns a condition that holds once the database answers a ping
// on the given pool. Ping failures report "not ready" so the gate keeps
// polling while the database starts up.
func Postgres(pool *pgxpool.Pool) gate.Condition {
	return func(ctx context.Context) (bool, error) {
		if err := pool.Ping(ctx); err != nil {
			return false, nil
		}
		return true, nil
	}
}

// PostgresFromConfig builds a Postgres probe from an env-driven config. The
// pool connects lazily, so an unreachable database is still just "not
// ready". A connection string the pool cannot parse is a construction error
// and returns ErrInvalidConfig.
func PostgresFromConfig(ctx context.Context, cfg PostgresConfig) (gate.Condition, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return Postgres(pool), nil
}
