package readiness

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// Mongo returns a condition that holds once the MongoDB deployment answers a
// ping. Ping failures report "not ready" so the gate keeps polling while the
// deployment starts up.
func Mongo(client *mongo.Client) gate.Condition {
	return func(ctx context.Context) (bool, error) {
		if err := client.Ping(ctx, nil); err != nil {
			return false, nil
		}
		return true, nil
	}
}

// MongoFromConfig builds a MongoDB probe from an env-driven config. The
// driver connects lazily, so an unreachable deployment is still just "not
// ready". An invalid connection URL is a construction error and returns
// ErrInvalidConfig.
func MongoFromConfig(cfg MongoConfig) (gate.Condition, error) {
	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.ConnectionURL).
			SetConnectTimeout(cfg.ConnectTimeout),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return Mongo(client), nil
}
