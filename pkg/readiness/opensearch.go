package readiness

import (
	"context"
	"errors"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// OpenSearch returns a condition that holds once the cluster answers the
// info endpoint with a non-error status. Unreachable or erroring clusters
// report "not ready" so the gate keeps polling.
func OpenSearch(client *opensearch.Client) gate.Condition {
	return func(ctx context.Context) (bool, error) {
		res, err := client.Info(
			client.Info.WithContext(ctx),
		)
		if err != nil {
			return false, nil
		}
		defer res.Body.Close()
		return !res.IsError(), nil
	}
}

// OpenSearchFromConfig builds an OpenSearch probe from an env-driven config.
// Client construction failures return ErrInvalidConfig; an unreachable
// cluster is still just "not ready" once the condition is polled.
func OpenSearchFromConfig(cfg OpenSearchConfig) (gate.Condition, error) {
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: cfg.Addresses,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return OpenSearch(client), nil
}
