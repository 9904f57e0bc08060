package readiness

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// defaultProbeTimeout bounds a single probe attempt so one slow target
// cannot stall the poll loop past its own interval for long.
const defaultProbeTimeout = 3 * time.Second

// HTTP returns a condition that holds once a GET on the URL answers with a
// 2xx status. A nil client falls back to a shared client with a short
// per-probe timeout. Transport errors and non-2xx statuses report "not
// ready".
func HTTP(client *http.Client, url string) gate.Condition {
	if client == nil {
		client = &http.Client{Timeout: defaultProbeTimeout}
	}
	return func(ctx context.Context) (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return false, err
		}
		res, err := client.Do(req)
		if err != nil {
			return false, nil
		}
		defer res.Body.Close()
		return res.StatusCode >= 200 && res.StatusCode < 300, nil
	}
}

// HTTPFromConfig builds an HTTP probe from an env-driven config. A
// non-positive ProbeTimeout falls back to the default per-probe timeout.
func HTTPFromConfig(cfg HTTPConfig) gate.Condition {
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return HTTP(&http.Client{Timeout: timeout}, cfg.URL)
}
