package readiness

import (
	"context"
	"net"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// TCP returns a condition that holds once a TCP connection to the address
// can be established. The probe dials, closes the connection immediately,
// and reports "not ready" on any dial failure.
func TCP(addr string) gate.Condition {
	dialer := &net.Dialer{Timeout: defaultProbeTimeout}
	return func(ctx context.Context) (bool, error) {
		if addr == "" {
			return false, ErrEmptyAddress
		}
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false, nil
		}
		_ = conn.Close()
		return true, nil
	}
}

// TCPFromConfig builds a TCP probe from an env-driven config.
func TCPFromConfig(cfg TCPConfig) gate.Condition {
	return TCP(cfg.Address)
}
