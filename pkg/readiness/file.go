package readiness

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrymomot/gatekit/pkg/gate"
)

// File returns a condition that holds once the path exists. A missing path
// reports "not ready"; any other stat failure (e.g. permission denied on a
// parent directory) is a real error and propagates wrapped in
// ErrProbeFailed.
func File(path string) gate.Condition {
	return func(ctx context.Context) (bool, error) {
		if path == "" {
			return false, ErrEmptyAddress
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}
			return false, errors.Join(ErrProbeFailed, err)
		}
		return true, nil
	}
}

// FileFromConfig builds a file probe from an env-driven config.
func FileFromConfig(cfg FileConfig) gate.Condition {
	return File(cfg.Path)
}
