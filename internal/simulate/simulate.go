// Package simulate provides the artificial network latency used by the
// in-memory stores. The demo data layer mimics a remote backend, so each
// store operation waits a fixed duration before answering. Tests and
// latency-disabled deployments inject the zero sleeper instead.
package simulate

import (
	"context"
	"time"
)

// Sleeper blocks for a duration, honoring context cancellation.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type clockSleeper struct{}

func (clockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type zeroSleeper struct{}

func (zeroSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Network returns a sleeper that actually waits.
func Network() Sleeper { return clockSleeper{} }

// None returns a sleeper that never waits. Cancellation still surfaces.
func None() Sleeper { return zeroSleeper{} }

// ForConfig picks the sleeper matching the MOCK_LATENCY toggle.
func ForConfig(enabled bool) Sleeper {
	if enabled {
		return Network()
	}
	return None()
}
