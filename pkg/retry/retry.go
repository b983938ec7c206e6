// Package retry provides a small, explicitly constructed retry policy for
// outbound gateway calls (email, payment provider). The policy is built once
// at application start and injected into the gateways that need it.
package retry

import (
	"context"
	"time"
)

// Policy retries an operation a bounded number of times with a fixed delay
// between attempts. A zero Policy performs the call once with no retries.
type Policy struct {
	MaxRetries int
	Delay      time.Duration
}

// Do invokes fn until it succeeds, retries are exhausted, or ctx is done.
// The last error is returned.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.Delay):
			}
		}
		if err = fn(ctx); err == nil {
			return nil
		}
	}
	return err
}
