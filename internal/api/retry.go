package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// retry runs fn up to attempts times with a fixed delay between tries,
// stopping early when the context is done.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			slog.Debug("retrying request", "attempt", i+1)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err = fn()
		if err == nil {
			return nil
		}
	}
	return fmt.Errorf("after %d attempts, last error: %w", attempts, err)
}
