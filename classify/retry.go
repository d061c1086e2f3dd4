package classify

import (
	"context"
	"fmt"
	"time"
)

// WithRotatingKeys runs op once per credential in the pool until it
// succeeds or a non-rate-limit error occurs. Rate-limit failures rotate
// to the next key after waiting pause; when every key has been tried
// the last error is wrapped in ErrKeyPoolExhausted.
func WithRotatingKeys[T any](ctx context.Context, pool *KeyPool, pause time.Duration, op func(Credential) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := pool.Size()
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := op(pool.Next())
		if err == nil {
			return result, nil
		}
		if !IsRateLimit(err) {
			return zero, err
		}
		lastErr = err

		if i+1 < attempts && pause > 0 {
			if err := sleep(ctx, pause); err != nil {
				return zero, err
			}
		}
	}

	return zero, fmt.Errorf("%w: %w", ErrKeyPoolExhausted, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
