package genai

import (
	"context"
	"time"

	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

// RetryPolicy bounds repeated generation attempts with a fixed delay.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// WithRetry runs fn up to MaxAttempts times, sleeping Delay between attempts.
// Returns the last error when every attempt fails.
func WithRetry(ctx context.Context, policy RetryPolicy, op string, fn func() error) error {
	attempts := policy.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return newError(op, KindTimeout, err)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		logger.Warn(ctx, "genai", "attempt.fail",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Int("attempts", attempts),
			slog.String("err_kind", string(KindOf(lastErr))),
		)

		if attempt == attempts {
			break
		}
		if policy.Delay > 0 {
			timer := time.NewTimer(policy.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return newError(op, KindTimeout, ctx.Err())
			case <-timer.C:
			}
		}
	}
	return lastErr
}
