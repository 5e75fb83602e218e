package shared

import (
	"context"
	"log/slog"

	"shift-booking/internal/pkg/errs"
)

var ErrMaxRetriesExceeded = errs.New("operation failed after max retries")

type RetryableFunc[T any] func(ctx context.Context) (T, error)

// RunWithRetry runs fn up to attempts times, re-running it only while isRetryable
// reports the failure as a lost optimistic-concurrency race. There is no backoff:
// every attempt re-reads fresh state, so waiting gains nothing.
func RunWithRetry[T any](
	ctx context.Context,
	logger *slog.Logger,
	attempts int,
	isRetryable func(error) bool,
	fn RetryableFunc[T],
) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return zero, err
		}
		lastErr = err

		if attempt < attempts {
			logger.Warn("retrying after concurrent modification",
				"attempt", attempt,
				"error", err)
		}
	}

	logger.Error("operation failed after max retries",
		"attempts", attempts,
		"error", lastErr)
	return zero, errs.Mark(lastErr, ErrMaxRetriesExceeded)
}
