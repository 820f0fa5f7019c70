package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iho/minipay/internal/domain"
)

// PostgreSQL error codes that indicate a transient serialization problem.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 50 * time.Millisecond
	defaultMaxInterval     = 1 * time.Second
	defaultMaxElapsedTime  = 10 * time.Second
)

// Retrier implements usecase.Retrier with exponential backoff. Conflicts
// are expected under contention and transient; once the retry budget is
// spent the error surfaces as domain.ErrTransferConflict so callers can
// advise a retry.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          *slog.Logger
}

// NewRetrier creates a new PostgreSQL retrier with default settings.
func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
		maxElapsedTime:  defaultMaxElapsedTime,
		logger:          slog.Default(),
	}
}

// Retry runs the operation, backing off and re-running it after each
// retryable failure until it succeeds or the attempt budget runs out.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	attempts := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}

		attempts++
		if attempts > r.maxRetries {
			return backoff.Permanent(fmt.Errorf("%w: %v", domain.ErrTransferConflict, err))
		}

		r.logger.Warn("retryable database conflict, retrying",
			"error", err,
			"attempt", attempts,
		)

		return err
	}, backoff.WithContext(b, ctx))
}

// isRetryableError reports whether re-running the whole operation can
// succeed: serialization failures, deadlocks, and network errors where
// pgconn knows the request was never sent.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrDeadlock || pgErr.Code == pgErrSerializationFailure
	}
	return pgconn.SafeToRetry(err)
}
