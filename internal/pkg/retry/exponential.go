package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Modr3d/Seven-Knights-Rebirth-GBRS/internal/pkg/logger"
)

// Operation is a unit of work that may be attempted more than once
type Operation func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // Retries after the first attempt
	BaseDelay  time.Duration // Delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool // Adds up to 10% random delay
	Retryable  func(error) bool
}

// DefaultConfig returns a short backoff suited to an interactive request
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  250 * time.Millisecond,
		MaxDelay:   2 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  NotCanceled,
	}
}

// NotCanceled retries every error except context cancellation and deadline expiry
func NotCanceled(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Retrier runs an Operation with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier. A nil logger discards output.
func New(config Config, l *logger.ZapLogger) *Retrier {
	if l == nil {
		l = logger.NewNopLogger()
	}
	if config.Retryable == nil {
		config.Retryable = NotCanceled
	}
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{config: config, logger: l}
}

// Execute runs op until it succeeds, returns a non-retryable error, or the
// retry budget is spent.
func (r *Retrier) Execute(ctx context.Context, op Operation) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries", logger.Int("attempt", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			r.logger.Debug("Error is not retryable, stopping",
				logger.Err(err),
				logger.Int("attempt", attempt+1))
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Debug("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	r.logger.Warn("Operation failed after all retries",
		logger.Err(lastErr),
		logger.Int("total_attempts", r.config.MaxRetries+1))

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
