package planner

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"itinera/pkg/utils"
)

const (
	MaxAttempts      = 3
	DefaultBaseDelay = time.Second
)

// linearBackOff waits attempt × base between attempts.
type linearBackOff struct {
	base    time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.base
}

func (b *linearBackOff) Reset() { b.attempt = 0 }

func newRetryPolicy(ctx context.Context, base time.Duration) backoff.BackOff {
	return backoff.WithContext(
		backoff.WithMaxRetries(&linearBackOff{base: base}, MaxAttempts-1),
		ctx,
	)
}

type failureClass int

const (
	retryable failureClass = iota
	terminal
)

// classify decides whether err ends the retry loop. A context error only
// does when ctx itself is done; a client's own per-call timeout is retried.
func classify(ctx context.Context, err error) failureClass {
	switch {
	case errors.Is(err, utils.ErrInvalidDestination),
		errors.Is(err, utils.ErrInvalidInput):
		return terminal
	case ctx.Err() != nil &&
		(errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		return terminal
	default:
		return retryable
	}
}
