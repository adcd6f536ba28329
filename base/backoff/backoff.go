package backoff

import (
	"context"
	"time"
)

// Strategy returns the wait before retry number count, counting from 0
type Strategy func(count int, start time.Duration) time.Duration

func Exponential(count int, start time.Duration) time.Duration {
	return start << uint(count)
}

func Constant(count int, start time.Duration) time.Duration {
	return start
}

// Backoff waits between retries, the wait grows by its strategy up to limit
type Backoff struct {
	strategy Strategy
	start    time.Duration
	limit    time.Duration
	count    int
}

// New returns a Backoff, a limit of 0 means unbounded
func New(strategy Strategy, start, limit time.Duration) *Backoff {
	return &Backoff{strategy: strategy, start: start, limit: limit}
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(Exponential, start, limit)
}

func (b *Backoff) Reset() {
	b.count = 0
}

// Count is the number of completed waits
func (b *Backoff) Count() int {
	return b.count
}

// Next is the duration the next Backoff call waits
func (b *Backoff) Next() time.Duration {
	d := b.strategy(b.count, b.start)
	if d < 0 || (b.limit > 0 && d > b.limit) {
		d = b.limit
	}
	return d
}

// Backoff sleeps for Next, it returns the context error when ctx ends first
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.Next())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		b.count++
		return nil
	}
}
