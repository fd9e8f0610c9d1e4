package throttle

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

//go:generate counterfeiter . Throttle

// Throttle hands out at most one permit per interval.
type Throttle interface {
	Wait(ctx context.Context) error
}

type throttle struct {
	clock    clock.Clock
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func New(clock clock.Clock, interval time.Duration) Throttle {
	return &throttle{
		clock:    clock,
		interval: interval,
	}
}

func PerSecond(clock clock.Clock, n int) Throttle {
	if n <= 0 {
		n = 1
	}
	return New(clock, time.Second/time.Duration(n))
}

func (t *throttle) Wait(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		wait := t.interval - t.clock.Since(t.last)
		if wait > 0 {
			timer := t.clock.NewTimer(wait)
			select {
			case <-timer.C():
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}
	}

	t.last = t.clock.Now()
	return nil
}
