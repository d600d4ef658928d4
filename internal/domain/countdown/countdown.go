// Package countdown implements the Pix payment timer shown on the display page.
package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Countdown counts whole seconds down to zero and fires its expiry callback
// exactly once. Stop is safe to call any number of times from any goroutine.
type Countdown struct {
	interval time.Duration
	onExpire func()

	mu        sync.Mutex
	remaining int
	expired   bool

	stop     chan struct{}
	stopOnce sync.Once
}

type Option func(*Countdown)

// WithInterval overrides the one second tick, mostly for tests.
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithExpire registers the callback run when the counter reaches zero.
func WithExpire(fn func()) Option {
	return func(c *Countdown) { c.onExpire = fn }
}

func New(seconds int, opts ...Option) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	c := &Countdown{
		interval:  time.Second,
		remaining: seconds,
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Tick advances the counter by one second. Once expired further ticks are no-ops.
func (c *Countdown) Tick() (remaining int, expired bool) {
	c.mu.Lock()
	if c.expired {
		c.mu.Unlock()
		return 0, true
	}
	if c.remaining > 0 {
		c.remaining--
	}
	fire := c.remaining == 0
	if fire {
		c.expired = true
	}
	remaining = c.remaining
	c.mu.Unlock()

	if fire && c.onExpire != nil {
		c.onExpire()
	}
	return remaining, fire
}

// Start ticks in the background and publishes the remaining seconds after each
// tick. The channel is closed after the zero value is delivered, or when ctx is
// done or Stop is called.
func (c *Countdown) Start(ctx context.Context) <-chan int {
	out := make(chan int)

	go func() {
		defer close(out)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			case <-ticker.C:
			}

			remaining, expired := c.Tick()
			select {
			case out <- remaining:
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			}
			if expired {
				return
			}
		}
	}()

	return out
}

func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Format renders seconds as MM:SS. Negative input renders as 00:00.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
