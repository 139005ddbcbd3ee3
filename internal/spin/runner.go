package spin

import (
	"context"
	"time"
)

// Runner is a Scheduler that drives one controller from the calling
// goroutine using timers, for hosts without a render loop.
type Runner struct {
	frame     time.Duration
	requested bool
	wait      time.Duration
}

// NewRunner returns a Runner ticking every frame interval while the wheel moves.
func NewRunner(frame time.Duration) *Runner {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &Runner{frame: frame}
}

func (r *Runner) RequestFrame() {
	r.requested = true
	r.wait = r.frame
}

func (r *Runner) RequestAfter(d time.Duration) {
	r.requested = true
	r.wait = d
}

// Run starts c, cruises for the given duration, stops, and returns once the
// cycle is back to Idle. c must have been created with r as its Scheduler.
func (r *Runner) Run(ctx context.Context, c *Controller, cruise time.Duration) error {
	r.requested = false
	if err := c.Start(); err != nil {
		return err
	}

	stop := time.NewTimer(cruise)
	defer stop.Stop()

	timer := r.arm()
	for timer != nil {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-stop.C:
			if err := c.Stop(); err != nil {
				timer.Stop()
				return err
			}
		case now := <-timer.C:
			c.Tick(now)
			timer = r.arm()
		}
	}
	return nil
}

func (r *Runner) arm() *time.Timer {
	if !r.requested {
		return nil
	}
	r.requested = false
	return time.NewTimer(r.wait)
}
