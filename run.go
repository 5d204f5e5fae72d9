package blit

import (
	"context"
	"time"
)

// RunOptions controls the top-level loop.
type RunOptions struct {
	// TPS paces the loop to this many ticks per second. Zero runs flat out.
	TPS int
	// MaxTicks stops the loop after this many ticks. Zero means no limit.
	MaxTicks uint64
	// Until is checked after every tick; returning true stops the loop.
	Until func() bool
}

// Run is the process's main loop: it calls p.Tick until ctx is cancelled or a
// stop condition in opts holds. Cancellation is observed only between ticks;
// a tick in progress always completes. Run returns ctx.Err() when cancelled
// and nil otherwise.
func Run(ctx context.Context, p *Pipeline, opts RunOptions) error {
	var period time.Duration
	if opts.TPS > 0 {
		period = time.Second / time.Duration(opts.TPS)
	}

	start := p.clock.Update()
	var n uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.Tick()
		n++

		if opts.MaxTicks > 0 && n >= opts.MaxTicks {
			return nil
		}
		if opts.Until != nil && opts.Until() {
			return nil
		}

		if period > 0 {
			// Schedule against the start of the run so slow ticks are
			// caught up instead of accumulating drift.
			next := start + time.Duration(n)*period
			if wait := next - p.clock.Update(); wait > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(wait):
				}
			}
		}
	}
}
