package blit

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-step timings for one tick.
// Only populated when the pipeline is in debug mode.
type debugStats struct {
	sample    time.Duration
	input     time.Duration
	integrate time.Duration
	bounce    time.Duration
	clear     time.Duration
	composite time.Duration
	commit    time.Duration
	sprites   int
}

func (s debugStats) total() time.Duration {
	return s.sample + s.input + s.integrate + s.bounce + s.clear + s.composite + s.commit
}

// debugLog writes the step timings at debug level.
func (p *Pipeline) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	p.log.Debug("tick timing",
		zap.Uint64("tick", p.ticks),
		zap.Duration("sample", stats.sample),
		zap.Duration("input", stats.input),
		zap.Duration("integrate", stats.integrate),
		zap.Duration("bounce", stats.bounce),
		zap.Duration("clear", stats.clear),
		zap.Duration("composite", stats.composite),
		zap.Duration("commit", stats.commit),
		zap.Duration("total", stats.total()),
		zap.Int("sprites", stats.sprites),
	)
}
