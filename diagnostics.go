package blit

import (
	"time"

	"go.uber.org/zap"
)

// DefaultDiagnosticsPeriod is how often frame timing is reported.
const DefaultDiagnosticsPeriod = time.Second

// Diagnostics counts ticks and reports the average frame time and rate once
// per period. It reads time only from the pipeline clock.
type Diagnostics struct {
	period    time.Duration
	log       *zap.Logger
	frames    int
	last      time.Duration
	fps       float64
	frameTime time.Duration
}

// NewDiagnostics returns a reporter logging to log every period.
func NewDiagnostics(period time.Duration, log *zap.Logger) *Diagnostics {
	if period <= 0 {
		period = DefaultDiagnosticsPeriod
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Diagnostics{period: period, log: log}
}

// Sample records one tick at clock time now.
func (d *Diagnostics) Sample(now time.Duration) {
	d.frames++
	window := now - d.last
	if window <= d.period {
		return
	}

	d.frameTime = window / time.Duration(d.frames)
	d.fps = float64(d.frames) / window.Seconds()
	d.log.Info("frame timing",
		zap.Float64("fps", d.fps),
		zap.Duration("frame_time", d.frameTime),
		zap.Int("frames", d.frames),
	)

	d.frames = 0
	d.last = now
}

// FPS returns the rate computed at the last report.
func (d *Diagnostics) FPS() float64 {
	return d.fps
}

// FrameTime returns the average frame time computed at the last report.
func (d *Diagnostics) FrameTime() time.Duration {
	return d.frameTime
}
