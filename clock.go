package blit

import (
	"sync"
	"time"
)

// TickSource is a monotonic hardware counter. Frequency is the number of
// ticks per second.
type TickSource interface {
	ReadTicks() uint64
	Frequency() uint64
}

// Clock converts a TickSource into elapsed wall-clock time since creation.
// The counter is assumed not to wrap while the process runs.
type Clock struct {
	source  TickSource
	start   uint64
	elapsed time.Duration
}

// NewClock captures the current tick count as the start point.
func NewClock(source TickSource) *Clock {
	return &Clock{source: source, start: source.ReadTicks()}
}

// Update reads the counter and returns the time elapsed since NewClock.
func (c *Clock) Update() time.Duration {
	c.elapsed = ticksToDuration(c.source.ReadTicks()-c.start, c.source.Frequency())
	return c.elapsed
}

// Elapsed returns the value computed by the most recent Update.
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

func ticksToDuration(ticks, freq uint64) time.Duration {
	if freq == 0 {
		return 0
	}
	secs := ticks / freq
	rem := ticks % freq
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/freq)
}

// ManualTicks is a TickSource advanced by hand, for tests and deterministic
// replays.
type ManualTicks struct {
	mu    sync.Mutex
	ticks uint64
	freq  uint64
}

// NewManualTicks returns a source at tick 0 running at freq ticks per second.
func NewManualTicks(freq uint64) *ManualTicks {
	return &ManualTicks{freq: freq}
}

func (m *ManualTicks) ReadTicks() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}

func (m *ManualTicks) Frequency() uint64 {
	return m.freq
}

// Advance moves the counter forward by d.
func (m *ManualTicks) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d <= 0 {
		return
	}
	secs := uint64(d / time.Second)
	rem := uint64(d % time.Second)
	m.ticks += secs*m.freq + rem*m.freq/uint64(time.Second)
}
