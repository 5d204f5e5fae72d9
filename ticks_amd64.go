//go:build amd64

package blit

import (
	"sync"
	"time"
)

// rdtsc reads the time-stamp counter. Implemented in ticks_amd64.s.
func rdtsc() uint64

type tscSource struct{}

var (
	tscOnce sync.Once
	tscFreq uint64
)

// calibrationWindow is how long the TSC is measured against the runtime's
// monotonic clock to derive its frequency.
const calibrationWindow = 20 * time.Millisecond

func (tscSource) ReadTicks() uint64 {
	return rdtsc()
}

func (tscSource) Frequency() uint64 {
	tscOnce.Do(func() {
		t0, c0 := time.Now(), rdtsc()
		time.Sleep(calibrationWindow)
		c1, dt := rdtsc(), time.Since(t0)
		tscFreq = (c1 - c0) * uint64(time.Second) / uint64(dt)
		if tscFreq == 0 {
			tscFreq = 1
		}
	})
	return tscFreq
}

// HardwareTicks returns the platform tick counter: the TSC on amd64.
func HardwareTicks() TickSource {
	return tscSource{}
}
