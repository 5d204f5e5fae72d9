//go:build !amd64 && !arm64

package blit

import "time"

var monotonicEpoch = time.Now()

type monotonicSource struct{}

func (monotonicSource) ReadTicks() uint64 {
	return uint64(time.Since(monotonicEpoch))
}

func (monotonicSource) Frequency() uint64 {
	return uint64(time.Second)
}

// HardwareTicks returns the platform tick counter. Architectures without a
// dedicated counter use the runtime's monotonic clock in nanoseconds.
func HardwareTicks() TickSource {
	return monotonicSource{}
}
