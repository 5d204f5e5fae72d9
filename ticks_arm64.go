//go:build arm64

package blit

// cntvct reads the virtual counter register. Implemented in ticks_arm64.s.
func cntvct() uint64

// cntfrq reads the counter frequency register set by firmware.
func cntfrq() uint64

type cntvctSource struct{}

func (cntvctSource) ReadTicks() uint64 {
	return cntvct()
}

func (cntvctSource) Frequency() uint64 {
	return cntfrq()
}

// HardwareTicks returns the platform tick counter: CNTVCT_EL0 on arm64.
func HardwareTicks() TickSource {
	return cntvctSource{}
}
