package blit

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// DigestDisplay is a headless Display. Each commit hashes the frame together
// with the previous digest, so the final value fingerprints the whole run.
type DigestDisplay struct {
	width, height int
	digest        uint64
	frames        int
	buf           []byte
	last          []RGB
}

// NewDigestDisplay returns a headless display reporting the given resolution.
func NewDigestDisplay(width, height int) *DigestDisplay {
	return &DigestDisplay{width: width, height: height}
}

// Resolution implements Display.
func (d *DigestDisplay) Resolution() (int, int) {
	return d.width, d.height
}

// Commit implements Display.
func (d *DigestDisplay) Commit(pixels []RGB, width, height int) error {
	if width != d.width || height != d.height || len(pixels) != width*height {
		return fmt.Errorf("digest commit %dx%d on %dx%d display: %w", width, height, d.width, d.height, ErrDeviceLost)
	}

	need := 8 + 3*len(pixels)
	if cap(d.buf) < need {
		d.buf = make([]byte, need)
	}
	d.buf = d.buf[:need]
	binary.LittleEndian.PutUint64(d.buf, d.digest)
	i := 8
	for _, p := range pixels {
		d.buf[i], d.buf[i+1], d.buf[i+2] = p.R, p.G, p.B
		i += 3
	}
	d.digest = xxhash.Sum64(d.buf)
	d.frames++

	d.last = append(d.last[:0], pixels...)
	return nil
}

// Hash returns the chained digest as hex.
func (d *DigestDisplay) Hash() string {
	return fmt.Sprintf("%016x", d.digest)
}

// Frames returns the number of successful commits.
func (d *DigestDisplay) Frames() int {
	return d.frames
}

// LastFrame returns a copy of the most recently committed pixels.
func (d *DigestDisplay) LastFrame() []RGB {
	out := make([]RGB, len(d.last))
	copy(out, d.last)
	return out
}

// Reset clears the chained digest and frame count.
func (d *DigestDisplay) Reset() {
	d.digest = 0
	d.frames = 0
	d.last = d.last[:0]
}
