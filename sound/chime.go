// Package sound plays a short tone whenever the pipeline resolves a bounce.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/blit"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays a sine tone. Create it with New, open the speaker with Init and
// hook it to a pipeline with Attach.
type Chime struct {
	freq     float64
	duration time.Duration
	volume   float64
	ready    bool
}

// New returns a chime at freq Hz lasting duration. volume is in beep's
// base-2 exponent units: 0 is unchanged, -1 halves the amplitude.
func New(freq float64, duration time.Duration, volume float64) (*Chime, error) {
	if freq <= 0 || freq >= float64(sampleRate)/2 {
		return nil, fmt.Errorf("chime frequency %.1f Hz out of range", freq)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("chime duration %v must be positive", duration)
	}
	return &Chime{freq: freq, duration: duration, volume: volume}, nil
}

// Init opens the speaker. Sound is optional, so callers usually log the error
// and run silent.
func (c *Chime) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.ready = true
	return nil
}

// tone builds the streamer for one chime.
func (c *Chime) tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(c.duration), sine),
		Base:     2,
		Volume:   c.volume,
	}, nil
}

// Play queues one chime on the speaker. It does nothing until Init succeeds.
func (c *Chime) Play() {
	if !c.ready {
		return
	}
	s, err := c.tone()
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Attach plays the chime on every bounce resolved by p.
func (c *Chime) Attach(p *blit.Pipeline) blit.CallbackHandle {
	return p.OnBounce(func(blit.BounceEvent) { c.Play() })
}
