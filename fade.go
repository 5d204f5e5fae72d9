package blit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// backgroundFade animates the clear color between two palette entries. The
// tween runs in tick units: Update advances it by exactly one tick.
type backgroundFade struct {
	from, to RGB
	tween    *gween.Tween
	current  RGB
}

func newBackgroundFade(initial RGB) *backgroundFade {
	return &backgroundFade{from: initial, to: initial, current: initial}
}

// Start fades from the current color to target over ticks ticks. Zero ticks
// switches immediately.
func (f *backgroundFade) Start(target RGB, ticks int, fn ease.TweenFunc) {
	if ticks <= 0 {
		f.from, f.to, f.current = target, target, target
		f.tween = nil
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	f.from, f.to = f.current, target
	f.tween = gween.New(0, 1, float32(ticks), fn)
}

// Shift brightens the displayed color and both fade endpoints by delta,
// saturating per channel. A fade in progress keeps running.
func (f *backgroundFade) Shift(delta int) {
	f.from = f.from.Brighten(delta)
	f.to = f.to.Brighten(delta)
	f.current = f.current.Brighten(delta)
}

// Update advances the fade by one tick and returns the color to clear with.
func (f *backgroundFade) Update() RGB {
	if f.tween == nil {
		return f.current
	}
	t, done := f.tween.Update(1)
	f.current = f.from.Lerp(f.to, float64(t))
	if done {
		f.current = f.to
		f.tween = nil
	}
	return f.current
}

// Active reports whether a fade is in progress.
func (f *backgroundFade) Active() bool {
	return f.tween != nil
}
