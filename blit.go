package blit

import (
	"errors"
	"image/color"
)

// RGB is an opaque 8-bit-per-channel color. The zero value is black.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
)

// NRGBA converts the color to a fully opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Lerp linearly interpolates between c and to. t is clamped to [0, 1].
func (c RGB) Lerp(to RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB{mix(c.R, to.R), mix(c.G, to.G), mix(c.B, to.B)}
}

// Brighten adds delta to every channel, saturating at 0 and 255.
func (c RGB) Brighten(delta int) RGB {
	ch := func(v uint8) uint8 {
		return uint8(min(max(int(v)+delta, 0), 255))
	}
	return RGB{ch(c.R), ch(c.G), ch(c.B)}
}

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other share at least one pixel.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Axis is a bitmask of motion axes.
type Axis uint8

const (
	AxisX Axis = 1 << iota // horizontal
	AxisY                  // vertical
)

// Has reports whether every axis in other is set in a.
func (a Axis) Has(other Axis) bool {
	return a&other == other
}

// Setup errors. These are fatal: the loop cannot produce a valid frame
// without a display, a surface or the sprite assets.
var (
	ErrNoDevice          = errors.New("blit: device unavailable")
	ErrInvalidSize       = errors.New("blit: invalid size")
	ErrUnsupportedFormat = errors.New("blit: unsupported image format")
)

// ErrDeviceLost is returned by Display implementations whose underlying
// handle is no longer valid. The pipeline logs it and keeps ticking.
var ErrDeviceLost = errors.New("blit: display device lost")
