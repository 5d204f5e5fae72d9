package blit

import (
	"fmt"
	"image"
)

// Display is the hardware side of a Surface. Resolution is read once when the
// pipeline is created; Commit receives the whole buffer every tick.
type Display interface {
	Resolution() (width, height int)
	Commit(pixels []RGB, width, height int) error
}

// Surface is an off-screen framebuffer. It is mutated in place by Clear, Fill
// and Composite, and transferred to a Display by Commit.
type Surface struct {
	width  int
	height int
	pixels []RGB
}

// NewSurface allocates a width×height surface with every pixel black.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new surface %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Surface{
		width:  width,
		height: height,
		pixels: make([]RGB, width*height),
	}, nil
}

// Size returns the width and height of the surface.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Bounds returns the surface rectangle anchored at the origin.
func (s *Surface) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Pixels returns the backing buffer in row-major order. The slice aliases the
// surface and MUST NOT be retained past the current tick.
func (s *Surface) Pixels() []RGB {
	return s.pixels
}

// Pixel returns a pointer to the pixel at (x, y), or nil when the coordinate
// is outside the surface. It never panics.
func (s *Surface) Pixel(x, y int) *RGB {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return nil
	}
	return &s.pixels[y*s.width+x]
}

// At returns the color at (x, y) and whether the coordinate is inside.
func (s *Surface) At(x, y int) (RGB, bool) {
	p := s.Pixel(x, y)
	if p == nil {
		return RGB{}, false
	}
	return *p, true
}

// Clear sets every pixel to black.
func (s *Surface) Clear() {
	s.Fill(Black)
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c RGB) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// Composite copies every opaque texel of r onto the surface with the raster's
// top-left corner at (x, y). Transparent texels leave the destination alone
// and texels falling outside the surface are dropped.
func (s *Surface) Composite(r *Raster, x, y int) {
	if r == nil {
		return
	}
	for ty := 0; ty < r.height; ty++ {
		row := r.texels[ty*r.width : (ty+1)*r.width]
		for tx, t := range row {
			if !t.Opaque {
				continue
			}
			if p := s.Pixel(x+tx, y+ty); p != nil {
				*p = t.Color
			}
		}
	}
}

// Commit transfers the whole buffer to the display in one call.
func (s *Surface) Commit(d Display) error {
	if d == nil {
		return ErrNoDevice
	}
	if err := d.Commit(s.pixels, s.width, s.height); err != nil {
		return fmt.Errorf("commit %dx%d: %w", s.width, s.height, err)
	}
	return nil
}

// Image returns a copy of the surface as an opaque NRGBA image.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, c := range s.pixels {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}
	return img
}
