package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/blit"
)

// Display is a blit.Display backed by an ebiten.Image. Commit uploads the
// framebuffer; the game's Draw copies it to the window.
type Display struct {
	width, height int
	img           *ebiten.Image
	pix           []byte
}

// NewDisplay creates a display with a fixed logical resolution. The window
// may be larger; ebiten scales the image to fit.
func NewDisplay(width, height int) (*Display, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ebiten display %dx%d: %w", width, height, blit.ErrInvalidSize)
	}
	return &Display{
		width:  width,
		height: height,
		img:    ebiten.NewImage(width, height),
		pix:    make([]byte, 4*width*height),
	}, nil
}

// Resolution implements blit.Display.
func (d *Display) Resolution() (int, int) {
	return d.width, d.height
}

// Commit implements blit.Display.
func (d *Display) Commit(pixels []blit.RGB, width, height int) error {
	if d.img == nil {
		return blit.ErrDeviceLost
	}
	if width != d.width || height != d.height || len(pixels) != width*height {
		return fmt.Errorf("ebiten commit %dx%d on %dx%d: %w", width, height, d.width, d.height, blit.ErrDeviceLost)
	}
	for i, p := range pixels {
		o := i * 4
		d.pix[o] = p.R
		d.pix[o+1] = p.G
		d.pix[o+2] = p.B
		d.pix[o+3] = 0xff
	}
	d.img.WritePixels(d.pix)
	return nil
}

// Image returns the image holding the last committed frame.
func (d *Display) Image() *ebiten.Image {
	return d.img
}

// Dispose releases the GPU image. Later commits fail with ErrDeviceLost.
func (d *Display) Dispose() {
	if d.img != nil {
		d.img.Deallocate()
		d.img = nil
	}
}
