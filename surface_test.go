package blit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewSurface(w, h)
	require.NoError(t, err)
	return s
}

func TestNewSurface(t *testing.T) {
	s := mustSurface(t, 3, 2)
	w, h := s.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Len(t, s.Pixels(), 6)
	for _, p := range s.Pixels() {
		assert.Equal(t, Black, p)
	}
	assert.Equal(t, Rect{Width: 3, Height: 2}, s.Bounds())
}

func TestNewSurfaceInvalid(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 4}, {0, 0}} {
		_, err := NewSurface(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "%dx%d", dims[0], dims[1])
	}
}

func TestSurfacePixel(t *testing.T) {
	s := mustSurface(t, 4, 3)
	p := s.Pixel(3, 2)
	require.NotNil(t, p)
	*p = Red
	assert.Equal(t, Red, s.Pixels()[2*4+3])

	c, ok := s.At(3, 2)
	assert.True(t, ok)
	assert.Equal(t, Red, c)

	for _, xy := range [][2]int{{4, 0}, {0, 3}, {-1, 0}, {0, -1}, {100, 100}} {
		assert.Nil(t, s.Pixel(xy[0], xy[1]), "(%d, %d)", xy[0], xy[1])
		_, ok := s.At(xy[0], xy[1])
		assert.False(t, ok)
	}
}

func TestSurfaceFillAndClear(t *testing.T) {
	s := mustSurface(t, 2, 2)
	s.Fill(White)
	for _, p := range s.Pixels() {
		assert.Equal(t, White, p)
	}
	s.Clear()
	for _, p := range s.Pixels() {
		assert.Equal(t, Black, p)
	}
}

func TestCompositeTransparency(t *testing.T) {
	s := mustSurface(t, 3, 3)
	s.Fill(White)

	// 2x2 red with the top-left texel transparent.
	r, err := NewRaster(2, 2, []Texel{Transparent, OpaqueTexel(Red), OpaqueTexel(Red), OpaqueTexel(Red)})
	require.NoError(t, err)
	s.Composite(r, 1, 1)

	want := []RGB{
		White, White, White,
		White, White, Red,
		White, Red, Red,
	}
	assert.Equal(t, want, s.Pixels())
}

func TestCompositeOpaqueAtOrigin(t *testing.T) {
	s := mustSurface(t, 4, 3)
	s.Fill(White)
	s.Clear()

	texels := make([]Texel, 6)
	for i := range texels {
		texels[i] = OpaqueTexel(RGB{uint8(i * 10), 1, 2})
	}
	r, err := NewRaster(3, 2, texels)
	require.NoError(t, err)
	s.Composite(r, 0, 0)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got, _ := s.At(x, y)
			if texel, ok := r.At(x, y); ok {
				assert.Equal(t, texel.Color, got, "(%d, %d)", x, y)
			} else {
				assert.Equal(t, Black, got, "(%d, %d)", x, y)
			}
		}
	}
}

func TestCompositeClipsAtEdges(t *testing.T) {
	s := mustSurface(t, 4, 4)
	r, err := SolidRaster(3, 3, Red)
	require.NoError(t, err)

	s.Composite(r, 2, 2)
	s.Composite(r, -2, -2)
	s.Composite(r, 10, 10)

	red := 0
	for _, p := range s.Pixels() {
		if p == Red {
			red++
		}
	}
	// 2x2 at the bottom-right plus a single pixel at the origin.
	assert.Equal(t, 5, red)
	c, _ := s.At(0, 0)
	assert.Equal(t, Red, c)
	c, _ = s.At(1, 1)
	assert.Equal(t, Black, c)

	s.Composite(nil, 0, 0)
}

type recordDisplay struct {
	w, h    int
	commits int
	last    []RGB
	err     error
}

func (d *recordDisplay) Resolution() (int, int) { return d.w, d.h }

func (d *recordDisplay) Commit(pixels []RGB, w, h int) error {
	if d.err != nil {
		return d.err
	}
	d.commits++
	d.last = append(d.last[:0], pixels...)
	return nil
}

func TestSurfaceCommit(t *testing.T) {
	s := mustSurface(t, 2, 1)
	*s.Pixel(1, 0) = Red
	d := &recordDisplay{w: 2, h: 1}
	require.NoError(t, s.Commit(d))
	assert.Equal(t, 1, d.commits)
	assert.Equal(t, []RGB{Black, Red}, d.last)

	d.err = ErrDeviceLost
	err := s.Commit(d)
	assert.True(t, errors.Is(err, ErrDeviceLost))

	assert.ErrorIs(t, s.Commit(nil), ErrNoDevice)
}

func TestSurfaceImage(t *testing.T) {
	s := mustSurface(t, 2, 2)
	*s.Pixel(1, 1) = RGB{10, 20, 30}
	img := s.Image()
	assert.Equal(t, RGB{10, 20, 30}.NRGBA(), img.NRGBAAt(1, 1))
	assert.Equal(t, Black.NRGBA(), img.NRGBAAt(0, 0))
}
