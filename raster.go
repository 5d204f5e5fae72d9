package blit

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// Texel is one element of a Raster. The zero value is the transparent marker.
type Texel struct {
	Color  RGB
	Opaque bool
}

// Transparent is the texel that Composite never writes.
var Transparent = Texel{}

// OpaqueTexel returns an opaque texel of color c.
func OpaqueTexel(c RGB) Texel {
	return Texel{Color: c, Opaque: true}
}

// Raster is a decoded image with binary transparency. It is immutable after
// construction and may be shared by any number of entities.
type Raster struct {
	width  int
	height int
	texels []Texel
}

// NewRaster builds a raster from row-major texels. len(texels) must equal
// width*height.
func NewRaster(width, height int, texels []Texel) (*Raster, error) {
	if width <= 0 || height <= 0 || len(texels) != width*height {
		return nil, fmt.Errorf("new raster %dx%d with %d texels: %w", width, height, len(texels), ErrInvalidSize)
	}
	own := make([]Texel, len(texels))
	copy(own, texels)
	return &Raster{width: width, height: height, texels: own}, nil
}

// SolidRaster returns a fully opaque width×height raster of color c.
func SolidRaster(width, height int, c RGB) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid raster %dx%d: %w", width, height, ErrInvalidSize)
	}
	texels := make([]Texel, width*height)
	for i := range texels {
		texels[i] = OpaqueTexel(c)
	}
	return &Raster{width: width, height: height, texels: texels}, nil
}

// DiscRaster returns a diameter×diameter raster holding a filled circle of
// color c on a transparent background.
func DiscRaster(diameter int, c RGB) (*Raster, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("disc raster %d: %w", diameter, ErrInvalidSize)
	}
	texels := make([]Texel, diameter*diameter)
	// Work in doubled coordinates so the center lands on a texel boundary
	// for even diameters.
	r2 := diameter * diameter
	for y := 0; y < diameter; y++ {
		dy := 2*y + 1 - diameter
		for x := 0; x < diameter; x++ {
			dx := 2*x + 1 - diameter
			if dx*dx+dy*dy <= r2 {
				texels[y*diameter+x] = OpaqueTexel(c)
			}
		}
	}
	return &Raster{width: diameter, height: diameter, texels: texels}, nil
}

// IHDR field offsets: 8-byte signature, chunk length and type, then width
// and height.
const (
	pngDepthOffset     = 24
	pngColorTypeOffset = 25
	pngColorRGBA       = 6
)

// DecodeRaster decodes a PNG with 8-bit RGBA channels. Texels with alpha 0
// become transparent; every other texel is opaque with its RGB channels kept
// as-is. Any other bit depth or channel layout yields ErrUnsupportedFormat.
func DecodeRaster(data []byte) (*Raster, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	// The decoder widens gray+alpha and RGB with a tRNS chunk to NRGBA as
	// well, so the layout is read from the header itself.
	depth, colorType := data[pngDepthOffset], data[pngColorTypeOffset]
	if depth != 8 || colorType != pngColorRGBA {
		return nil, fmt.Errorf("decode raster: bit depth %d, color type %d: %w", depth, colorType, ErrUnsupportedFormat)
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		return nil, fmt.Errorf("decode raster: %T: %w", img, ErrUnsupportedFormat)
	}
	return RasterFromImage(nrgba)
}

// MustDecodeRaster is like DecodeRaster but panics on error. Use it for assets
// embedded at build time.
func MustDecodeRaster(data []byte) *Raster {
	r, err := DecodeRaster(data)
	if err != nil {
		panic(err)
	}
	return r
}

// RasterFromImage converts a straight-alpha image into a raster using the
// same alpha-0 cutout rule as DecodeRaster.
func RasterFromImage(img *image.NRGBA) (*Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster from image %dx%d: %w", w, h, ErrInvalidSize)
	}
	texels := make([]Texel, 0, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			if row[i+3] == 0 {
				texels = append(texels, Transparent)
				continue
			}
			texels = append(texels, OpaqueTexel(RGB{row[i], row[i+1], row[i+2]}))
		}
	}
	return &Raster{width: w, height: h, texels: texels}, nil
}

// Size returns the raster's footprint.
func (r *Raster) Size() (width, height int) {
	return r.width, r.height
}

// At returns the texel at (x, y) and whether the coordinate is inside.
func (r *Raster) At(x, y int) (Texel, bool) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return Transparent, false
	}
	return r.texels[y*r.width+x], true
}

// Image returns the raster as an NRGBA image with transparent texels at
// alpha 0.
func (r *Raster) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	for i, t := range r.texels {
		if !t.Opaque {
			continue
		}
		o := i * 4
		img.Pix[o] = t.Color.R
		img.Pix[o+1] = t.Color.G
		img.Pix[o+2] = t.Color.B
		img.Pix[o+3] = 0xff
	}
	return img
}

// Scale returns a copy enlarged by an integer factor with nearest-neighbour
// sampling, so transparency stays binary. A factor of 1 returns r itself.
func (r *Raster) Scale(factor int) (*Raster, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("scale raster by %d: %w", factor, ErrInvalidSize)
	}
	if factor == 1 {
		return r, nil
	}
	src := r.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, r.width*factor, r.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return RasterFromImage(dst)
}
