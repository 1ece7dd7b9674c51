package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Channels is the number of channels per pixel after decoding: R, G, B, A.
const Channels = 4

// Raster is a decoded pixel buffer in width x height x channel form.
//
// Pix holds straight (non-premultiplied) RGBA bytes in row-major order;
// the pixel at (x, y) starts at Pix[(y*Width+x)*Channels]. The buffer is
// exclusively owned: Decode and FromImage always copy, so in-place
// mutation never aliases a caller's image.
//
// Invariant: len(Pix) == Width * Height * Channels.
type Raster struct {
	Pix    []uint8
	Width  int
	Height int
}

// Decode decodes an image byte buffer of unknown format into a Raster.
//
// Supported formats are PNG, JPEG, GIF, and WebP. The format is detected
// from the buffer contents, not from any filename or content-type hint.
//
// Returns an error if the bytes are not a decodable raster image.
func Decode(data []byte) (*Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into a freshly allocated Raster.
//
// The pixel data is always copied, even when the source is already an
// 8-bit RGBA image, so the returned Raster can be mutated freely.
func FromImage(img image.Image) *Raster {
	// imaging.Clone produces a tightly packed *image.NRGBA anchored at
	// (0, 0), which is exactly the Pix layout Raster requires.
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	r := &Raster{
		Pix:    make([]uint8, b.Dx()*b.Dy()*Channels),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	copy(r.Pix, nrgba.Pix)
	return r
}

// Image wraps the raster's buffer as an *image.NRGBA without copying.
//
// The returned image shares the Pix buffer; mutating the raster after
// calling Image is visible through it. Callers that need isolation should
// use FromImage on the result.
func (r *Raster) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Pix,
		Stride: r.Width * Channels,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// At returns the straight RGBA components of the pixel at (x, y).
// Coordinates are 0-based with origin at the top-left corner.
func (r *Raster) At(x, y int) (red, green, blue, alpha uint8) {
	i := (y*r.Width + x) * Channels
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2], r.Pix[i+3]
}
