package sticker

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/sticker-export/internal/raster"
)

// DefaultTolerance is the chroma-distance tolerance used when a Builder
// is created with NewBuilder. A pixel is considered background when the
// squared Euclidean RGB distance to the reference color is at most
// tolerance squared (28 -> 784).
const DefaultTolerance = 28

// ReferenceColor is the background color estimated from the image corners.
//
// Hex carries the same color as "#rrggbb" for logging and diagnostics.
type ReferenceColor struct {
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	Hex string `json:"hex"`
}

// RemoveBackground clears the alpha of background-colored pixels in place
// and returns the reference color it matched against.
//
// The reference color is the coordinate-wise mean of the RGB values of the
// four corner pixels; alpha is ignored when sampling. Every pixel whose
// squared RGB distance to the reference is <= tolerance*tolerance has its
// alpha set to 0. No other channel is ever written.
//
// This is chroma-distance removal, not flood fill: there is no
// connectivity analysis, so isolated interior pixels that happen to match
// the sampled color are cleared too. A 1x1 image samples itself as all
// four corners and therefore clears itself entirely.
func RemoveBackground(rst *raster.Raster, tolerance int) ReferenceColor {
	ref := sampleReference(rst)
	threshold := tolerance * tolerance

	for i := 0; i < len(rst.Pix); i += raster.Channels {
		dr := int(rst.Pix[i]) - int(ref.R)
		dg := int(rst.Pix[i+1]) - int(ref.G)
		db := int(rst.Pix[i+2]) - int(ref.B)
		if dr*dr+dg*dg+db*db <= threshold {
			rst.Pix[i+3] = 0
		}
	}
	return ref
}

// sampleReference averages the RGB values of the four corner pixels.
// The mean is computed per channel with truncating integer division.
func sampleReference(rst *raster.Raster) ReferenceColor {
	corners := [4][2]int{
		{0, 0},
		{rst.Width - 1, 0},
		{0, rst.Height - 1},
		{rst.Width - 1, rst.Height - 1},
	}

	var sumR, sumG, sumB int
	for _, c := range corners {
		r, g, b, _ := rst.At(c[0], c[1])
		sumR += int(r)
		sumG += int(g)
		sumB += int(b)
	}

	ref := ReferenceColor{
		R: uint8(sumR / 4),
		G: uint8(sumG / 4),
		B: uint8(sumB / 4),
	}
	ref.Hex = colorful.Color{
		R: float64(ref.R) / 255.0,
		G: float64(ref.G) / 255.0,
		B: float64(ref.B) / 255.0,
	}.Hex()
	return ref
}
