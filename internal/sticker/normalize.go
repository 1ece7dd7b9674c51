package sticker

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/sticker-export/internal/raster"
)

// OutputSize is the fixed edge length of every normalized sticker raster.
const OutputSize = 512

// NormalizeSquare pads an image to a square canvas and resizes it to the
// fixed OutputSize x OutputSize resolution.
//
// Padding amounts derive from the dimensions meta reports (falling back to
// 1024x1024 when probing failed) and extend the image to a
// max(width, height) square: fully transparent fill, top/left taking the
// floor of any odd split. The final resize uses a cover fit: scale to fill
// the target and crop any overflow. Since the padded source is already
// square this normally reduces to a plain scale; the fit policy still
// affects pixel-level output on non-integer scale ratios.
func NormalizeSquare(img image.Image, meta raster.Metadata) *image.NRGBA {
	width, height := meta.Dimensions()
	top, bottom, left, right := padOffsets(width, height)

	b := img.Bounds()
	canvas := imaging.New(b.Dx()+left+right, b.Dy()+top+bottom, color.NRGBA{})
	padded := imaging.Paste(canvas, img, image.Pt(left, top))

	return imaging.Fill(padded, OutputSize, OutputSize, imaging.Center, imaging.Lanczos)
}

// padOffsets returns the transparent padding that centers a width x height
// raster on a max(width, height) square. Top and left take the floor of an
// odd split, bottom and right the ceiling, so top+bottom == maxSide-height
// and left+right == maxSide-width always hold.
func padOffsets(width, height int) (top, bottom, left, right int) {
	maxSide := width
	if height > maxSide {
		maxSide = height
	}
	top = (maxSide - height) / 2
	bottom = maxSide - height - top
	left = (maxSide - width) / 2
	right = maxSide - width - left
	return top, bottom, left, right
}
