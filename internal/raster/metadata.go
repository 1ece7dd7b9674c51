package raster

import (
	"bytes"
	"image"
)

// DefaultDimension is assumed for width and height when metadata probing
// fails. Downstream geometry (padding, canvas sizing) falls back to a
// square of this size rather than aborting.
const DefaultDimension = 1024

// Metadata carries the probed dimensions of an image buffer.
//
// Width and Height are nil when probing could not determine them; use
// Dimensions to read them with defaults applied.
type Metadata struct {
	Width  *int
	Height *int
}

// Dimensions returns the probed width and height, substituting
// DefaultDimension for any value that could not be determined.
func (m Metadata) Dimensions() (width, height int) {
	width, height = DefaultDimension, DefaultDimension
	if m.Width != nil {
		width = *m.Width
	}
	if m.Height != nil {
		height = *m.Height
	}
	return width, height
}

// Probe reads the dimensions of an image buffer without decoding pixels.
//
// Probing failures are not errors: an undecodable buffer yields an empty
// Metadata whose Dimensions report the documented defaults.
func Probe(data []byte) Metadata {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metadata{}
	}
	w, h := cfg.Width, cfg.Height
	return Metadata{Width: &w, Height: &h}
}
