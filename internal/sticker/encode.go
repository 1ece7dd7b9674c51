package sticker

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Encoder is the lossy encoding capability the pipeline builds on.
//
// Implementations must be safe for concurrent use; the pipeline may share
// one Encoder across parallel builds.
type Encoder interface {
	// Encode converts the image to bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)

	// Extension returns the file extension without dot, e.g. "webp".
	Extension() string

	// ContentType returns the MIME type of encoded output.
	ContentType() string
}

// qualityLadder is tried in order until an encode fits the size budget.
// The order and values are part of the pipeline contract: changing them
// changes the observable output size distribution.
var qualityLadder = [...]int{90, 80, 70, 60, 50, 40}

const (
	// sizeBudget is the target upper bound on encoded sticker bytes.
	sizeBudget = 100 * 1024

	// fallbackQuality is used for one last unconditional encode when no
	// ladder rung fits the budget. That result may exceed the budget;
	// the contract is best effort, not guaranteed.
	fallbackQuality = 35
)

// EncodeBudgeted encodes img at decreasing quality levels and returns the
// first result strictly under the 100 KiB size budget.
//
// If no rung of the quality ladder fits, the raster is encoded once more
// at quality 35 and that result is returned even when over budget. An
// encoder failure at any quality is fatal and reported as ErrEncode.
func EncodeBudgeted(enc Encoder, img image.Image) ([]byte, error) {
	for _, quality := range qualityLadder {
		out, err := enc.Encode(img, quality)
		if err != nil {
			return nil, fmt.Errorf("%w: quality %d: %v", ErrEncode, quality, err)
		}
		if len(out) < sizeBudget {
			return out, nil
		}
	}

	out, err := enc.Encode(img, fallbackQuality)
	if err != nil {
		return nil, fmt.Errorf("%w: fallback quality %d: %v", ErrEncode, fallbackQuality, err)
	}
	return out, nil
}

// WebPEncoder encodes images as lossy WebP via libwebp.
type WebPEncoder struct{}

// Encode compresses img as lossy WebP at the given quality.
//
// libwebp accepts only 8-bit RGBA input, so the image is converted first;
// for the pipeline's own rasters the conversion is a plain copy.
func (WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder options: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, clone.AsRGBA(img), opts); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns "webp".
func (WebPEncoder) Extension() string { return "webp" }

// ContentType returns "image/webp".
func (WebPEncoder) ContentType() string { return "image/webp" }
