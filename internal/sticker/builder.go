package sticker

import (
	"errors"
	"fmt"

	"github.com/ironsheep/sticker-export/internal/raster"
)

// Taxonomy of fatal pipeline failures. Both are wrapped with context at
// the point of failure; check with errors.Is.
var (
	// ErrDecode reports source bytes that are not a decodable raster
	// image. It is fatal only at the normalization stage; background
	// removal treats an undecodable source as a best-effort skip.
	ErrDecode = errors.New("source bytes are not a decodable image")

	// ErrEncode reports an encoder that could not produce output at any
	// ladder rung or at the fallback quality.
	ErrEncode = errors.New("encoder failed")
)

// Asset is one encoded sticker output. Immutable once produced.
type Asset struct {
	// Bytes is the final compressed buffer.
	Bytes []byte

	// Filename is sequence-based, never user-controlled.
	Filename string

	// ContentType matches the encoder's output format.
	ContentType string
}

// Builder converts one raw image byte buffer into a sticker Asset.
//
// The zero value is not usable; construct with NewBuilder, then adjust
// Encoder or Tolerance if needed. A Builder holds no per-build state and
// is safe for concurrent use.
type Builder struct {
	// Encoder produces the lossy output format (WebP in production;
	// tests inject stubs with deterministic byte lengths).
	Encoder Encoder

	// Tolerance is the background chroma-distance tolerance.
	Tolerance int
}

// NewBuilder returns a Builder with the production WebP encoder and the
// default background tolerance.
func NewBuilder() *Builder {
	return &Builder{
		Encoder:   WebPEncoder{},
		Tolerance: DefaultTolerance,
	}
}

// Build runs the full pipeline on one source buffer: decode, background
// removal, square normalization, budgeted encode.
//
// Background removal is best effort and never pipeline-fatal: when the
// source does not decode, the original buffer would continue down the
// pipeline unprocessed. Normalization needs pixels from that same buffer,
// so an undecodable source deterministically fails here with ErrDecode.
// Failures past that point (encoding) are fatal and propagated; there are
// no retries.
func (b *Builder) Build(data []byte) (*Asset, error) {
	meta := raster.Probe(data)

	rst, err := raster.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	RemoveBackground(rst, b.Tolerance)

	normalized := NormalizeSquare(rst.Image(), meta)

	out, err := EncodeBudgeted(b.Encoder, normalized)
	if err != nil {
		return nil, err
	}

	return &Asset{
		Bytes:       out,
		Filename:    "sticker." + b.Encoder.Extension(),
		ContentType: b.Encoder.ContentType(),
	}, nil
}
