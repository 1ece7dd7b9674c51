// Package raster provides the decode primitives for the sticker pipeline.
//
// A Raster is a flat, exclusively owned RGBA pixel buffer; Decode turns an
// arbitrary-format image byte buffer (PNG, JPEG, GIF, or WebP) into one,
// and Probe reads dimensions without a full pixel decode.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward and Y increases downward.
//
// # Ownership
//
// Every constructor copies pixel data, so rasters may be mutated in place
// without aliasing the source image. The one exception is Raster.Image,
// which deliberately shares the buffer for zero-copy handoff to encoders.
package raster
