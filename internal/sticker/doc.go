// Package sticker implements the single-sticker export pipeline.
//
// The pipeline turns an arbitrary source image buffer into a
// background-stripped, square, size-budgeted WebP asset in four stages:
//
//  1. Decode the buffer into an owned RGBA raster (package raster).
//  2. Background removal: estimate a reference color from the four image
//     corners and clear the alpha of every pixel within a chroma-distance
//     tolerance of it. Best effort; never fatal.
//  3. Square normalization: pad to a transparent square canvas and resize
//     to 512x512 with a cover fit.
//  4. Budgeted encoding: walk the quality ladder [90..40] and return the
//     first encode under 100 KiB, or one final quality-35 encode that may
//     exceed the budget.
//
// # Background Removal Semantics
//
// Removal is pure chroma distance, with no connected-component analysis.
// Interior pixels that happen to match the sampled background color are
// cleared as well; that is an accepted approximation of the pipeline, not
// a defect. Only the alpha channel is ever modified.
//
// # Error Handling
//
// An undecodable source fails with ErrDecode at the normalization stage;
// encoder failures surface as ErrEncode. An over-budget fallback encode is
// valid output, not an error.
//
// # Thread Safety
//
// Builders hold no per-build state. Each Build call operates on its own
// buffers, so independent builds may run concurrently.
package sticker
