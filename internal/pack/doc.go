// Package pack batches single-sticker builds into a zip archive with a
// JSON manifest.
//
// A pack build processes at most 30 inputs in input order, assigns each
// asset a zero-padded sequence filename (001.webp, 002.webp, ...), and
// packages the assets together with a pack.json manifest describing name,
// author, cover, and the ordered sticker list.
//
// Item processing runs under a bounded-concurrency executor. The default
// bound of 1 keeps processing strictly sequential; any bound keeps
// filenames deterministic by input index, never by completion order. A
// failure on any item aborts the whole build; partial packs are never
// produced.
package pack
