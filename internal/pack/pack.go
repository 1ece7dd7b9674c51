package pack

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/sticker-export/internal/sticker"
)

const (
	// MaxStickers caps how many inputs one pack build will process;
	// extra inputs are silently ignored.
	MaxStickers = 30

	// ArchiveFilename is the fixed output filename for a pack archive.
	ArchiveFilename = "whatsapp-pack.zip"

	// ArchiveContentType is the MIME type of a pack archive.
	ArchiveContentType = "application/zip"
)

// ErrNoInputs reports a pack build invoked with an empty input list.
var ErrNoInputs = errors.New("pack build requires at least one input")

// Archive is a serialized sticker pack: every asset's bytes under its
// filename plus the JSON manifest under ManifestFilename.
type Archive struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// Builder batches single-sticker builds into a packaged archive.
//
// A Builder holds no per-build state and is safe for concurrent use by
// independent Build calls.
type Builder struct {
	// Sticker runs the per-item pipeline.
	Sticker *sticker.Builder

	// Archive serializes the finished entries; ZipWriter in production.
	Archive ArchiveWriter

	// Concurrency bounds how many items are processed at once. Values
	// below 1 are treated as 1: strictly sequential, which also bounds
	// peak memory to roughly one decoded raster. Output filenames are
	// ordered by input index regardless of the bound.
	Concurrency int
}

// NewBuilder returns a Builder with the production sticker pipeline, zip
// packaging, and sequential processing.
func NewBuilder() *Builder {
	return &Builder{
		Sticker:     sticker.NewBuilder(),
		Archive:     ZipWriter{},
		Concurrency: 1,
	}
}

// Build converts at most MaxStickers inputs, in input order, into one
// pack archive.
//
// Each asset is named by its 1-based input sequence: "001.webp",
// "002.webp", ... The manifest's cover resolves to the coverIndex'th
// filename, falling back to the first on an out-of-range index. The first
// unrecovered per-item failure aborts the whole build; no partial archive
// is ever returned.
func (b *Builder) Build(inputs [][]byte, name, author string, coverIndex int) (*Archive, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	if len(inputs) > MaxStickers {
		inputs = inputs[:MaxStickers]
	}

	// Results land in index-ordered slices so filenames stay
	// deterministic even when the group runs items in parallel.
	assets := make([]*sticker.Asset, len(inputs))
	filenames := make([]string, len(inputs))

	limit := b.Concurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i, data := range inputs {
		i, data := i, data
		g.Go(func() error {
			asset, err := b.Sticker.Build(data)
			if err != nil {
				return fmt.Errorf("failed to build sticker %d: %w", i+1, err)
			}
			assets[i] = asset
			filenames[i] = fmt.Sprintf("%03d.%s", i+1, b.Sticker.Encoder.Extension())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	manifest, err := json.Marshal(NewManifest(name, author, filenames, coverIndex))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	entries := make([]Entry, 0, len(assets)+1)
	for i, asset := range assets {
		entries = append(entries, Entry{Name: filenames[i], Data: asset.Bytes})
	}
	entries = append(entries, Entry{Name: ManifestFilename, Data: manifest})

	data, err := b.Archive.Write(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to package archive: %w", err)
	}

	return &Archive{
		Bytes:       data,
		Filename:    ArchiveFilename,
		ContentType: ArchiveContentType,
	}, nil
}
