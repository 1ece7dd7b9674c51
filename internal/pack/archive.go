package pack

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file stored in a pack archive.
type Entry struct {
	Name string
	Data []byte
}

// ArchiveWriter serializes a set of entries into a single container.
//
// It is an injected capability so pack building is testable with stub
// containers; production uses ZipWriter.
type ArchiveWriter interface {
	Write(entries []Entry) ([]byte, error)
}

// ZipWriter packages entries into a zip archive, in entry order.
type ZipWriter struct{}

// Write serializes the entries into an in-memory zip archive.
func (ZipWriter) Write(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %q: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %q: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
