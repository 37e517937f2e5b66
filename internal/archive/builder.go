// Package archive assembles the full template kit into a single zip
// deliverable. The builder walks every catalog path, generates content, and
// compresses the set in memory; nothing touches disk until the whole archive
// has been built, so a failed export never leaves a partial file behind.
package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/quarrydev/quarry/internal/catalog"
	"github.com/quarrydev/quarry/internal/fsutil"
)

// DeliverableName is the fixed file name of the exported kit.
const DeliverableName = "data-platform-starter-kit.zip"

// compressionLevel trades a little speed for smaller archives. The payloads
// are text, so higher levels pay off.
const compressionLevel = flate.BestCompression

// Archive is a fully assembled deliverable held in memory.
type Archive struct {
	Name      string
	Data      []byte
	FileCount int
	CreatedAt time.Time
}

// Builder produces archives from a catalog.
type Builder struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

// BuilderOption customizes a Builder during construction.
type BuilderOption func(*Builder)

// WithClock overrides the clock used for archive entry timestamps.
func WithClock(clock func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = clock
	}
}

// NewBuilder creates a builder over the given catalog.
func NewBuilder(cat *catalog.Catalog, opts ...BuilderOption) *Builder {
	builder := &Builder{
		catalog: cat,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder
}

// Build materializes every catalog path into a compressed archive. The
// operation is atomic: any generator or compressor failure aborts the whole
// build and no archive is returned. Paths keep their forward-slash form as
// entry names, so directory structure survives extraction.
func (b *Builder) Build(ctx context.Context) (*Archive, error) {
	paths := b.catalog.AllArtifactPaths()
	createdAt := b.now()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, compressionLevel)
	})

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return nil, fmt.Errorf("archive: build canceled: %w", err)
		}
		content, err := b.catalog.Generate(path)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("archive: %w", err)
		}
		header := &zip.FileHeader{
			Name:     string(path),
			Method:   zip.Deflate,
			Modified: createdAt,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("archive: create entry %s: %w", path, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			zw.Close()
			return nil, fmt.Errorf("archive: write entry %s: %w", path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("archive: finalize: %w", err)
	}
	return &Archive{
		Name:      DeliverableName,
		Data:      buf.Bytes(),
		FileCount: len(paths),
		CreatedAt: createdAt,
	}, nil
}

// WriteFile writes the archive into dir under its fixed name and returns the
// full path. The write goes through a temp file + rename, so a partial
// archive never lands on disk.
func (a *Archive) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("archive: ensure export dir: %w", err)
	}
	path := filepath.Join(dir, a.Name)
	if err := fsutil.WriteFileAtomic(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("archive: %w", err)
	}
	return path, nil
}
