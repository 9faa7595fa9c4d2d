package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/jyn514/releasekit/internal/paths"
)

// Stores bundle archives in a local directory.
//
// Used when no object store is configured, and as the test backend.
type DirStore struct {
	root string
}

// Creates a directory-backed store rooted at root.
func NewDirStore(root string) *DirStore {
	return &DirStore{root: root}
}

// Archives the bundle directory to "<root>/<name>.tar.gz".
//
// The archive is written to a temporary file in the same directory and
// renamed into place, so a partially written archive never appears under
// its final name.
func (s *DirStore) Upload(ctx context.Context, name, dir string) (*Handle, error) {
	if err := os.MkdirAll(s.root, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	final := filepath.Join(s.root, name+archiveExt)
	tmp := final + ".tmp"

	if err := writeArchive(tmp, dir); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	info, err := os.Stat(final)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	log.Info().Str("artifact", name).Str("location", final).Int64("size", info.Size()).Msg("artifact stored")

	return &Handle{
		Name:     name,
		Location: final,
		Size:     info.Size(),
	}, nil
}
