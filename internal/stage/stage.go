package stage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jyn514/releasekit/internal/paths"
)

// Subdirectory of a packaging bundle that receives package files.
const codeDir = "code"

// Stages a build product into a bundle directory under the given name.
//
// The bundle directory is created if it does not exist. Re-running against
// an existing bundle succeeds and leaves the same final contents: the file
// is copied over any previous copy. The source file is left untouched, so
// the bundle holds exactly the staged binary and no intermediates.
func Binary(bundle, src, name string) error {
	if err := os.MkdirAll(bundle, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrStage, err)
	}

	dest := filepath.Join(bundle, name)
	log.Debug().Str("src", src).Str("dest", dest).Msg("staging binary")

	if err := copyFile(dest, src); err != nil {
		return fmt.Errorf("%w: %w", ErrStage, err)
	}

	return nil
}

// Stages package files into the bundle's code subdirectory.
//
// Only files whose name ends with ext are copied; everything else the
// packaging tool left behind is ignored. Returns the number of files
// staged. Staging zero files is an error: an empty code directory means
// the packaging tool produced nothing usable.
func Packages(bundle string, files []string, ext string) (int, error) {
	dest := filepath.Join(bundle, codeDir)
	if err := os.MkdirAll(dest, paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStage, err)
	}

	staged := 0
	for _, f := range files {
		if !strings.HasSuffix(filepath.Base(f), ext) {
			log.Debug().Str("file", f).Str("ext", ext).Msg("skipping non-package file")
			continue
		}

		if err := copyFile(filepath.Join(dest, filepath.Base(f)), f); err != nil {
			return staged, fmt.Errorf("%w: %w", ErrStage, err)
		}
		staged++
	}

	if staged == 0 {
		return 0, fmt.Errorf("%w: no files matching %q to stage", ErrStage, ext)
	}

	return staged, nil
}

// Stages a full recursive copy of a static assets directory at the bundle
// root.
//
// The directory tree rooted at srcDir is reproduced under the bundle
// directory, preserving file modes. Existing files are overwritten, so
// re-running leaves identical contents.
func Tree(bundle, srcDir string) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStage, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrStage, srcDir)
	}

	if err := os.MkdirAll(bundle, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrStage, err)
	}

	log.Debug().Str("src", srcDir).Str("dest", bundle).Msg("staging asset tree")

	if err := copyTree(bundle, srcDir); err != nil {
		return fmt.Errorf("%w: %w", ErrStage, err)
	}

	return nil
}
