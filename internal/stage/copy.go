package stage

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jyn514/releasekit/internal/paths"
)

// Copies a single regular file, preserving the source file mode.
//
// The destination is truncated if it already exists, making repeated copies
// idempotent.
func copyFile(dest, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// Copies a directory tree rooted at srcDir into destDir.
//
// The contents of srcDir land directly under destDir (the source root
// itself is not reproduced as a subdirectory). Only directories and
// regular files are copied; anything else is skipped.
func copyTree(destDir, srcDir string) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		dest := filepath.Join(destDir, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, paths.DefaultDirMode)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return copyFile(dest, path)
	})
}
