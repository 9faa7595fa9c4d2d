package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory naming.
	appName = "releasekit"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the root directory for per-job workspaces.
//
// Each job creates its own private subdirectory under this root, so
// concurrent jobs never share a filesystem path.
//
//	Linux:   ~/.cache/releasekit/work
//	macOS:   ~/Library/Caches/releasekit/work
func Workspaces() string {
	return filepath.Join(xdg.CacheHome, appName, "work")
}

// Default destination directory for the local artifact store.
//
// Used when no object store is configured.
//
//	Linux:   ~/.local/share/releasekit/dist
//	macOS:   ~/Library/Application Support/releasekit/dist
func Dist() string {
	return filepath.Join(xdg.DataHome, appName, "dist")
}
