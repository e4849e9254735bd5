package platform

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yndnr/fsm-go/internal/core/domain"
)

// releaseMarker identifies the profile Firefox uses by default.
const releaseMarker = "default-release"

// recoveryFile is the live session snapshot, relative to a profile.
var recoveryFile = filepath.Join("sessionstore-backups", "recovery.jsonlz4")

// findSnapshot returns the recovery file of the first profile directory
// under root whose name contains the release marker.
func findSnapshot(root string) (string, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, "*"+releaseMarker+"*")
	if err != nil {
		return "", domain.ErrProfileNotFound.WithDetails(root).WithCause(err)
	}

	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || !info.IsDir() {
			continue
		}
		return filepath.Join(root, m, recoveryFile), nil
	}

	return "", domain.ErrProfileNotFound.WithDetails("no *" + releaseMarker + "* directory in " + root)
}
