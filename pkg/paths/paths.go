// Package paths provides path resolution and validation for dupfinder.
package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dupfinder/pkg/errors"
	"github.com/arthur-debert/dupfinder/pkg/types"
)

// ResolveScanDir resolves folder to an absolute path and verifies it
// exists and is a directory. This runs before any scanning, so a bad
// folder never produces partial output.
func ResolveScanDir(fsys types.FS, folder string) (string, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "could not resolve path %q", folder)
	}

	info, err := fsys.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf(errors.ErrFolderNotFound, "folder not found: %s", abs)
		}
		return "", errors.Wrapf(err, errors.ErrFolderAccess, "could not access folder %s", abs)
	}

	if !info.IsDir() {
		return "", errors.Newf(errors.ErrNotADirectory, "not a directory: %s", abs)
	}

	return abs, nil
}
