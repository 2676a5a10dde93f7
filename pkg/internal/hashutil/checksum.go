package hashutil

import (
	"crypto/sha256"
	"fmt"

	"github.com/arthur-debert/dupfinder/pkg/types"
)

// CalculateFileChecksum calculates the SHA256 checksum of a file read
// through the given filesystem
func CalculateFileChecksum(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("sha256:%x", hash), nil
}
