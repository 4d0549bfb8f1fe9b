//go:build !linux

package fsutil

import (
	"os"
	"time"
)

// os.Chtimes already leaves a zero time unchanged.
func utimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}
