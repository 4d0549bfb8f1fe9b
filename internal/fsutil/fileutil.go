package fsutil

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
)

// CreateEmpty creates path if it is missing. An existing file is opened
// without truncation. Parent directories are not created.
func CreateEmpty(fs afero.Fs, path string) error {
	f, err := fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

func ReadTimes(fs afero.Fs, path string) (atime, mtime time.Time, err error) {
	info, err := fs.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	mtime = info.ModTime()
	atime, ok := accessTime(info)
	if !ok {
		atime = mtime
	}

	return atime, mtime, nil
}

// ApplyTimes sets the access and modification times of path. A zero time
// leaves that half unchanged.
func ApplyTimes(fs afero.Fs, path string, atime, mtime time.Time) error {
	if atime.IsZero() && mtime.IsZero() {
		return nil
	}

	if _, ok := fs.(*afero.OsFs); ok {
		if err := utimes(path, atime, mtime); err != nil {
			return fmt.Errorf("failed to set times on %s: %w", path, err)
		}
		return nil
	}

	if atime.IsZero() || mtime.IsZero() {
		curAtime, curMtime, err := ReadTimes(fs, path)
		if err != nil {
			return err
		}
		if atime.IsZero() {
			atime = curAtime
		}
		if mtime.IsZero() {
			mtime = curMtime
		}
	}

	if err := fs.Chtimes(path, atime, mtime); err != nil {
		return fmt.Errorf("failed to set times on %s: %w", path, err)
	}

	return nil
}
