package fsutil

import (
	"time"

	"golang.org/x/sys/unix"
)

func utimes(path string, atime, mtime time.Time) error {
	ts := make([]unix.Timespec, 2)
	for i, t := range []time.Time{atime, mtime} {
		if t.IsZero() {
			ts[i] = unix.Timespec{Nsec: unix.UTIME_OMIT}
			continue
		}

		spec, err := unix.TimeToTimespec(t)
		if err != nil {
			return err
		}
		ts[i] = spec
	}

	return unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, 0)
}
