package fsutil

import (
	"os"
	"syscall"
	"time"
)

func accessTime(info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}

	return time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec), true
}
