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

	return time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)), true
}
