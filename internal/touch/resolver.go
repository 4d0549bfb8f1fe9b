package touch

import (
	"time"

	"gotouch/internal/fsutil"

	"github.com/spf13/afero"
)

type TimestampPair struct {
	Access       time.Time
	Modification time.Time
}

// Source names the precedence tier that produced a TimestampPair.
type Source int

const (
	SourceNow Source = iota
	SourceReference
	SourceStamp
)

func (s Source) String() string {
	switch s {
	case SourceReference:
		return "reference"
	case SourceStamp:
		return "stamp"
	default:
		return "now"
	}
}

type Request struct {
	Reference string
	Stamp     string
	HasStamp  bool
}

type TimesReader interface {
	ReadTimes(path string) (TimestampPair, error)
}

// ResolvePair picks the timestamps for one invocation. A reference that
// cannot be read is skipped silently and the stamp, then now, are used.
func ResolvePair(req Request, now time.Time, reader TimesReader) (TimestampPair, Source) {
	if req.Reference != "" && reader != nil {
		if pair, err := reader.ReadTimes(req.Reference); err == nil {
			return pair, SourceReference
		}
	}

	if req.HasStamp {
		t := ParseStamp(req.Stamp, now)
		return TimestampPair{Access: t, Modification: t}, SourceStamp
	}

	return TimestampPair{Access: now, Modification: now}, SourceNow
}

type fsReader struct {
	fs afero.Fs
}

func NewFSReader(fs afero.Fs) TimesReader {
	return &fsReader{fs: fs}
}

func (r *fsReader) ReadTimes(path string) (TimestampPair, error) {
	atime, mtime, err := fsutil.ReadTimes(r.fs, path)
	if err != nil {
		return TimestampPair{}, err
	}

	return TimestampPair{Access: atime, Modification: mtime}, nil
}
