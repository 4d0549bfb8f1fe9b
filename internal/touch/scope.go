package touch

import (
	"fmt"
	"time"
)

type UpdateMode int

const (
	UpdateBoth UpdateMode = iota
	UpdateAccessOnly
	UpdateModificationOnly
)

var (
	accessWords = map[string]bool{"access": true, "atime": true, "use": true}
	modifyWords = map[string]bool{"modify": true, "mtime": true}
)

// ResolveUpdateMode narrows to one side only when exactly one of the
// access and modification conditions holds. Conflicting flags mean both.
func ResolveUpdateMode(onlyAtime, onlyMtime bool, timeWord string) UpdateMode {
	access := onlyAtime || accessWords[timeWord]
	modify := onlyMtime || modifyWords[timeWord]

	switch {
	case access && !modify:
		return UpdateAccessOnly
	case modify && !access:
		return UpdateModificationOnly
	default:
		return UpdateBoth
	}
}

func ValidTimeWord(word string) error {
	if word == "" || accessWords[word] || modifyWords[word] {
		return nil
	}

	return fmt.Errorf("invalid argument %q for --time (valid: access, atime, use, modify, mtime)", word)
}

func (m UpdateMode) Access() bool {
	return m != UpdateModificationOnly
}

func (m UpdateMode) Modification() bool {
	return m != UpdateAccessOnly
}

// Select returns the halves of pair to write. An unselected half is the
// zero time, which the apply primitive treats as "leave unchanged".
func (m UpdateMode) Select(pair TimestampPair) (atime, mtime time.Time) {
	if m.Access() {
		atime = pair.Access
	}
	if m.Modification() {
		mtime = pair.Modification
	}

	return atime, mtime
}

func (m UpdateMode) String() string {
	switch m {
	case UpdateAccessOnly:
		return "access"
	case UpdateModificationOnly:
		return "modification"
	default:
		return "both"
	}
}
