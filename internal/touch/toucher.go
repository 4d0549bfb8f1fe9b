package touch

import (
	"fmt"

	"gotouch/internal/fsutil"

	"github.com/spf13/afero"
)

type Action string

const (
	ActionTouched Action = "touched"
	ActionCreated Action = "created"
	ActionSkipped Action = "skipped"
)

// Plan is resolved once per invocation and shared by every target.
type Plan struct {
	Pair     TimestampPair
	Source   Source
	Mode     UpdateMode
	NoCreate bool
}

type Result struct {
	Path   string
	Action Action
	Err    error
}

type Toucher struct {
	fs afero.Fs
}

func NewToucher(fs afero.Fs) *Toucher {
	return &Toucher{fs: fs}
}

func (t *Toucher) Touch(plan Plan, path string) Result {
	res := Result{Path: path, Action: ActionTouched}

	exists, err := afero.Exists(t.fs, path)
	if err != nil {
		res.Err = fmt.Errorf("failed to stat %s: %w", path, err)
		return res
	}

	if !exists {
		if plan.NoCreate {
			res.Action = ActionSkipped
			return res
		}

		res.Action = ActionCreated
		if err := fsutil.CreateEmpty(t.fs, path); err != nil {
			res.Err = err
			return res
		}
	}

	atime, mtime := plan.Mode.Select(plan.Pair)
	if err := fsutil.ApplyTimes(t.fs, path, atime, mtime); err != nil {
		res.Err = err
	}

	return res
}

// TouchAll processes paths in order. A failing path never stops the rest.
func (t *Toucher) TouchAll(plan Plan, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		results = append(results, t.Touch(plan, path))
	}

	return results
}
