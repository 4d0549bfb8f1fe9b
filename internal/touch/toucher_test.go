package touch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotouch/internal/fsutil"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stampPlan(mode UpdateMode) Plan {
	t := time.Date(2013, 2, 2, 2, 30, 45, 0, time.UTC)
	return Plan{
		Pair:   TimestampPair{Access: t, Modification: t},
		Source: SourceStamp,
		Mode:   mode,
	}
}

func TestToucher_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	plan := stampPlan(UpdateBoth)

	res := NewToucher(fs).Touch(plan, "/new")
	require.NoError(t, res.Err)
	assert.Equal(t, ActionCreated, res.Action)

	info, err := fs.Stat("/new")
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.True(t, plan.Pair.Modification.Equal(info.ModTime()))
}

func TestToucher_NoCreateSkips(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	plan := stampPlan(UpdateBoth)
	plan.NoCreate = true

	res := NewToucher(fs).Touch(plan, "/missing")
	require.NoError(t, res.Err)
	assert.Equal(t, ActionSkipped, res.Action)

	exists, err := afero.Exists(fs, "/missing")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToucher_AccessOnlyKeepsModTime(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/f", []byte("data"), 0644))
	old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, fs.Chtimes("/f", old, old))

	res := NewToucher(fs).Touch(stampPlan(UpdateAccessOnly), "/f")
	require.NoError(t, res.Err)
	assert.Equal(t, ActionTouched, res.Action)

	info, err := fs.Stat("/f")
	require.NoError(t, err)
	assert.True(t, old.Equal(info.ModTime()))
	assert.EqualValues(t, 4, info.Size())
}

func TestToucher_FailureDoesNotStopBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "no", "such", "dir", "f")
	good := filepath.Join(dir, "good")

	results := NewToucher(afero.NewOsFs()).TouchAll(stampPlan(UpdateBoth), []string{bad, good})
	require.Len(t, results, 2)

	assert.Equal(t, bad, results[0].Path)
	assert.Error(t, results[0].Err)

	assert.Equal(t, good, results[1].Path)
	require.NoError(t, results[1].Err)
	assert.Equal(t, ActionCreated, results[1].Action)

	_, err := os.Stat(good)
	require.NoError(t, err)
}

func TestToucher_ModificationOnlyFromReference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs := afero.NewOsFs()
	ref := filepath.Join(dir, "ref")
	target := filepath.Join(dir, "target")

	refAtime := time.Date(2005, 5, 5, 5, 5, 5, 500, time.UTC)
	refMtime := time.Date(2006, 6, 6, 6, 6, 6, 600, time.UTC)
	targetAtime := time.Date(2001, 1, 1, 1, 1, 1, 0, time.UTC)
	targetMtime := time.Date(2002, 2, 2, 2, 2, 2, 0, time.UTC)

	require.NoError(t, os.WriteFile(ref, nil, 0644))
	require.NoError(t, os.WriteFile(target, nil, 0644))
	require.NoError(t, os.Chtimes(ref, refAtime, refMtime))
	require.NoError(t, os.Chtimes(target, targetAtime, targetMtime))

	pair, source := ResolvePair(Request{Reference: ref}, time.Now(), NewFSReader(fs))
	require.Equal(t, SourceReference, source)

	plan := Plan{Pair: pair, Source: source, Mode: ResolveUpdateMode(false, true, "")}
	res := NewToucher(fs).Touch(plan, target)
	require.NoError(t, res.Err)

	atime, mtime, err := fsutil.ReadTimes(fs, target)
	require.NoError(t, err)
	assert.True(t, targetAtime.Equal(atime), "atime changed: %s", atime)
	assert.True(t, refMtime.Equal(mtime), "mtime: want %s, got %s", refMtime, mtime)
}

func TestToucher_StampAppliedToNewFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs := afero.NewOsFs()
	target := filepath.Join(dir, "new")
	plan := stampPlan(UpdateBoth)

	res := NewToucher(fs).Touch(plan, target)
	require.NoError(t, res.Err)
	assert.Equal(t, ActionCreated, res.Action)

	atime, mtime, err := fsutil.ReadTimes(fs, target)
	require.NoError(t, err)
	assert.True(t, plan.Pair.Modification.Equal(mtime))
	assert.True(t, plan.Pair.Access.Equal(atime))
}
