package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.NoCreate)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.History)
	assert.Equal(t, filepath.Join(home, ".gotouch", "history.db"), cfg.HistoryDB)
}

func TestLoad_ConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gotouch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"no_create: true\nhistory: true\nhistory_db: /var/tmp/touch.db\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.NoCreate)
	assert.True(t, cfg.History)
	assert.Equal(t, "/var/tmp/touch.db", cfg.HistoryDB)
}

func TestLoad_Env(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GOTOUCH_NO_CREATE", "true")
	t.Setenv("GOTOUCH_HISTORY_DB", "journal.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.NoCreate)
	assert.Equal(t, filepath.Join(home, ".gotouch", "journal.db"), cfg.HistoryDB)
}

func TestLoad_BadConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".gotouch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("no_create: [\n"), 0644))

	_, err := Load()
	assert.Error(t, err)
}
