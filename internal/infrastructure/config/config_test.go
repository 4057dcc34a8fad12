package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban/internal/domain/entity"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	dir := t.TempDir()
	return &Loader{
		configPath: filepath.Join(dir, "config", "config.yml"),
		homeDir:    dir,
	}
}

func TestLoader_WritesDefaultsOnFirstRun(t *testing.T) {
	l := newTestLoader(t)

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.FileExists(t, l.GetConfigPath())
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, DefaultCollection, cfg.Storage.Collection)
	assert.Equal(t, DefaultDocument, cfg.Storage.Document)
	assert.Equal(t, "json", cfg.Storage.Format)
	assert.Equal(t, DefaultDragThreshold, cfg.TUI.DragThreshold)
	assert.Equal(t, []string{"/"}, cfg.Keybindings.Search)
	assert.DirExists(t, cfg.Storage.DataPath)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	l := newTestLoader(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(l.configPath), 0755))
	require.NoError(t, os.WriteFile(l.configPath, []byte("storage:\n  backend: sqlite\n"), 0644))

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, DefaultDocument, cfg.Storage.Document)
	assert.Equal(t, "en", cfg.Board.Locale)
	assert.Equal(t, []string{"q", "ctrl+c"}, cfg.Keybindings.Quit)
}

func TestLoader_EnvironmentOverrides(t *testing.T) {
	l := newTestLoader(t)
	t.Setenv("KANBAN_STORAGE_BACKEND", "redis")
	t.Setenv("KANBAN_STORAGE_REDIS_ADDR", "cache:6380")
	t.Setenv("KANBAN_TUI_DRAG_THRESHOLD", "12")

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, 12, cfg.TUI.DragThreshold)
}

func TestLoader_RejectsUnknownBackend(t *testing.T) {
	l := newTestLoader(t)
	t.Setenv("KANBAN_STORAGE_BACKEND", "indexeddb")

	_, err := l.Load()

	assert.ErrorIs(t, err, entity.ErrUnknownBackend)
}

func TestLoader_SaveRoundTrip(t *testing.T) {
	l := newTestLoader(t)
	cfg := DefaultConfig(l.homeDir)
	cfg.Board.Locale = "sv"
	cfg.Storage.Format = "yaml"

	require.NoError(t, l.Save(cfg))
	loaded, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "sv", loaded.Board.Locale)
	assert.Equal(t, "yaml", loaded.Storage.Format)
}

func TestLoader_ResetRestoresDefaults(t *testing.T) {
	l := newTestLoader(t)
	cfg := DefaultConfig(l.homeDir)
	cfg.Board.Locale = "sv"
	require.NoError(t, l.Save(cfg))

	_, err := l.Reset()
	require.NoError(t, err)
	loaded, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "en", loaded.Board.Locale)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	require.NoError(t, cfg.Validate())

	cfg.Storage.Format = "toml"
	assert.ErrorIs(t, cfg.Validate(), entity.ErrUnknownFormat)

	cfg = DefaultConfig(t.TempDir())
	cfg.Storage.Backend = BackendRedis
	cfg.Storage.Redis.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestConfig_LogPath(t *testing.T) {
	cfg := DefaultConfig("/home/u")
	cfg.Log.File = ""
	assert.Equal(t, filepath.Join("/home/u", defaultDataDirName, defaultLogFileName), cfg.LogPath())

	cfg.Log.File = "-"
	assert.Equal(t, "-", cfg.LogPath())
}
