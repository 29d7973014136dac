package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"*"}, cfg.Whitelist)
	assert.Equal(t, []string{"__pycache__"}, cfg.Blacklist)
	assert.Equal(t, "```", cfg.SnippetMarker)
	assert.True(t, cfg.CopyToClipboard)
	assert.Equal(t, "dark", cfg.MarkdownStyle)
	assert.Equal(t, "10s", cfg.LockTimeout)
	assert.True(t, cfg.Source.Comments)
	assert.True(t, cfg.Source.Imports)
	assert.True(t, cfg.Source.Docstrings)
	assert.False(t, cfg.Source.NotebookOutput)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Whitelist, cfg.Whitelist)
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `whitelist = [".py", ".md"]
snippet_marker = "~~~"
copy_to_clipboard = false

[source]
comments = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{".py", ".md"}, cfg.Whitelist)
	assert.Equal(t, "~~~", cfg.SnippetMarker)
	assert.False(t, cfg.CopyToClipboard)
	assert.False(t, cfg.Source.Comments)

	// Unset keys keep their defaults.
	assert.Equal(t, []string{"__pycache__"}, cfg.Blacklist)
	assert.True(t, cfg.Source.Imports)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("whitelist = not toml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadExpandsHistoryDirTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`history_dir = "~/custom/history"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "custom", "history"), cfg.HistoryDir)
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.SnippetMarker = "~~~"
	require.NoError(t, cfg.Save())

	_, err := os.Stat(filepath.Join(ConfigDir(), "config.toml"))
	require.NoError(t, err)

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "~~~", loaded.SnippetMarker)
}

func TestConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".promptpack"), ConfigDir())
}

func TestLockTimeoutDuration(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10*time.Second, cfg.LockTimeoutDuration())

	cfg.LockTimeout = "250ms"
	assert.Equal(t, 250*time.Millisecond, cfg.LockTimeoutDuration())

	cfg.LockTimeout = "bogus"
	assert.Equal(t, 10*time.Second, cfg.LockTimeoutDuration())
}
