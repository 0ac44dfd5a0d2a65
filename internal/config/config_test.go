package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config and cache dirs at a temp dir so the user's
// own settings never leak into a test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corporation", cfg.WorkspaceName)
	assert.Equal(t, "nord", cfg.Theme)
	assert.Equal(t, "dashboard", cfg.StartView)
	assert.Equal(t, 1500*time.Millisecond, cfg.TypingDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.TypingJitter)
	assert.False(t, cfg.Notifications)
	assert.False(t, cfg.Debug)
	assert.Equal(t, filepath.Join(dir, "cache", "weezy"), cfg.RuntimeDir)
	assert.Equal(t, filepath.Join(dir, "cache", "weezy", "weezy.log"), cfg.LogFile)
	assert.Empty(t, cfg.File)
}

func TestLoadFromDefaultConfigDir(t *testing.T) {
	dir := isolate(t)
	confDir := filepath.Join(dir, "config", "weezy")
	require.NoError(t, os.MkdirAll(confDir, 0o755))
	writeConfig(t, confDir, "theme: dracula\nstart_view: chat\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, "chat", cfg.StartView)
	assert.Equal(t, filepath.Join(confDir, "config.yaml"), cfg.File)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
workspace_name: Globex
theme: Gruvbox
typing_delay: 250ms
typing_jitter: 0s
notifications: true
log_file: /tmp/weezy-test.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Globex", cfg.WorkspaceName)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, 250*time.Millisecond, cfg.TypingDelay)
	assert.Zero(t, cfg.TypingJitter)
	assert.True(t, cfg.Notifications)
	assert.Equal(t, "/tmp/weezy-test.log", cfg.LogFile)
	assert.Equal(t, path, cfg.File)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("WEEZY_DEBUG", "1")
	t.Setenv("WEEZY_START_VIEW", "tasks")
	t.Setenv("WEEZY_TYPING_DELAY", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "tasks", cfg.StartView)
	assert.Equal(t, 2*time.Second, cfg.TypingDelay)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown view", "start_view: inbox\n", "start_view"},
		{"unknown theme", "theme: solarized\n", "theme"},
		{"negative delay", "typing_delay: -1s\n", "typing_delay"},
		{"negative jitter", "typing_jitter: -5ms\n", "typing_jitter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			_, err := Load(writeConfig(t, dir, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Theme: "nord", StartView: "storage", RuntimeDir: "/tmp"}
	assert.NoError(t, cfg.Validate())

	cfg.RuntimeDir = ""
	assert.Error(t, cfg.Validate())
}
