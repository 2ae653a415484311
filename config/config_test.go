// ABOUTME: Tests for environment configuration loading
// ABOUTME: Covers defaults, env overrides, .env files and XDG paths
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GIGDESK_LOG_LEVEL", "GIGDESK_DATA_DIR", "GIGDESK_PERSIST", "GIGDESK_AUTO_SAVE", "GIGDESK_USER_NAME"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.AutoSave)
	assert.Empty(t, cfg.DataDir)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("GIGDESK_LOG_LEVEL", "debug")
	t.Setenv("GIGDESK_DATA_DIR", dir)
	t.Setenv("GIGDESK_AUTO_SAVE", "false")
	t.Setenv("GIGDESK_USER_NAME", "Ada")

	cfg, err := Load(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, dir, cfg.DataDir)
	assert.False(t, cfg.AutoSave)
	assert.Equal(t, "Ada", cfg.UserName)
	assert.True(t, cfg.StorageEnabled())
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GIGDESK_USER_NAME=Grace\nGIGDESK_LOG_LEVEL=error\n"), 0600))
	t.Cleanup(func() {
		os.Unsetenv("GIGDESK_USER_NAME")
		os.Unsetenv("GIGDESK_LOG_LEVEL")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Grace", cfg.UserName)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadPersistUsesXDGDataHome(t *testing.T) {
	clearEnv(t)
	origHome := xdg.DataHome
	xdg.DataHome = t.TempDir()
	defer func() { xdg.DataHome = origHome }()
	t.Setenv("GIGDESK_PERSIST", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(xdg.DataHome, AppName), cfg.DataDir)
}

func TestLoadRejectsBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIGDESK_AUTO_SAVE", "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
