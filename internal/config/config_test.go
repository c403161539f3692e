package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, DefaultCacheSize, cfg.Catalog.CacheSize)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestWithDefaults_FillsOnlyUnset(t *testing.T) {
	cfg := (&Config{Server: ServerConfig{URL: "https://api.example.com"}}).WithDefaults()

	assert.Equal(t, "https://api.example.com", cfg.Server.URL)
	assert.Equal(t, DefaultCacheSize, cfg.Catalog.CacheSize)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  url: https://pc.example.com\ncatalog:\n  mock: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "https://pc.example.com", cfg.Server.URL)
	assert.True(t, cfg.Catalog.Mock)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  url: https://file.example.com\n"), 0o600))
	t.Setenv("BUILDMASTER_SERVER_URL", "https://env.example.com")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Server.URL)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/.buildmaster/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".buildmaster", "config.yaml"), got)

	got, err = ExpandPath("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", got)

	got, err = ExpandPath("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestConfigFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
