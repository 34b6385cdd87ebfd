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

	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.Icons)
	assert.Empty(t, cfg.DebugLog)
}

func TestValidColorMode(t *testing.T) {
	assert.True(t, ValidColorMode(ColorAuto))
	assert.True(t, ValidColorMode(ColorAlways))
	assert.True(t, ValidColorMode(ColorNever))
	assert.False(t, ValidColorMode(""))
	assert.False(t, ValidColorMode("sometimes"))
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "color: never\nicons: true\ndebug_log: /tmp/gst.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.Icons)
	assert.Equal(t, "/tmp/gst.log", cfg.DebugLog)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMalformedYAMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: [broken"), 0o600))

	cfg, err := LoadConfig(path)
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigNormalizesBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, cfg.Color)
}
