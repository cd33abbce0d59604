package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "learngl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[window]
width = 800
samples = 4

[paths]
shaders = "/tmp/shaders"
watch = true

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.Equal(t, 4, cfg.Window.Samples)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, "/tmp/shaders", cfg.Paths.Shaders)
	assert.Equal(t, "assets", cfg.Paths.Assets)
	assert.True(t, cfg.Paths.Watch)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, float32(2.5), cfg.Camera.Speed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)

	// the default file is optional
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "[window]\nwidht = 3\n"))
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	_, err := Load(writeFile(t, "[window]\nwidth = 0\n"))
	assert.ErrorContains(t, err, "window size")

	_, err = Load(writeFile(t, "[camera]\nspeed = -1.0\n"))
	assert.ErrorContains(t, err, "camera speed")
}
