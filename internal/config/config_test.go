package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stickynav/internal/header"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultsAreValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestMaxHeightDerivedFromViewport(t *testing.T) {
	cfg := DefaultConfig()
	s, err := cfg.HeaderSettings(920)
	require.NoError(t, err)
	assert.InDelta(t, 400.0, s.MaxHeaderHeight, 1e-9)
	assert.Equal(t, 80.0, s.MinHeaderHeight)
	assert.True(t, s.RefreshEnabled)
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
[header]
min_height = 60
max_height = 320
corner_radius = 16
refresh_height = 90
blur = true

[ui]
width = 390
height = 844
top_inset = 47

[server]
url = "https://media.example.org"
library = "Movies"

[keybinds]
refresh = "F5"
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	s, err := cfg.HeaderSettings(float64(cfg.UI.Height))
	require.NoError(t, err)
	assert.Equal(t, 320.0, s.MaxHeaderHeight)
	assert.Equal(t, 16.0, s.CornerRadius)
	assert.Equal(t, 90.0, s.RefreshTriggerDistance)
	assert.True(t, s.BlurEnabled)
	assert.Equal(t, 0.5, s.TopBarRevealRatio, "unset keys keep defaults")
	assert.Equal(t, 47.0, cfg.UI.TopInset)
	assert.Equal(t, "Movies", cfg.Server.Library)
	assert.Equal(t, "F5", cfg.Keybinds.Refresh)
	assert.Equal(t, "Home", cfg.Keybinds.ScrollTop)
}

func TestLoadFileRejectsZeroCollapseRange(t *testing.T) {
	path := writeConfig(t, `
[header]
min_height = 100
max_height = 100
`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, header.ErrInvalidSettings))
}

func TestLoadFileRejectsInsetThatEatsRange(t *testing.T) {
	path := writeConfig(t, `
[header]
min_height = 80
max_height = 200

[ui]
top_inset = 120
`)
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, header.ErrInvalidSettings)
}

func TestLoadFileRejectsBadWindow(t *testing.T) {
	path := writeConfig(t, "[ui]\nwidth = 0\n")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileBadTOML(t *testing.T) {
	path := writeConfig(t, "[header\nmin_height = ")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Server.Token = "abc"
	cfg.Header.CornerRadius = 9
	require.NoError(t, cfg.SaveFile(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
