package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/depeter/stickynav/internal/config"
	"github.com/depeter/stickynav/internal/ui"
)

func TestParseKey(t *testing.T) {
	k, ok := parseKey(" Home ")
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeyHome, k)

	k, ok = parseKey("F5")
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeyF5, k)

	_, ok = parseKey("hyper")
	assert.False(t, ok)
}

func TestKeymapDefaults(t *testing.T) {
	km, unknown := Keymap(config.DefaultConfig().Keybinds)
	assert.Empty(t, unknown)
	assert.Equal(t, ui.Keymap{
		ui.ActionScrollTop: ebiten.KeyHome,
		ui.ActionRefresh:   ebiten.KeyR,
		ui.ActionNextPage:  ebiten.KeyArrowRight,
		ui.ActionPrevPage:  ebiten.KeyArrowLeft,
		ui.ActionZoomReset: ebiten.KeyZ,
	}, km)
}

func TestKeymapReportsUnknownAndSkipsEmpty(t *testing.T) {
	km, unknown := Keymap(config.KeybindConfig{ScrollTop: "Meta+Up", Refresh: "f5", ZoomReset: "Bogus"})
	assert.Equal(t, []string{"Bogus", "Meta+Up"}, unknown)
	assert.Equal(t, ui.Keymap{ui.ActionRefresh: ebiten.KeyF5}, km)
}
