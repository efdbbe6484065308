package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/stickynav/internal/gesture"
)

// Action names a rebindable key command.
type Action int

const (
	ActionScrollTop Action = iota
	ActionRefresh
	ActionNextPage
	ActionPrevPage
	ActionZoomReset
)

// Keymap binds actions to keys. Missing actions are unbound.
type Keymap map[Action]ebiten.Key

// JustPressed reports whether the key bound to a was pressed this tick.
func (k Keymap) JustPressed(a Action) bool {
	key, ok := k[a]
	return ok && inpututil.IsKeyJustPressed(key)
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// ZoomModifierPressed reports whether the desktop pinch/pan emulation key is held.
func ZoomModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// BackJustPressed reports a back request from keyboard or mouse.
func BackJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// TouchSamples returns the active touches for this tick. buf is reused.
func TouchSamples(ids []ebiten.TouchID, buf []gesture.Touch) ([]ebiten.TouchID, []gesture.Touch) {
	ids = ebiten.AppendTouchIDs(ids[:0])
	buf = buf[:0]
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, gesture.Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return ids, buf
}
