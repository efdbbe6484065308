package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// debugInfoer is implemented by screens with state worth inspecting.
type debugInfoer interface {
	DebugInfo() []string
}

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, current Screen) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 12.0
		padY    = 10.0
		lineH   = 17.0
		marginR = 12.0
		marginT = 12.0
	)

	lines := []string{fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())}
	if current != nil {
		lines = append(lines, current.Name())
		if d, ok := current.(debugInfoer); ok {
			lines = append(lines, d.DebugInfo()...)
		}
	}

	var touches []ebiten.TouchID
	touches = ebiten.AppendTouchIDs(touches)
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		lines = append(lines, fmt.Sprintf("touch %d at %d,%d", id, x, y))
	}

	panelW := 0.0
	for _, l := range lines {
		w, _ := MeasureText(l, FontSizeCaption)
		panelW = max(panelW, w)
	}
	panelW += padX * 2
	panelH := float64(len(lines))*lineH + padY*2
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	for i, l := range lines {
		clr := ColorText
		if i == 0 {
			clr = ColorPrimary
		}
		DrawText(screen, l, x, y, FontSizeCaption, clr)
		y += lineH
	}
}
