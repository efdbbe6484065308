package ui

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay draws an error message with a "Copy" button.
// Store one per screen that shows errors, call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	copyRect    ButtonRect
	copiedTimer int // frames remaining to show "Copied!" feedback
}

// Draw renders the error text and a Copy button. Returns the total height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, errText string, x, y, maxWidth, fontSize float64) float64 {
	if errText == "" {
		ed.copyRect = ButtonRect{}
		return 0
	}

	btnW := 50.0
	btnH := fontSize + 6
	msg := truncateText(errText, maxWidth-btnW-12, fontSize)
	DrawText(dst, msg, x, y, fontSize, ColorError)

	tw, _ := MeasureText(msg, fontSize)
	btnX := x + tw + 12
	btnY := y - 2
	ed.copyRect = ButtonRect{X: btnX, Y: btnY, W: btnW, H: btnH}

	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawText(dst, "Copied!", btnX, y, FontSizeSmall, ColorSuccess)
	} else {
		vector.DrawFilledRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), ColorSurface, false)
		vector.StrokeRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), 1, ColorTextMuted, false)
		DrawTextCentered(dst, "Copy", btnX+btnW/2, btnY+btnH/2, FontSizeSmall, ColorTextSecondary)
	}

	return fontSize + 8
}

// HandleClick checks if the copy button was clicked. Call from Update with mouse coords.
// Returns true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int, errText string) bool {
	if errText == "" || !ed.copyRect.Contains(mx, my) {
		return false
	}
	// Clipboard access shells out on some platforms; keep it off the tick.
	go clipboard.WriteAll(errText)
	ed.copiedTimer = 120 // ~2 seconds at 60fps
	return true
}
