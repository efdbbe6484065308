package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawRefreshArrow draws a downward arrow at (cx, cy) rotated by deg degrees.
func drawRefreshArrow(dst *ebiten.Image, cx, cy, r float32, deg float64, clr color.Color) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	rot := func(x, y float32) (float32, float32) {
		return cx + x*float32(cos) - y*float32(sin), cy + x*float32(sin) + y*float32(cos)
	}
	// Shaft
	x0, y0 := rot(0, -r)
	x1, y1 := rot(0, r)
	vector.StrokeLine(dst, x0, y0, x1, y1, 2, clr, true)
	// Head
	hx, hy := rot(-r*0.55, r*0.4)
	vector.StrokeLine(dst, hx, hy, x1, y1, 2, clr, true)
	hx, hy = rot(r*0.55, r*0.4)
	vector.StrokeLine(dst, hx, hy, x1, y1, 2, clr, true)
}

// drawSpinner draws an activity spinner whose bright spoke advances with tick.
func drawSpinner(dst *ebiten.Image, cx, cy, r float32, tick int, clr color.RGBA) {
	const spokes = 8
	lead := (tick / 5) % spokes
	for i := 0; i < spokes; i++ {
		angle := float64(i) * 2 * math.Pi / spokes
		age := (lead - i + spokes) % spokes
		c := fade(clr, 1-float64(age)/spokes)
		sx := cx + r*0.45*float32(math.Cos(angle))
		sy := cy + r*0.45*float32(math.Sin(angle))
		ex := cx + r*float32(math.Cos(angle))
		ey := cy + r*float32(math.Sin(angle))
		vector.StrokeLine(dst, sx, sy, ex, ey, 2.5, c, true)
	}
}

// drawChevronUp draws an upward chevron centred at (cx, cy).
func drawChevronUp(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy+r*0.45, cx, cy-r*0.45, 2.5, clr, true)
	vector.StrokeLine(dst, cx, cy-r*0.45, cx+r, cy+r*0.45, 2.5, clr, true)
}

// drawAvatarPlaceholder draws a filled circle with the title's initial.
func drawAvatarPlaceholder(dst *ebiten.Image, cx, cy, r float32, title string, alpha float64) {
	vector.DrawFilledCircle(dst, cx, cy, r, fade(ColorAccent, alpha), true)
	if title == "" {
		return
	}
	initial := string([]rune(title)[:1])
	w, h := MeasureText(initial, FontSizeHeading)
	DrawTextAlpha(dst, initial, float64(cx)-w/2, float64(cy)-h/2, FontSizeHeading, ColorText, alpha)
}
