// Package icon draws the window icon: a phone-shaped card whose header
// image band sits above a short list, with a pull arrow.
package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	card       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	bandTop    = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	bandBottom = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	rowColor   = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	arrowColor = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xE0}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, background)

	cx, cy, cw, ch := s*0.18, s*0.10, s*0.64, s*0.80
	fillRoundedRect(img, cx, cy, cw, ch, s*0.08, card)
	drawBand(img, cx, cy, cw, ch*0.38, s*0.08)
	drawRows(img, cx, cy+ch*0.46, cw, s)
	drawArrow(img, cx+cw/2, cy+ch*0.19, s*0.09, arrowColor)

	return img
}

// drawBand fills the header band with a vertical gradient, rounded only at
// the top corners.
func drawBand(img *image.RGBA, x, y, w, h, r float64) {
	for py := int(y); py < int(y+h); py++ {
		t := (float64(py) - y) / h
		c := mix(bandTop, bandBottom, t)
		for px := int(x); px < int(x+w); px++ {
			if insideRounded(float64(px), float64(py), x, y, w, h+r, r) {
				blendPixel(img, px, py, c)
			}
		}
	}
}

func drawRows(img *image.RGBA, x, y, w, s float64) {
	rowH := s * 0.07
	gap := s * 0.05
	for i := 0; i < 3; i++ {
		ry := y + float64(i)*(rowH+gap)
		fillRoundedRect(img, x+s*0.06, ry, rowH*1.2, rowH, s*0.015, rowColor)
		lineW := w*0.55 - float64(i)*s*0.06
		fillRoundedRect(img, x+s*0.06+rowH*1.6, ry+rowH*0.25, lineW, rowH*0.5, rowH*0.25, rowColor)
	}
}

// drawArrow draws a downward pull arrow centred at (cx, cy).
func drawArrow(img *image.RGBA, cx, cy, r float64, c color.Color) {
	width := math.Max(r*0.22, 0.8)
	strokeLine(img, cx, cy-r, cx, cy+r, width, c)
	strokeLine(img, cx-r*0.6, cy+r*0.35, cx, cy+r, width, c)
	strokeLine(img, cx+r*0.6, cy+r*0.35, cx, cy+r, width, c)
}

func strokeLine(img *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	steps := int(math.Ceil(math.Hypot(x1-x0, y1-y0) * 2))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(max(steps, 1))
		fillCircle(img, x0+(x1-x0)*t, y0+(y1-y0)*t, width/2, c)
	}
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func insideRounded(fx, fy, x, y, w, h, r float64) bool {
	if fx < x || fy < y || fx >= x+w || fy >= y+h {
		return false
	}
	// Distance to the nearest corner centre, when in a corner region.
	ccx := math.Max(x+r, math.Min(fx, x+w-r))
	ccy := math.Max(y+r, math.Min(fy, y+h-r))
	dx, dy := fx-ccx, fy-ccy
	return dx*dx+dy*dy <= r*r
}

func fillRoundedRect(img *image.RGBA, x, y, w, h, r float64, c color.Color) {
	b := img.Bounds()
	for py := max(int(y), b.Min.Y); py < min(int(math.Ceil(y+h)), b.Max.Y); py++ {
		for px := max(int(x), b.Min.X); px < min(int(math.Ceil(x+w)), b.Max.X); px++ {
			if insideRounded(float64(px)+0.5, float64(py)+0.5, x, y, w, h, r) {
				blendPixel(img, px, py, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	b := img.Bounds()
	r2 := r * r
	for py := max(int(cy-r), b.Min.Y); py <= min(int(cy+r+1), b.Max.Y-1); py++ {
		for px := max(int(cx-r), b.Min.X); px <= min(int(cx+r+1), b.Max.X-1); px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, px, py, c)
			}
		}
	}
}

// blendPixel alpha-blends c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r, g, bl, a := c.RGBA()
	if a == 0 {
		return
	}
	if a == 0xFFFF {
		img.Set(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a
	// Colours are premultiplied, so only the destination is scaled.
	over := func(src uint32, d uint8) uint8 {
		return uint8((src + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: over(r, dst.R),
		G: over(g, dst.G),
		B: over(bl, dst.B),
		A: over(a, dst.A),
	})
}
