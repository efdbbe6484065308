package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRect is a clickable screen region.
type ButtonRect struct {
	X, Y, W, H float64
}

// Contains reports whether the cursor point is inside the rect.
func (r ButtonRect) Contains(px, py int) bool {
	return r.W > 0 && PointInRect(px, py, r.X, r.Y, r.W, r.H)
}

var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// roundRectPath traces a rectangle with circular corners. The radius is
// clamped to half the shorter side.
func roundRectPath(x, y, w, h, radius float32) *vector.Path {
	r := min(radius, w/2, h/2)
	var p vector.Path
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return &p
	}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
	return &p
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.Color, blend ebiten.Blend) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
		Blend:     blend,
	}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

// DrawFilledRoundRect draws a filled rectangle with rounded corners.
func DrawFilledRoundRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	fillPath(dst, roundRectPath(x, y, w, h, radius), clr, ebiten.BlendSourceOver)
}

// RoundMask caches a rounded-rectangle alpha mask and clips images with it.
type RoundMask struct {
	img    *ebiten.Image
	w, h   float32
	radius float32
}

// Apply clears everything in dst outside a w×h rounded rectangle at the
// origin. dst must not be an offset sub-image.
func (m *RoundMask) Apply(dst *ebiten.Image, w, h, radius float32) {
	b := dst.Bounds()
	if m.img == nil || !m.img.Bounds().Eq(image.Rect(0, 0, b.Dx(), b.Dy())) {
		if m.img != nil {
			m.img.Deallocate()
		}
		m.img = ebiten.NewImage(b.Dx(), b.Dy())
		m.w = -1
	}
	if m.w != w || m.h != h || m.radius != radius {
		m.img.Clear()
		fillPath(m.img, roundRectPath(0, 0, w, h, radius), color.White, ebiten.BlendSourceOver)
		m.w, m.h, m.radius = w, h, radius
	}
	dst.DrawImage(m.img, &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn})
}

// DrawImageCover draws img scaled to fill the rect, cropping the overflow
// centred. extra is applied after the fit transform.
func DrawImageCover(dst, img *ebiten.Image, x, y, w, h float64, extra *ebiten.GeoM, alpha float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := math.Max(w/iw, h/ih)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-iw*scale)/2, y+(h-ih*scale)/2)
	if extra != nil {
		op.GeoM.Concat(*extra)
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}

// CircleImage draws images cropped to a circle, e.g. avatars.
type CircleImage struct {
	scratch *ebiten.Image
	mask    RoundMask
}

// Draw draws img cropped to a circle of radius r centred at (cx, cy).
func (c *CircleImage) Draw(dst, img *ebiten.Image, cx, cy, r float64, alpha float64) {
	d := int(math.Ceil(r * 2))
	if d <= 0 || img == nil {
		return
	}
	if c.scratch == nil || c.scratch.Bounds().Dx() != d {
		if c.scratch != nil {
			c.scratch.Deallocate()
		}
		c.scratch = ebiten.NewImage(d, d)
	}
	c.scratch.Clear()
	DrawImageCover(c.scratch, img, 0, 0, float64(d), float64(d), nil, 1)
	c.mask.Apply(c.scratch, float32(d), float32(d), float32(d)/2)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(cx-r, cy-r)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(c.scratch, op)
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(alpha, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// DrawRectAlpha fills a rect with clr scaled by alpha.
func DrawRectAlpha(dst *ebiten.Image, x, y, w, h float64, clr color.RGBA, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fade(clr, alpha), false)
}

// ImageFromStd uploads a decoded image.
func ImageFromStd(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}
