package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stickynav/internal/gesture"
	"github.com/depeter/stickynav/internal/header"
)

// HeaderView draws the collapsing header from the frames a header.Container
// emits. It implements header.Renderer; Render only stores the frame and the
// drawing happens in Draw on the next redraw.
type HeaderView struct {
	frame header.Frame

	pages  []*ebiten.Image
	labels []string
	page   int
	pageX  float64

	width, height float64

	layer     *ebiten.Image
	composite *ebiten.Image
	blur      Blurrer
	mask      RoundMask
}

func NewHeaderView() *HeaderView {
	return &HeaderView{}
}

// Render implements header.Renderer.
func (v *HeaderView) Render(f header.Frame) { v.frame = f }

// Frame is the most recent frame.
func (v *HeaderView) Frame() header.Frame { return v.frame }

// Bounds is the header's current on-screen rectangle.
func (v *HeaderView) Bounds() gesture.Rect {
	return gesture.Rect{W: v.width, H: math.Min(v.frame.HeaderHeight, v.height)}
}

// Resize sets the viewport the header is drawn into.
func (v *HeaderView) Resize(width, height float64) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	if v.layer != nil {
		v.layer.Deallocate()
		v.layer = nil
	}
	if w, h := int(math.Ceil(width)), int(math.Ceil(height)); w > 0 && h > 0 {
		v.layer = ebiten.NewImage(w, h)
	}
}

// SetPages replaces the carousel. Nil entries draw as placeholders until
// their image arrives.
func (v *HeaderView) SetPages(pages []*ebiten.Image, labels []string) {
	v.pages = pages
	v.labels = labels
	if v.page >= len(pages) {
		v.page = max(0, len(pages)-1)
		v.pageX = float64(v.page)
	}
}

func (v *HeaderView) PageCount() int { return len(v.pages) }
func (v *HeaderView) Page() int      { return v.page }

func (v *HeaderView) NextPage() {
	if v.page < len(v.pages)-1 {
		v.page++
	}
}

func (v *HeaderView) PrevPage() {
	if v.page > 0 {
		v.page--
	}
}

// Animate eases the carousel toward the selected page. Call once per tick.
func (v *HeaderView) Animate() {
	v.pageX = gesture.Lerp(v.pageX, float64(v.page), PageAnimSpeed)
	if math.Abs(v.pageX-float64(v.page)) < 0.002 {
		v.pageX = float64(v.page)
	}
}

// Composite returns the last composited header, or nil while the header is
// drawn unclipped for zoom.
func (v *HeaderView) Composite() *ebiten.Image { return v.composite }

func (v *HeaderView) Draw(dst *ebiten.Image) {
	f := v.frame
	h := math.Min(f.HeaderHeight, v.height)
	w := v.width
	v.composite = nil
	if h < 1 || v.layer == nil {
		return
	}

	// Zoomed in: drawn straight onto the screen, unclipped and above the
	// content.
	if f.Zoom.Active && f.Zoom.Scale > 1 {
		v.drawPages(dst, w, h, f.Zoom)
		v.drawSafeArea(dst, w)
		return
	}

	layer := v.layer.SubImage(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h)))).(*ebiten.Image)
	layer.Clear()
	v.drawPages(layer, w, h, f.Zoom)
	if f.HeaderBlur >= 0.5 {
		blurred := v.blur.Blur(layer, f.HeaderBlur)
		layer.Clear()
		layer.DrawImage(blurred, nil)
	}
	v.drawOverlay(layer, w, h)
	if f.CornerRadius > 0 {
		v.mask.Apply(v.layer, float32(w), float32(h), float32(f.CornerRadius))
	}

	dst.DrawImage(layer, nil)
	v.composite = layer
	v.drawSafeArea(dst, w)
}

// drawPages lays the carousel out side by side and applies the zoom
// transform around the pinch anchor.
func (v *HeaderView) drawPages(dst *ebiten.Image, w, h float64, z header.ZoomTransform) {
	if len(v.pages) == 0 {
		DrawRectAlpha(dst, 0, 0, w, h, ColorSurface, 1)
		return
	}

	anchor := header.Point{X: 0.5, Y: 0.5}
	if z.AnchorSet {
		anchor = z.Anchor
	}
	ax, ay := anchor.X*w, anchor.Y*h
	var zoom ebiten.GeoM
	zoom.Translate(-ax, -ay)
	zoom.Scale(z.Scale, z.Scale)
	zoom.Translate(ax+z.Pan.X, ay+z.Pan.Y)

	for i, img := range v.pages {
		x := (float64(i) - v.pageX) * w
		if x <= -w || x >= w {
			continue
		}
		if img == nil {
			DrawRectAlpha(dst, x, 0, w, h, ColorSurface, 1)
			continue
		}
		DrawImageCover(dst, img, x, 0, w, h, &zoom, 1)
	}
}

// drawOverlay draws the page label and dots; both fade out as the header
// collapses.
func (v *HeaderView) drawOverlay(dst *ebiten.Image, w, h float64) {
	alpha := 1 - math.Max(0, math.Min(v.frame.Progress*2, 1))
	if alpha <= 0 {
		return
	}
	if v.page < len(v.labels) && v.labels[v.page] != "" {
		DrawTextAlpha(dst, v.labels[v.page], RowPadding, h-RowPadding-FontSizeTitle*1.6, FontSizeTitle, ColorText, alpha)
	}
	n := len(v.pages)
	if n < 2 {
		return
	}
	total := float64(n-1) * PageDotGap
	x0 := w/2 - total/2
	y := float32(h - RowPadding)
	for i := 0; i < n; i++ {
		c := ColorTextMuted
		if i == v.page {
			c = ColorText
		}
		vector.DrawFilledCircle(dst, float32(x0+float64(i)*PageDotGap), y, PageDotR, fade(c, alpha), true)
	}
}

func (v *HeaderView) drawSafeArea(dst *ebiten.Image, w float64) {
	if s := v.frame.SafeAreaStrip; s > 0 {
		DrawRectAlpha(dst, 0, 0, w, s, ColorMaterial, 1)
	}
}
