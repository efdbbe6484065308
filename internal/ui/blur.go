package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Blurrer approximates a gaussian blur by shrinking the source with linear
// filtering and scaling it back up. Buffers only ever grow, so animating the
// radius or the source size does not reallocate every frame.
type Blurrer struct {
	small *ebiten.Image
	out   *ebiten.Image
}

// downscale maps a blur radius in points to a shrink factor.
func downscale(radius float64) float64 {
	return 1 + radius/2
}

// Blur returns a blurred copy of src. Radii below half a point return src
// itself. The result is valid until the next call.
func (b *Blurrer) Blur(src *ebiten.Image, radius float64) *ebiten.Image {
	if radius < 0.5 {
		return src
	}
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w == 0 || h == 0 {
		return src
	}
	f := downscale(radius)
	sw := max(1, int(math.Ceil(float64(w)/f)))
	sh := max(1, int(math.Ceil(float64(h)/f)))

	small := grow(&b.small, sw, sh)
	small.Clear()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(h))
	small.DrawImage(src, op)

	out := grow(&b.out, w, h)
	out.Clear()
	op = &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	out.DrawImage(small, op)
	return out
}

// grow returns a w×h sub-image of *img, reallocating only when the backing
// image is too small.
func grow(img **ebiten.Image, w, h int) *ebiten.Image {
	if *img != nil {
		b := (*img).Bounds()
		if b.Dx() >= w && b.Dy() >= h {
			return (*img).SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
		}
		(*img).Deallocate()
		*img = ebiten.NewImage(max(w, b.Dx()), max(h, b.Dy()))
	} else {
		*img = ebiten.NewImage(w, h)
	}
	return (*img).SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
}
