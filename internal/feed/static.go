package feed

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync/atomic"

	"golang.org/x/image/draw"
)

const (
	staticRows  = 50
	staticPages = 3
)

// headerSize is the resolution generated header pages are scaled to.
var headerSize = image.Rect(0, 0, 640, 360)

// Palette pairs for the generated header pages.
var staticPalettes = [staticPages][2]color.RGBA{
	{{R: 0x1f, G: 0x3b, B: 0x73, A: 0xff}, {R: 0x00, G: 0xa4, B: 0xdc, A: 0xff}},
	{{R: 0x5b, G: 0x1f, B: 0x73, A: 0xff}, {R: 0xe0, G: 0x5a, B: 0x8c, A: 0xff}},
	{{R: 0x13, G: 0x55, B: 0x3a, A: 0xff}, {R: 0xd9, G: 0xb3, B: 0x2c, A: 0xff}},
}

// StaticSource is an offline feed of numbered rows and generated header art.
// Each Load after the first counts as a refresh and bumps the generation, so
// the list visibly changes.
type StaticSource struct {
	generation atomic.Int64
	headers    []HeaderImage
}

func NewStaticSource() *StaticSource {
	s := &StaticSource{}
	for i, p := range staticPalettes {
		s.headers = append(s.headers, HeaderImage{
			Image: gradient(p[0], p[1], float64(i)*math.Pi/5),
			Label: fmt.Sprintf("Page %d", i+1),
		})
	}
	return s
}

func (s *StaticSource) Name() string { return "static" }

// Generation returns how many times the feed has been loaded.
func (s *StaticSource) Generation() int64 { return s.generation.Load() }

func (s *StaticSource) Load(ctx context.Context) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	gen := s.generation.Add(1)

	items := make([]Item, staticRows)
	for i := range items {
		items[i] = Item{
			ID:       fmt.Sprintf("row-%d", i),
			Title:    fmt.Sprintf("Row %d", i),
			Subtitle: fmt.Sprintf("Loaded %d time(s)", gen),
		}
	}
	return Page{
		Title:    "Sticky Header",
		Subtitle: "Pull down to refresh",
		Headers:  s.headers,
		Items:    items,
	}, nil
}

// gradient renders a small two-stop diagonal gradient and scales it up to
// header resolution. The bilinear upscale smooths the banding.
func gradient(from, to color.RGBA, angle float64) image.Image {
	const n = 32
	small := image.NewRGBA(image.Rect(0, 0, n, n*9/16))
	b := small.Bounds()
	dx, dy := math.Cos(angle), math.Sin(angle)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			u := float64(x)/float64(b.Dx()-1)*dx + float64(y)/float64(b.Dy()-1)*dy
			t := math.Max(0, math.Min(1, (u+1)/2))
			small.SetRGBA(x, y, mix(from, to, t))
		}
	}
	dst := image.NewRGBA(headerSize)
	draw.BiLinear.Scale(dst, dst.Bounds(), small, b, draw.Src, nil)
	return dst
}

func mix(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: 0xff}
}
