package ui

import (
	"image"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stickynav/internal/cache"
	"github.com/depeter/stickynav/internal/feed"
)

// DetailScreen shows one row's artwork and text.
type DetailScreen struct {
	item   feed.Item
	images *cache.Images
	log    *slog.Logger

	width, height float64

	mu      sync.Mutex
	pending image.Image
	failed  bool
	poster  *ebiten.Image

	backRect ButtonRect
}

func NewDetailScreen(item feed.Item, images *cache.Images, log *slog.Logger) *DetailScreen {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &DetailScreen{item: item, images: images, log: log}
}

func (ds *DetailScreen) Name() string { return "Detail: " + ds.item.Title }

func (ds *DetailScreen) OnEnter() {
	if ds.poster != nil || ds.images == nil || ds.item.ImageURL == "" {
		return
	}
	ds.images.LoadAsync(ds.item.ImageURL, func(img image.Image, err error) {
		ds.mu.Lock()
		defer ds.mu.Unlock()
		if err != nil {
			ds.log.Warn("detail image failed", "id", ds.item.ID, "err", err)
			ds.failed = true
			return
		}
		ds.pending = img
	})
}

func (ds *DetailScreen) OnExit() {}

func (ds *DetailScreen) Resize(width, height, _ float64) {
	ds.width, ds.height = width, height
}

func (ds *DetailScreen) Update() (*ScreenTransition, error) {
	ds.mu.Lock()
	if ds.pending != nil {
		ds.poster = ImageFromStd(ds.pending)
		ds.pending = nil
	}
	ds.mu.Unlock()

	if BackJustPressed() {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	if mx, my, ok := MouseJustClicked(); ok && ds.backRect.Contains(mx, my) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	const pad = RowPadding

	ds.backRect = ButtonRect{X: pad, Y: pad, W: 72, H: 32}
	DrawFilledRoundRect(dst, pad, pad, 72, 32, 8, ColorSurface)
	DrawTextCentered(dst, "Back", pad+36, pad+16, FontSizeBody, ColorText)

	y := pad*2 + 32.0
	artW := ds.width - pad*2
	artH := artW * 1.5
	if maxH := ds.height * 0.6; artH > maxH {
		artH = maxH
		artW = artH / 1.5
	}
	artX := (ds.width - artW) / 2
	switch {
	case ds.poster != nil:
		DrawImageCover(dst, ds.poster, artX, y, artW, artH, nil, 1)
	default:
		vector.DrawFilledRect(dst, float32(artX), float32(y), float32(artW), float32(artH), ColorSurface, false)
		ds.mu.Lock()
		failed := ds.failed
		ds.mu.Unlock()
		if failed {
			DrawTextCentered(dst, "No image", artX+artW/2, y+artH/2, FontSizeSmall, ColorTextMuted)
		}
	}
	y += artH + pad

	DrawText(dst, truncateText(ds.item.Title, ds.width-pad*2, FontSizeTitle), pad, y, FontSizeTitle, ColorText)
	y += FontSizeTitle * 1.4
	if ds.item.Subtitle != "" {
		DrawText(dst, truncateText(ds.item.Subtitle, ds.width-pad*2, FontSizeBody), pad, y, FontSizeBody, ColorTextSecondary)
	}
}
