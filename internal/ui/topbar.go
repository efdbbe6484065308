package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/stickynav/internal/header"
)

// TopBar is the condensed bar that slides in over the collapsed header.
type TopBar struct {
	Title    string
	Subtitle string
	Avatar   *ebiten.Image

	avatar CircleImage
	blur   Blurrer
}

// Draw draws the bar. barH spans the inset plus the collapsed header height;
// backdrop is the composited header the frosted background is made from.
func (tb *TopBar) Draw(dst *ebiten.Image, f header.Frame, w, barH float64, backdrop *ebiten.Image) {
	alpha := f.TopBarOpacity
	if alpha <= 0 || barH <= 0 {
		return
	}
	y := f.TopBarShift(barH)

	if backdrop != nil {
		bb := backdrop.Bounds()
		bh := min(bb.Dy(), int(math.Ceil(barH)))
		bg := backdrop.SubImage(image.Rect(0, 0, bb.Dx(), bh)).(*ebiten.Image)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		dst.DrawImage(tb.blur.Blur(bg, f.TopBarBlur), op)
	}
	DrawRectAlpha(dst, 0, y, w, barH, ColorMaterial, alpha)
	DrawRectAlpha(dst, 0, y+barH-1, w, 1, ColorDivider, alpha)

	content := f.TopBarReveal * alpha
	if content <= 0 {
		return
	}
	cy := y + f.TopInset + (barH-f.TopInset)/2
	ax := float64(RowPadding + AvatarSize/2)
	if tb.Avatar != nil {
		tb.avatar.Draw(dst, tb.Avatar, ax, cy, AvatarSize/2, content)
	} else {
		drawAvatarPlaceholder(dst, float32(ax), float32(cy), AvatarSize/2, tb.Title, content)
	}

	tx := float64(RowPadding*2 + AvatarSize)
	maxW := w - tx - RowPadding
	if tb.Subtitle == "" {
		DrawTextAlpha(dst, truncateText(tb.Title, maxW, FontSizeHeading), tx, cy-FontSizeHeading*0.6, FontSizeHeading, ColorText, content)
		return
	}
	DrawTextAlpha(dst, truncateText(tb.Title, maxW, FontSizeHeading), tx, cy-FontSizeHeading-1, FontSizeHeading, ColorText, content)
	DrawTextAlpha(dst, truncateText(tb.Subtitle, maxW, FontSizeSmall), tx, cy+3, FontSizeSmall, ColorTextSecondary, content)
}
