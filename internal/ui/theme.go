package ui

import "image/color"

// Colors, dark theme
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorDivider       = color.RGBA{R: 0x24, G: 0x24, B: 0x2E, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorMaterial      = color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xB0} // translucent bar material
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	RowHeight   = 64
	RowPadding  = 16
	RowThumbW   = 40
	RowThumbH   = 56
	ListPadding = 12

	AvatarSize = 36

	RefreshIndicatorH = 40
	RefreshArrowR     = 10

	ScrollUpButtonR      = 24
	ScrollUpButtonMargin = 24

	PageDotR   = 3.5
	PageDotGap = 12

	FontSizeTitle   = 28
	FontSizeHeading = 20
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	// PageAnimSpeed is the per-tick lerp factor for header paging.
	PageAnimSpeed = 0.18
	// SwipeThreshold is the horizontal drag in pixels that flips a header page.
	SwipeThreshold = 60
)
