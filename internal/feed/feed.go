// Package feed supplies the content shown under the sticky header: the
// header pages, the avatar and the scrolling rows.
package feed

import (
	"context"
	"image"
)

// HeaderImage is one page of the header carousel. Exactly one of URL or
// Image is set.
type HeaderImage struct {
	URL   string
	Image image.Image
	Label string
}

// Item is one row of the scroll surface.
type Item struct {
	ID       string
	Title    string
	Subtitle string
	ImageURL string
}

// Page is everything the navigation screen needs for one load.
type Page struct {
	Title     string
	Subtitle  string
	Headers   []HeaderImage
	AvatarURL string
	Items     []Item
}

// Source loads pages. Load is called once on start and again for each
// refresh, always off the draw goroutine.
type Source interface {
	Name() string
	Load(ctx context.Context) (Page, error)
}
