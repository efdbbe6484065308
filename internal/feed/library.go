package feed

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/depeter/stickynav/internal/jellyfin"
)

const (
	headerPageLimit = 5
	rowLimit        = 100
)

// LibrarySource shows one Jellyfin library: its latest backdrops in the
// header and its items, sorted by name, as rows.
type LibrarySource struct {
	client  *jellyfin.Client
	library string
	log     *slog.Logger
}

// NewLibrarySource builds a feed for the named view. An empty name uses the
// user's first view.
func NewLibrarySource(client *jellyfin.Client, library string, log *slog.Logger) *LibrarySource {
	return &LibrarySource{client: client, library: library, log: log}
}

func (s *LibrarySource) Name() string { return "jellyfin" }

func (s *LibrarySource) Load(ctx context.Context) (Page, error) {
	views, err := s.client.Views(ctx)
	if err != nil {
		return Page{}, err
	}
	view, ok := jellyfin.FindView(views, s.library)
	if !ok {
		return Page{}, fmt.Errorf("library %q not found", s.library)
	}

	var (
		latest []jellyfin.MediaItem
		items  []jellyfin.MediaItem
		total  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		latest, err = s.client.LatestMedia(gctx, view.ID, headerPageLimit*2)
		return err
	})
	g.Go(func() error {
		var err error
		items, total, err = s.client.Items(gctx, view.ID, 0, rowLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return Page{}, err
	}
	s.log.Debug("library loaded", "view", view.Name, "latest", len(latest), "items", len(items), "total", total)

	page := Page{
		Title:     view.Name,
		Subtitle:  fmt.Sprintf("%d titles", total),
		AvatarURL: s.client.UserImageURL(96),
	}
	for _, it := range latest {
		if !it.HasBackdrop() {
			continue
		}
		page.Headers = append(page.Headers, HeaderImage{URL: s.client.BackdropURL(it.ID), Label: it.Name})
		if len(page.Headers) == headerPageLimit {
			break
		}
	}
	for _, it := range items {
		page.Items = append(page.Items, Item{
			ID:       it.ID,
			Title:    it.Name,
			Subtitle: itemSubtitle(it),
			ImageURL: s.client.PosterURL(it.ID),
		})
	}
	return page, nil
}

func itemSubtitle(it jellyfin.MediaItem) string {
	switch {
	case it.Year > 0 && it.CommunityRating > 0:
		return fmt.Sprintf("%s · %d · %.1f", it.Type, it.Year, it.CommunityRating)
	case it.Year > 0:
		return fmt.Sprintf("%s · %d", it.Type, it.Year)
	}
	return it.Type
}
