package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stickynav/internal/jellyfin"
)

func TestStaticSourceRows(t *testing.T) {
	s := NewStaticSource()
	page, err := s.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, page.Items, staticRows)
	assert.Equal(t, "Row 0", page.Items[0].Title)
	assert.Equal(t, "Row 49", page.Items[49].Title)
	require.Len(t, page.Headers, staticPages)
	for _, h := range page.Headers {
		require.NotNil(t, h.Image)
		assert.Empty(t, h.URL)
		assert.Equal(t, headerSize, h.Image.Bounds())
	}
}

func TestStaticSourceRefreshChangesRows(t *testing.T) {
	s := NewStaticSource()
	first, err := s.Load(context.Background())
	require.NoError(t, err)
	second, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), s.Generation())
	assert.NotEqual(t, first.Items[0].Subtitle, second.Items[0].Subtitle)
}

func TestStaticSourceHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStaticSource().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGradientEndpoints(t *testing.T) {
	p := staticPalettes[0]
	img := gradient(p[0], p[1], 0)
	r, _, _, _ := img.At(0, 0).RGBA()
	r2, _, _, _ := img.At(headerSize.Dx()-1, 0).RGBA()
	assert.Less(t, r>>8, uint32(0x30))
	assert.Less(t, r2>>8, uint32(0x10), "red fades out toward the right edge")
}

func TestItemSubtitle(t *testing.T) {
	assert.Equal(t, "Movie · 2016 · 7.9", itemSubtitle(jellyfin.MediaItem{Type: "Movie", Year: 2016, CommunityRating: 7.9}))
	assert.Equal(t, "Series · 2019", itemSubtitle(jellyfin.MediaItem{Type: "Series", Year: 2019}))
	assert.Equal(t, "Folder", itemSubtitle(jellyfin.MediaItem{Type: "Folder"}))
}
