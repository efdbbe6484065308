package jellyfin

import (
	"context"
	"fmt"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

// MediaItem is a simplified representation of a Jellyfin item.
type MediaItem struct {
	ID              string
	Name            string
	Type            string // Movie, Series, Episode, CollectionFolder, ...
	Year            int
	Overview        string
	CommunityRating float32
	ImageTags       map[string]string
	BackdropTags    []string
	SeriesName      string
}

// HasBackdrop reports whether the item carries at least one backdrop image.
func (m MediaItem) HasBackdrop() bool { return len(m.BackdropTags) > 0 }

// Views returns the user's media libraries (Movies, TV Shows, Music, etc.)
func (c *Client) Views(ctx context.Context) ([]MediaItem, error) {
	result, _, err := c.api.UserViewsAPI.GetUserViews(ctx).UserId(c.userID).Execute()
	if err != nil {
		return nil, fmt.Errorf("get views: %w", err)
	}
	return convertItems(result.Items), nil
}

// FindView picks the view whose name matches (case-insensitively). An empty
// name picks the first view.
func FindView(views []MediaItem, name string) (MediaItem, bool) {
	if len(views) == 0 {
		return MediaItem{}, false
	}
	if name == "" {
		return views[0], true
	}
	for _, v := range views {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return MediaItem{}, false
}

// LatestMedia returns the latest items, optionally scoped to a library.
func (c *Client) LatestMedia(ctx context.Context, parentID string, limit int) ([]MediaItem, error) {
	req := c.api.UserLibraryAPI.GetLatestMedia(ctx).
		UserId(c.userID).
		Limit(int32(limit)).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW}).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY, jellyfin.IMAGETYPE_BACKDROP}).
		ImageTypeLimit(1)
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	items, _, err := req.Execute()
	if err != nil {
		return nil, fmt.Errorf("get latest: %w", err)
	}
	return convertItems(items), nil
}

// Items returns one page of a library sorted by name, plus the total count.
func (c *Client) Items(ctx context.Context, parentID string, start, limit int) ([]MediaItem, int, error) {
	req := c.api.ItemsAPI.GetItems(ctx).
		UserId(c.userID).
		StartIndex(int32(start)).
		Limit(int32(limit)).
		Fields([]jellyfin.ItemFields{jellyfin.ITEMFIELDS_OVERVIEW}).
		EnableImageTypes([]jellyfin.ImageType{jellyfin.IMAGETYPE_PRIMARY}).
		ImageTypeLimit(1).
		Recursive(true).
		IncludeItemTypes([]jellyfin.BaseItemKind{
			jellyfin.BASEITEMKIND_MOVIE,
			jellyfin.BASEITEMKIND_SERIES,
		}).
		SortBy([]jellyfin.ItemSortBy{jellyfin.ITEMSORTBY_SORT_NAME}).
		SortOrder([]jellyfin.SortOrder{jellyfin.SORTORDER_ASCENDING})
	if parentID != "" {
		req = req.ParentId(parentID)
	}
	result, _, err := req.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("get items: %w", err)
	}
	total := int(result.GetTotalRecordCount())
	return convertItems(result.Items), total, nil
}

func convertItems(items []jellyfin.BaseItemDto) []MediaItem {
	result := make([]MediaItem, 0, len(items))
	for i := range items {
		result = append(result, convertBaseItemDto(&items[i]))
	}
	return result
}

func convertBaseItemDto(item *jellyfin.BaseItemDto) MediaItem {
	mi := MediaItem{
		ID:              item.GetId(),
		Name:            item.GetName(),
		Year:            int(item.GetProductionYear()),
		Overview:        item.GetOverview(),
		CommunityRating: item.GetCommunityRating(),
		BackdropTags:    item.BackdropImageTags,
		SeriesName:      item.GetSeriesName(),
	}
	if item.Type != nil {
		mi.Type = string(*item.Type)
	}
	if len(item.ImageTags) > 0 {
		mi.ImageTags = make(map[string]string, len(item.ImageTags))
		for k, v := range item.ImageTags {
			mi.ImageTags[k] = v
		}
	}
	return mi
}
