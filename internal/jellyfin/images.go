package jellyfin

import (
	"fmt"
	"net/url"
	"strconv"
)

// ImageType represents different image types.
type ImageType string

const (
	ImagePrimary  ImageType = "Primary"
	ImageBackdrop ImageType = "Backdrop"
	ImageThumb    ImageType = "Thumb"
)

// ImageURL constructs a URL for an item's image.
func (c *Client) ImageURL(itemID string, imgType ImageType, maxWidth, maxHeight int) string {
	u := fmt.Sprintf("%s/Items/%s/Images/%s", c.serverURL, url.PathEscape(itemID), string(imgType))
	return u + "?" + sizeParams(maxWidth, maxHeight).Encode()
}

// PosterURL returns the primary image URL sized for a list row thumbnail.
func (c *Client) PosterURL(itemID string) string {
	return c.ImageURL(itemID, ImagePrimary, 120, 180)
}

// BackdropURL returns a backdrop URL wide enough for the expanded header.
func (c *Client) BackdropURL(itemID string) string {
	return c.ImageURL(itemID, ImageBackdrop, 1280, 720)
}

// UserImageURL returns the signed-in user's avatar.
func (c *Client) UserImageURL(size int) string {
	u := fmt.Sprintf("%s/Users/%s/Images/%s", c.serverURL, url.PathEscape(c.userID), string(ImagePrimary))
	return u + "?" + sizeParams(size, size).Encode()
}

func sizeParams(maxWidth, maxHeight int) url.Values {
	params := url.Values{}
	if maxWidth > 0 {
		params.Set("maxWidth", strconv.Itoa(maxWidth))
	}
	if maxHeight > 0 {
		params.Set("maxHeight", strconv.Itoa(maxHeight))
	}
	params.Set("quality", "90")
	return params
}
