package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	assert.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())
}

func TestCornersAreTransparent(t *testing.T) {
	img := generate(64).(*image.RGBA)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0xFF), img.RGBAAt(32, 60).A, "background fills the body")
}

func TestBandIsDrawn(t *testing.T) {
	img := generate(64).(*image.RGBA)
	// Left of the arrow, inside the header band.
	c := img.RGBAAt(20, 14)
	assert.NotEqual(t, card, c)
	assert.NotEqual(t, background, c)
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 0xFF})
	blendPixel(img, 0, 0, color.RGBA{R: 0x80, A: 0x80})
	got := img.RGBAAt(0, 0)
	assert.InDelta(t, 0x80, int(got.R), 2)
	assert.Equal(t, uint8(0xFF), got.A)
}
