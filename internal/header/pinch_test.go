package header

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func settle(c *PinchPanController) {
	for i := 0; i < 120 && c.Animating(); i++ {
		c.Tick(frame)
	}
}

func TestPinchSequence(t *testing.T) {
	c := NewPinchPanController()
	center := Point{0.5, 0.5}

	c.Pinch(PhaseBegan, 1.2, center)
	assert.InDelta(t, 0.2, c.Scale(), 1e-9)
	anchor, ok := c.Anchor()
	require.True(t, ok)
	assert.Equal(t, center, anchor)

	c.Pinch(PhaseChanged, 1.5, Point{0.9, 0.1})
	assert.InDelta(t, 0.5, c.Scale(), 1e-9)
	anchor, _ = c.Anchor()
	assert.Equal(t, center, anchor, "anchor is latched for the whole gesture")

	c.Pinch(PhaseEnded, 1.5, Point{0.9, 0.1})
	assert.True(t, c.Animating())
	anchor, ok = c.Anchor()
	assert.True(t, ok, "anchor survives until the animation completes")
	assert.Equal(t, center, anchor)

	// scale decreases toward zero without overshooting
	prev := c.Scale()
	for c.Animating() {
		c.Tick(frame)
		assert.LessOrEqual(t, c.Scale(), prev)
		assert.GreaterOrEqual(t, c.Scale(), 0.0)
		prev = c.Scale()
	}
	assert.Equal(t, 0.0, c.Scale())
	_, ok = c.Anchor()
	assert.False(t, ok)
	assert.False(t, c.ZoomActive())
}

func TestPinchEndTakesSettleDuration(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseBegan, 2, Point{0.2, 0.2})
	c.Pinch(PhaseEnded, 2, Point{})

	c.Tick(SettleDuration / 2)
	assert.InDelta(t, 0.5, c.Scale(), 1e-9, "ease-in-out is symmetric at the midpoint")
	c.Tick(SettleDuration / 2)
	assert.Equal(t, 0.0, c.Scale())
	assert.False(t, c.Animating())
}

func TestNewPinchRelatchesAnchor(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseBegan, 1.3, Point{0.1, 0.1})
	c.Pinch(PhaseEnded, 1.3, Point{})
	c.Tick(frame)

	c.Pinch(PhaseBegan, 1.1, Point{0.7, 0.8})
	anchor, ok := c.Anchor()
	require.True(t, ok)
	assert.Equal(t, Point{0.7, 0.8}, anchor)
	assert.False(t, c.Animating())
}

func TestPinchChangedWithoutBeganLatches(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseChanged, 1.4, Point{1.5, -0.3})
	anchor, ok := c.Anchor()
	require.True(t, ok)
	assert.Equal(t, Point{1, 0}, anchor, "location is clamped to the unit square")
}

func TestPanIgnoredWhileNotZoomed(t *testing.T) {
	c := NewPinchPanController()
	c.Pan(PhaseBegan, Point{10, 10})
	c.Pan(PhaseChanged, Point{40, -5})
	assert.True(t, c.PanOffset().IsZero())

	c.Pinch(PhaseBegan, 0.8, Point{0.5, 0.5})
	c.Pan(PhaseChanged, Point{40, -5})
	assert.True(t, c.PanOffset().IsZero(), "pinching in is not zoomed in")
}

func TestPanReplacesTranslation(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseBegan, 1.5, Point{0.5, 0.5})

	c.Pan(PhaseBegan, Point{5, 5})
	c.Pan(PhaseChanged, Point{20, -10})
	assert.Equal(t, Point{20, -10}, c.PanOffset())
	assert.Equal(t, Point{20, -10}, c.Transform().Pan)

	c.Pan(PhaseEnded, Point{20, -10})
	settle(c)
	assert.True(t, c.PanOffset().IsZero())
	assert.InDelta(t, 0.5, c.Scale(), 1e-9, "pinch still held")
	_, ok := c.Anchor()
	assert.True(t, ok, "anchor belongs to the pinch in progress")
}

func TestEndingEitherGestureSettlesBoth(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseBegan, 1.5, Point{0.5, 0.5})
	c.Pan(PhaseChanged, Point{30, 30})
	c.Pinch(PhaseEnded, 1.5, Point{})

	settle(c)
	assert.Equal(t, 0.0, c.Scale())
	assert.True(t, c.PanOffset().IsZero())
}

func TestTransform(t *testing.T) {
	c := NewPinchPanController()
	tr := c.Transform()
	assert.Equal(t, 1.0, tr.Scale)
	assert.False(t, tr.Active)

	c.Pinch(PhaseBegan, 0.5, Point{0.5, 0.5})
	tr = c.Transform()
	assert.Equal(t, 1.0, tr.Scale, "negative scale renders unscaled")
	assert.True(t, tr.Active)

	c.Pinch(PhaseChanged, 3, Point{})
	assert.Equal(t, 3.0, c.Transform().Scale)
}

func TestZoomChangeCallback(t *testing.T) {
	c := NewPinchPanController()
	var events []bool
	c.OnZoomChange = func(active bool) { events = append(events, active) }

	c.Pinch(PhaseBegan, 1.2, Point{0.5, 0.5})
	c.Pinch(PhaseChanged, 1.4, Point{})
	c.Pinch(PhaseEnded, 1.4, Point{})
	settle(c)

	assert.Equal(t, []bool{true, false}, events)
}

func TestPinchIgnoresNaN(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseBegan, 1.2, Point{0.5, 0.5})
	c.Pinch(PhaseChanged, math.NaN(), Point{})
	assert.InDelta(t, 0.2, c.Scale(), 1e-9)
}

func TestReset(t *testing.T) {
	c := NewPinchPanController()
	c.Pinch(PhaseBegan, 2, Point{0.5, 0.5})
	c.Pan(PhaseChanged, Point{3, 4})
	c.Reset()
	assert.False(t, c.ZoomActive())
	assert.True(t, c.PanOffset().IsZero())
	_, ok := c.Anchor()
	assert.False(t, ok)
}
