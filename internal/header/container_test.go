package header

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	frames []Frame
}

func (r *recorder) Render(f Frame) { r.frames = append(r.frames, f) }

func (r *recorder) last() Frame { return r.frames[len(r.frames)-1] }

type fakeScroller struct {
	anchors []Anchor
}

func (s *fakeScroller) ScrollTo(a Anchor) { s.anchors = append(s.anchors, a) }

func newTestContainer(t *testing.T) (*Container, *recorder, *fakeScroller) {
	t.Helper()
	r := &recorder{}
	sc := &fakeScroller{}
	c, err := NewContainer(testSettings(), 20, r, sc)
	require.NoError(t, err)
	return c, r, sc
}

func TestContainerRejectsZeroRangeAtConstruction(t *testing.T) {
	s := testSettings()
	s.MaxHeaderHeight = s.MinHeaderHeight
	c, err := NewContainer(s, 0, nil, nil)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrInvalidSettings))
}

func TestContainerRendersInitialFrame(t *testing.T) {
	_, r, _ := newTestContainer(t)
	require.Len(t, r.frames, 1)
	assert.Equal(t, 300.0, r.last().HeaderHeight)
}

func TestContainerScrollScenario(t *testing.T) {
	c, r, _ := newTestContainer(t)

	offsets := []float64{0, -50, -200, -220}
	wantProgress := []float64{0, 0.25, 1, 1}
	wantHeight := []float64{300, 250, 100, 100}
	for i, off := range offsets {
		c.OnScrollOffsetChanged(off)
		assert.InDelta(t, wantProgress[i], c.Progress(), 1e-9)
		assert.InDelta(t, wantHeight[i], c.HeaderHeight(), 1e-9)
		assert.InDelta(t, wantHeight[i], r.last().HeaderHeight, 1e-9)
	}
	assert.Equal(t, 1.0, c.TopBarOpacity())
}

func TestContainerSkipsRedundantRenders(t *testing.T) {
	c, r, _ := newTestContainer(t)
	c.OnScrollOffsetChanged(-10)
	n := len(r.frames)
	c.OnScrollOffsetChanged(-10)
	c.OnScrollOffsetChanged(-10)
	assert.Len(t, r.frames, n)
}

func TestContainerRefreshFlow(t *testing.T) {
	c, r, _ := newTestContainer(t)
	requests := 0
	c.OnRefresh = func() { requests++ }

	for _, off := range []float64{10, 50, 120, 125, 160} {
		c.OnScrollOffsetChanged(off)
	}
	assert.Equal(t, 1, requests)
	assert.True(t, c.IsRefreshTriggered())
	assert.True(t, c.IsRefreshing())
	assert.True(t, r.last().Refreshing)

	c.OnScrollOffsetChanged(40)
	c.OnScrollOffsetChanged(0)
	assert.False(t, c.IsRefreshTriggered(), "baseline resets the latch")
	assert.True(t, c.IsRefreshing(), "the refresh itself runs until the host ends it")

	c.EndRefresh()
	assert.False(t, c.IsRefreshing())
	assert.False(t, r.last().Refreshing)
	assert.Equal(t, RefreshIdle, c.RefreshState())

	c.OnScrollOffsetChanged(130)
	assert.Equal(t, 2, requests)
}

func TestContainerRefreshDisabled(t *testing.T) {
	s := testSettings()
	s.RefreshEnabled = false
	c, err := NewContainer(s, 0, nil, nil)
	require.NoError(t, err)
	c.OnRefresh = func() { t.Fatal("refresh disabled") }
	c.OnScrollOffsetChanged(500)
	assert.False(t, c.IsRefreshTriggered())
}

func TestContainerZoom(t *testing.T) {
	c, r, _ := newTestContainer(t)

	c.OnPinchUpdate(PhaseBegan, 1.2, Point{0.5, 0.5})
	assert.True(t, c.IsZoomActive())
	assert.InDelta(t, 1.2, r.last().Zoom.Scale, 1e-9)

	c.OnPanUpdate(PhaseChanged, Point{12, 8})
	assert.Equal(t, Point{12, 8}, r.last().Zoom.Pan)

	c.OnPinchUpdate(PhaseEnded, 1.2, Point{})
	c.OnPanUpdate(PhaseEnded, Point{12, 8})
	for i := 0; i < 60; i++ {
		c.Tick(frame)
	}
	assert.False(t, c.IsZoomActive())
	f := r.last()
	assert.Equal(t, 1.0, f.Zoom.Scale)
	assert.False(t, f.Zoom.AnchorSet)
	assert.True(t, f.Zoom.Pan.IsZero())
}

func TestContainerScrollToTop(t *testing.T) {
	c, _, sc := newTestContainer(t)
	c.OnScrollToTopRequested()
	assert.Equal(t, []Anchor{AnchorTop}, sc.anchors)

	noScroller, err := NewContainer(testSettings(), 0, nil, nil)
	require.NoError(t, err)
	noScroller.OnScrollToTopRequested()
}

func TestContainerConfigure(t *testing.T) {
	c, r, _ := newTestContainer(t)
	c.OnScrollOffsetChanged(-50)

	s := testSettings()
	s.MaxHeaderHeight = 500
	require.NoError(t, c.Configure(s))
	assert.InDelta(t, 450.0, r.last().HeaderHeight, 1e-9)

	bad := s
	bad.MaxHeaderHeight = 10
	err := c.Configure(bad)
	require.Error(t, err)
	assert.Equal(t, 500.0, c.Settings().MaxHeaderHeight, "rejected settings leave the old ones active")
}

func TestContainerSetTopInset(t *testing.T) {
	c, r, _ := newTestContainer(t)
	c.OnScrollOffsetChanged(-300)
	assert.Equal(t, 100.0, c.HeaderHeight())

	require.NoError(t, c.SetTopInset(44))
	assert.Equal(t, 124.0, r.last().HeaderHeight)

	err := c.SetTopInset(220)
	require.ErrorIs(t, err, ErrInvalidSettings)
	assert.Equal(t, 44.0, c.Geometry().TopInset())
}
