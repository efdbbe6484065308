package gesture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stickynav/internal/header"
)

func newSurface() *ScrollState {
	return &ScrollState{ContentHeight: 2000, ViewHeight: 800, MaxOverscroll: 180}
}

func runTicks(s *ScrollState, n int) {
	for i := 0; i < n; i++ {
		s.Animate()
	}
}

func TestOffsetSign(t *testing.T) {
	s := newSurface()
	s.ScrollY = 150
	assert.Equal(t, -150.0, s.Offset())
	s.ScrollY = -40
	assert.Equal(t, 40.0, s.Offset())
	s.ScrollY = 0
	assert.Equal(t, 0.0, s.Offset())
}

func TestWheelClampsToContent(t *testing.T) {
	s := newSurface()
	for i := 0; i < 100; i++ {
		s.HandleWheel(-1)
	}
	assert.Equal(t, 1200.0, s.TargetScrollY)
	runTicks(s, 200)
	assert.Equal(t, 1200.0, s.ScrollY)
}

func TestWheelOverscrollSpringsBackToExactBaseline(t *testing.T) {
	s := newSurface()
	s.HandleWheel(2)
	assert.Equal(t, -60.0, s.TargetScrollY, "overscroll applies resistance")

	runTicks(s, 5)
	assert.Less(t, s.ScrollY, 0.0)
	assert.Greater(t, s.Offset(), 0.0)

	runTicks(s, 300)
	assert.Equal(t, 0.0, s.ScrollY)
	assert.Equal(t, 0.0, s.Offset())
	assert.True(t, s.Settled())
}

func TestWheelOverscrollIsCapped(t *testing.T) {
	s := newSurface()
	for i := 0; i < 50; i++ {
		s.HandleWheel(3)
	}
	assert.Equal(t, -180.0, s.TargetScrollY)
}

func TestDragTracksFingerWithResistanceAtTop(t *testing.T) {
	s := newSurface()
	s.BeginDrag(500)
	s.DragTo(400)
	assert.Equal(t, 100.0, s.ScrollY)

	s.DragTo(600)
	assert.Equal(t, -50.0, s.ScrollY, "pulling below the baseline is resisted")
	assert.True(t, s.Dragging())

	s.EndDrag()
	assert.Equal(t, 0.0, s.TargetScrollY)
	runTicks(s, 300)
	assert.Equal(t, 0.0, s.Offset())
}

func TestDragResumesFromOverscroll(t *testing.T) {
	s := newSurface()
	s.BeginDrag(0)
	s.DragTo(100)
	require.Equal(t, -50.0, s.ScrollY)
	s.EndDrag()
	s.Animate()

	pos := s.ScrollY
	s.BeginDrag(300)
	s.DragTo(300)
	assert.InDelta(t, pos, s.ScrollY, 1e-9, "grabbing mid-spring must not jump")
}

func TestEndDragFling(t *testing.T) {
	s := newSurface()
	s.BeginDrag(700)
	s.DragTo(600)
	s.DragTo(580)
	s.EndDrag()
	assert.Equal(t, 120.0+20*flingFactor, s.TargetScrollY)
}

func TestScrollToTop(t *testing.T) {
	s := newSurface()
	s.ScrollY = 900
	s.TargetScrollY = 900
	var sc header.Scroller = s
	sc.ScrollTo(header.AnchorTop)
	assert.Equal(t, 0.0, s.TargetScrollY)
	runTicks(s, 300)
	assert.Equal(t, 0.0, s.ScrollY)
}

func TestShortContentCannotScroll(t *testing.T) {
	s := &ScrollState{ContentHeight: 300, ViewHeight: 800, MaxOverscroll: 100}
	assert.Equal(t, 0.0, s.MaxScroll())
	s.HandleWheel(-5)
	assert.Equal(t, 0.0, s.TargetScrollY)
}

func TestPullReachesDistanceThenSettles(t *testing.T) {
	s := newSurface()
	s.Pull(150)
	assert.Equal(t, -150.0, s.TargetScrollY)

	peak := 0.0
	for i := 0; i < 400; i++ {
		s.Animate()
		peak = math.Max(peak, s.Offset())
	}
	assert.Greater(t, peak, 140.0)
	assert.Equal(t, 0.0, s.Offset())
}

func TestPullIsCapped(t *testing.T) {
	s := newSurface()
	s.Pull(1000)
	assert.Equal(t, -180.0, s.TargetScrollY)
}
