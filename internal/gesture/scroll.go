package gesture

import (
	"math"

	"github.com/depeter/stickynav/internal/header"
)

const (
	// WheelSpeed is pixels per mouse wheel scroll unit.
	WheelSpeed = 60
	// AnimSpeed is the per-tick lerp factor toward the target.
	AnimSpeed = 0.12

	snapDistance = 0.5
	resistance   = 0.5
	flingFactor  = 8
	settleDelay  = 12 // ticks without wheel input before overscroll springs back
	pullHold     = 30
)

// ScrollState tracks a vertical scroll surface with smooth animation and a
// rubber-banded overscroll zone above the top edge. ScrollY grows as content
// moves up; negative values are overscroll.
type ScrollState struct {
	ScrollY       float64
	TargetScrollY float64

	ContentHeight float64
	ViewHeight    float64
	// MaxOverscroll caps how far content can be pulled below the baseline.
	MaxOverscroll float64

	dragging        bool
	dragStartY      float64
	dragStartScroll float64
	lastDragDelta   float64
	idleTicks       int
}

// MaxScroll is the largest resting ScrollY.
func (s *ScrollState) MaxScroll() float64 {
	return math.Max(0, s.ContentHeight-s.ViewHeight)
}

// Offset is the signed displacement from the baseline as the header sees it:
// negative while content is scrolled up, positive while pulled down.
func (s *ScrollState) Offset() float64 {
	if s.ScrollY == 0 {
		return 0
	}
	return -s.ScrollY
}

// Dragging reports whether a pointer is holding the surface.
func (s *ScrollState) Dragging() bool { return s.dragging }

// HandleWheel moves the target by a wheel delta. Scrolling past the top
// enters overscroll with resistance.
func (s *ScrollState) HandleWheel(dy float64) {
	if dy == 0 {
		return
	}
	s.idleTicks = 0
	t := s.TargetScrollY - dy*WheelSpeed
	if base := math.Min(s.TargetScrollY, 0); t < base {
		t = base + (t-base)*resistance
	}
	s.TargetScrollY = math.Max(math.Min(t, s.MaxScroll()), -s.MaxOverscroll)
}

// BeginDrag starts a pointer drag at screen y.
func (s *ScrollState) BeginDrag(y float64) {
	s.dragging = true
	s.dragStartY = y
	s.dragStartScroll = s.ScrollY
	if s.ScrollY < 0 {
		s.dragStartScroll = s.ScrollY / resistance
	}
	s.lastDragDelta = 0
}

// DragTo follows the pointer. The surface tracks the finger directly, so the
// target is kept equal to the position.
func (s *ScrollState) DragTo(y float64) {
	if !s.dragging {
		return
	}
	raw := s.dragStartScroll - (y - s.dragStartY)
	if raw < 0 {
		raw *= resistance
	}
	raw = math.Max(math.Min(raw, s.MaxScroll()), -s.MaxOverscroll)
	s.lastDragDelta = raw - s.ScrollY
	s.ScrollY = raw
	s.TargetScrollY = raw
}

// EndDrag releases the surface. Remaining momentum carries the target a
// little further and overscroll springs back.
func (s *ScrollState) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.idleTicks = settleDelay
	t := s.ScrollY
	if t > 0 {
		t += s.lastDragDelta * flingFactor
	}
	s.TargetScrollY = clamp(t, 0, s.MaxScroll())
}

// Pull animates the surface down by distance, the way a finger pull would,
// holds it there briefly and then lets it spring back.
func (s *ScrollState) Pull(distance float64) {
	s.dragging = false
	s.idleTicks = -pullHold
	s.TargetScrollY = -math.Min(distance, s.MaxOverscroll)
}

// ScrollTo animates to a named anchor. Implements header.Scroller.
func (s *ScrollState) ScrollTo(a header.Anchor) {
	switch a {
	case header.AnchorTop:
		s.dragging = false
		s.TargetScrollY = 0
	}
}

// Animate performs smooth scroll interpolation. Call once per tick. The
// position snaps to the target when close so resting positions are exact.
func (s *ScrollState) Animate() {
	if !s.dragging {
		s.idleTicks++
		if s.idleTicks > settleDelay {
			s.TargetScrollY = clamp(s.TargetScrollY, 0, s.MaxScroll())
		}
	}
	s.ScrollY = Lerp(s.ScrollY, s.TargetScrollY, AnimSpeed)
	if math.Abs(s.ScrollY-s.TargetScrollY) < snapDistance {
		s.ScrollY = s.TargetScrollY
	}
}

// Settled reports whether the surface is at rest.
func (s *ScrollState) Settled() bool {
	return !s.dragging && s.ScrollY == s.TargetScrollY
}

// Reset sets scroll position back to top.
func (s *ScrollState) Reset() {
	s.ScrollY = 0
	s.TargetScrollY = 0
	s.dragging = false
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
