package gesture

import (
	"math"
	"sort"

	"github.com/depeter/stickynav/internal/header"
)

// minPinchDist avoids degenerate scale factors when two touches land on
// (almost) the same pixel.
const minPinchDist = 4.0

// Touch is one active pointer sample for the current tick.
type Touch struct {
	ID   int
	X, Y float64
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Normalize maps a screen point into the rectangle's unit square.
func (r Rect) Normalize(x, y float64) header.Point {
	p := header.Point{}
	if r.W > 0 {
		p.X = (x - r.X) / r.W
	}
	if r.H > 0 {
		p.Y = (y - r.Y) / r.H
	}
	return p
}

// TouchRecognizer turns per-tick touch samples into phase-tagged pinch and
// pan updates. Two touches form a pinch; any touches form a pan whose
// translation is cumulative since the gesture began. Both may be live at the
// same time, matching recognizers that fire simultaneously.
type TouchRecognizer struct {
	// Bounds is the view gestures start in; pinch locations are normalized
	// against it.
	Bounds Rect

	OnPinch func(phase header.Phase, factor float64, loc header.Point)
	OnPan   func(phase header.Phase, translation header.Point)

	pinching    bool
	pinchIDs    [2]int
	initialDist float64
	lastFactor  float64
	lastLoc     header.Point

	panning   bool
	panCount  int
	panOrigin header.Point
	panBase   header.Point
	lastPan   header.Point
}

// Pinching reports whether a pinch is in progress.
func (r *TouchRecognizer) Pinching() bool { return r.pinching }

// Panning reports whether a pan is in progress.
func (r *TouchRecognizer) Panning() bool { return r.panning }

// Update consumes the active touches for one tick.
func (r *TouchRecognizer) Update(touches []Touch) {
	ts := make([]Touch, len(touches))
	copy(ts, touches)
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })

	r.updatePinch(ts)
	r.updatePan(ts)
}

// Cancel ends any gesture in progress.
func (r *TouchRecognizer) Cancel() {
	if r.pinching {
		r.pinching = false
		r.emitPinch(header.PhaseCancelled, r.lastFactor, r.lastLoc)
	}
	if r.panning {
		r.panning = false
		r.emitPan(header.PhaseCancelled, r.lastPan)
	}
}

func (r *TouchRecognizer) updatePinch(ts []Touch) {
	if len(ts) < 2 {
		if r.pinching {
			r.pinching = false
			r.emitPinch(header.PhaseEnded, r.lastFactor, r.lastLoc)
		}
		return
	}

	a, b := ts[0], ts[1]
	cx, cy := (a.X+b.X)/2, (a.Y+b.Y)/2
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	loc := r.Bounds.Normalize(cx, cy)

	if r.pinching && (r.pinchIDs[0] != a.ID || r.pinchIDs[1] != b.ID) {
		r.pinching = false
		r.emitPinch(header.PhaseEnded, r.lastFactor, r.lastLoc)
	}

	if !r.pinching {
		if dist < minPinchDist || !r.Bounds.Contains(cx, cy) {
			return
		}
		r.pinching = true
		r.pinchIDs = [2]int{a.ID, b.ID}
		r.initialDist = dist
		r.lastFactor = 1
		r.lastLoc = loc
		r.emitPinch(header.PhaseBegan, 1, loc)
		return
	}

	factor := dist / r.initialDist
	if factor == r.lastFactor && loc == r.lastLoc {
		return
	}
	r.lastFactor = factor
	r.lastLoc = loc
	r.emitPinch(header.PhaseChanged, factor, loc)
}

func (r *TouchRecognizer) updatePan(ts []Touch) {
	if len(ts) == 0 {
		if r.panning {
			r.panning = false
			r.emitPan(header.PhaseEnded, r.lastPan)
		}
		return
	}

	var c header.Point
	for _, t := range ts {
		c.X += t.X
		c.Y += t.Y
	}
	c = c.Mul(1 / float64(len(ts)))

	if !r.panning {
		if !r.Bounds.Contains(c.X, c.Y) {
			return
		}
		r.panning = true
		r.panCount = len(ts)
		r.panOrigin = c
		r.panBase = header.Point{}
		r.lastPan = header.Point{}
		r.emitPan(header.PhaseBegan, r.lastPan)
		return
	}

	// A finger landing or lifting moves the centroid; rebase so the
	// translation stays continuous.
	if len(ts) != r.panCount {
		r.panCount = len(ts)
		r.panBase = r.lastPan
		r.panOrigin = c
		return
	}

	tr := r.panBase.Add(c.Sub(r.panOrigin))
	if tr == r.lastPan {
		return
	}
	r.lastPan = tr
	r.emitPan(header.PhaseChanged, tr)
}

func (r *TouchRecognizer) emitPinch(phase header.Phase, factor float64, loc header.Point) {
	if r.OnPinch != nil {
		r.OnPinch(phase, factor, loc)
	}
}

func (r *TouchRecognizer) emitPan(phase header.Phase, tr header.Point) {
	if r.OnPan != nil {
		r.OnPan(phase, tr)
	}
}
