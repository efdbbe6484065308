package header

import (
	"math"
	"time"
)

// Phase tags a continuous gesture update.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Active reports whether the phase carries a live update.
func (p Phase) Active() bool { return p == PhaseBegan || p == PhaseChanged }

// PinchPanController turns pinch and pan streams into a zoom transform. The
// two streams may interleave freely; the controller is not safe for
// concurrent use and expects the host to deliver both on one goroutine.
type PinchPanController struct {
	scale     float64
	pan       Point
	anchor    Point
	anchorSet bool

	pinching bool
	panning  bool

	scaleAnim Tween
	panAnim   Tween
	panFrom   Point

	// OnZoomChange is called when ZoomActive flips.
	OnZoomChange func(active bool)
}

func NewPinchPanController() *PinchPanController {
	return &PinchPanController{}
}

// Pinch applies a pinch update. factor is the host's cumulative scale factor
// for the gesture (1 means no zoom); loc is the normalized touch location.
func (c *PinchPanController) Pinch(phase Phase, factor float64, loc Point) {
	was := c.ZoomActive()
	defer c.notify(was)

	if !phase.Active() {
		c.pinching = false
		c.settle()
		return
	}
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	if phase == PhaseBegan || !c.pinching {
		c.anchor = Point{clamp(loc.X, 0, 1), clamp(loc.Y, 0, 1)}
		c.anchorSet = true
	}
	c.pinching = true
	c.scaleAnim.Stop()
	c.scale = math.Max(factor-1, -1)
}

// Pan applies a pan update. translation is cumulative since the gesture
// began, so each update replaces the previous one. Updates are ignored
// unless the content is zoomed in.
func (c *PinchPanController) Pan(phase Phase, translation Point) {
	was := c.ZoomActive()
	defer c.notify(was)

	if !phase.Active() {
		c.panning = false
		if c.pinching {
			c.startPanAnim()
			return
		}
		c.settle()
		return
	}
	if c.scale <= 0 {
		return
	}
	if math.IsNaN(translation.X) || math.IsNaN(translation.Y) {
		return
	}
	c.panning = true
	c.panAnim.Stop()
	c.pan = translation
}

// settle animates scale and pan back to zero. The anchor is cleared once the
// scale animation completes.
func (c *PinchPanController) settle() {
	if !c.scaleAnim.Running() {
		c.scaleAnim.Start(c.scale, 0, SettleDuration)
	}
	c.startPanAnim()
}

func (c *PinchPanController) startPanAnim() {
	if c.pan.IsZero() {
		c.panAnim.Stop()
		return
	}
	c.panFrom = c.pan
	c.panAnim.Start(1, 0, SettleDuration)
}

// Tick advances the end-of-gesture animations and reports whether anything
// changed.
func (c *PinchPanController) Tick(dt time.Duration) bool {
	if !c.scaleAnim.Running() && !c.panAnim.Running() {
		return false
	}
	was := c.ZoomActive()
	if c.scaleAnim.Running() {
		v, done := c.scaleAnim.Advance(dt)
		c.scale = v
		if done {
			c.scale = 0
			if !c.pinching && !c.panning {
				c.anchor = Point{}
				c.anchorSet = false
			}
		}
	}
	if c.panAnim.Running() {
		f, done := c.panAnim.Advance(dt)
		c.pan = c.panFrom.Mul(f)
		if done {
			c.pan = Point{}
		}
	}
	c.notify(was)
	return true
}

func (c *PinchPanController) notify(was bool) {
	if now := c.ZoomActive(); now != was && c.OnZoomChange != nil {
		c.OnZoomChange(now)
	}
}

// Scale is the raw zoom amount: 0 is no zoom, negative while pinching in.
func (c *PinchPanController) Scale() float64 { return c.scale }

// PanOffset is the current translation.
func (c *PinchPanController) PanOffset() Point { return c.pan }

// Anchor returns the latched pinch location and whether one is set.
func (c *PinchPanController) Anchor() (Point, bool) { return c.anchor, c.anchorSet }

// ZoomActive reports a non-zero scale. Hosts use it to suppress scrolling.
func (c *PinchPanController) ZoomActive() bool { return c.scale != 0 }

// Animating reports whether an end-of-gesture animation is in flight.
func (c *PinchPanController) Animating() bool {
	return c.scaleAnim.Running() || c.panAnim.Running()
}

// Transform returns the render transform. Pan only applies while zoomed in.
func (c *PinchPanController) Transform() ZoomTransform {
	t := ZoomTransform{
		Scale:     1 + math.Max(c.scale, 0),
		Anchor:    c.anchor,
		AnchorSet: c.anchorSet,
		Active:    c.ZoomActive(),
	}
	if c.scale > 0 {
		t.Pan = c.pan
	}
	return t
}

// Reset drops all gesture state immediately.
func (c *PinchPanController) Reset() {
	was := c.ZoomActive()
	*c = PinchPanController{OnZoomChange: c.OnZoomChange}
	c.notify(was)
}
