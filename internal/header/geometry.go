package header

import "math"

// Scroll-up button travel, in pixels. The button rests this far below its
// anchor and slides in as the content scrolls up by the same distance.
const scrollUpTravel = 130

// Geometry maps a scroll offset to derived visual quantities. It is a value
// type; construct it with NewGeometry so the collapse range is known to be
// positive.
type Geometry struct {
	s        Settings
	topInset float64
	span     float64
}

// NewGeometry validates s against topInset and returns the geometry model.
func NewGeometry(s Settings, topInset float64) (Geometry, error) {
	if err := s.Validate(topInset); err != nil {
		return Geometry{}, err
	}
	return Geometry{
		s:        s,
		topInset: topInset,
		span:     s.MaxHeaderHeight - (s.MinHeaderHeight + topInset),
	}, nil
}

func (g Geometry) Settings() Settings     { return g.s }
func (g Geometry) TopInset() float64      { return g.topInset }
func (g Geometry) CollapseRange() float64 { return g.span }

// rawProgress is the unclamped collapse fraction.
func (g Geometry) rawProgress(offset float64) float64 {
	return -offset / g.span
}

// Progress is 0 when fully expanded, 1 when fully collapsed and negative while
// the header stretches under overscroll. The result is clamped to [-1, 1].
func (g Geometry) Progress(offset float64) float64 {
	return clamp(g.rawProgress(offset), -1, 1)
}

// HeaderHeight grows with overscroll and shrinks to min+inset.
func (g Geometry) HeaderHeight(offset float64) float64 {
	return math.Max(g.s.MaxHeaderHeight+offset, g.s.MinHeaderHeight+g.topInset)
}

// TopBarOpacity fades the condensed bar in while collapsing only.
func (g Geometry) TopBarOpacity(offset float64) float64 {
	return clamp(g.Progress(offset), 0, 1)
}

// HeaderBlur grows under overscroll. Zero when blur is disabled.
func (g Geometry) HeaderBlur(offset float64) float64 {
	if !g.s.BlurEnabled {
		return 0
	}
	if p := g.Progress(offset); p < 0 {
		return -p * g.s.MaxBlurRadius
	}
	return 0
}

// TopBarBlur is the blur of the top bar's background material. It grows while
// collapsing and is independent of BlurEnabled.
func (g Geometry) TopBarBlur(offset float64) float64 {
	if p := g.Progress(offset); p > 0 {
		return p * g.s.MaxBlurRadius
	}
	return 0
}

// CornerRadius interpolates toward zero while collapsing and keeps the
// configured radius otherwise.
func (g Geometry) CornerRadius(offset float64) float64 {
	if offset < 0 {
		return (1 - g.Progress(offset)) * g.s.CornerRadius
	}
	return g.s.CornerRadius
}

// TopBarReveal is how far the condensed bar has slid in, in [0, 1]. It stays
// at zero until the collapse passes TopBarRevealRatio.
func (g Geometry) TopBarReveal(offset float64) float64 {
	p := g.rawProgress(offset)
	r := g.s.TopBarRevealRatio
	if r >= 1 {
		if p >= 1 {
			return 1
		}
		return 0
	}
	return clamp((p-r)/(1-r), 0, 1)
}

// TopBarHeight is the revealed portion of the collapse range.
func (g Geometry) TopBarHeight(offset float64) float64 {
	return g.TopBarReveal(offset) * g.span
}

// TopBarShift is the vertical translation of a top bar of the given height:
// fully above the viewport when expanded, at rest when collapsed.
func (g Geometry) TopBarShift(offset, barHeight float64) float64 {
	return barHeight*g.Progress(offset) - barHeight
}

// RefreshRotation is the pull indicator's rotation in degrees.
func (g Geometry) RefreshRotation(offset float64) float64 {
	return math.Min(offset/g.s.RefreshTriggerDistance, 1) * 360
}

// ScrollUpButtonShift is the downward translation of the scroll-up button.
func (g Geometry) ScrollUpButtonShift(offset float64) float64 {
	return scrollUpTravel + math.Max(-scrollUpTravel, offset)
}

// Compute evaluates every geometry quantity for offset. Refresh and zoom
// fields are left zero; the Container fills them in.
func (g Geometry) Compute(offset float64) Frame {
	f := Frame{
		Offset:          offset,
		TopInset:        g.topInset,
		Progress:        g.Progress(offset),
		HeaderHeight:    g.HeaderHeight(offset),
		HeaderBlur:      g.HeaderBlur(offset),
		CornerRadius:    g.CornerRadius(offset),
		TopBarOpacity:   g.TopBarOpacity(offset),
		TopBarBlur:      g.TopBarBlur(offset),
		TopBarReveal:    g.TopBarReveal(offset),
		RefreshRotation: g.RefreshRotation(offset),
		ScrollUpShift:   g.ScrollUpButtonShift(offset),
		ShowScrollUp:    g.s.ScrollToTopButtonEnabled,
		ShowRefresh:     g.s.RefreshEnabled,
		MaxHeaderHeight: g.s.MaxHeaderHeight,
		RefreshDistance: g.s.RefreshTriggerDistance,
	}
	if !g.s.IgnoreSafeArea {
		f.SafeAreaStrip = g.topInset
	}
	return f
}

// Frame is a snapshot of everything a renderer needs for one redraw.
type Frame struct {
	Offset   float64
	TopInset float64
	Progress float64

	HeaderHeight    float64
	MaxHeaderHeight float64
	HeaderBlur      float64
	CornerRadius    float64
	SafeAreaStrip   float64

	TopBarOpacity float64
	TopBarBlur    float64
	TopBarReveal  float64

	ShowRefresh      bool
	RefreshDistance  float64
	RefreshRotation  float64
	RefreshTriggered bool
	Refreshing       bool

	ShowScrollUp  bool
	ScrollUpShift float64

	Zoom ZoomTransform
}

// TopBarShift mirrors Geometry.TopBarShift for the frame's progress.
func (f Frame) TopBarShift(barHeight float64) float64 {
	return barHeight*f.Progress - barHeight
}

// ZoomTransform is the pinch/pan transform applied to the header content.
type ZoomTransform struct {
	// Scale is the render scale factor, always >= 1.
	Scale     float64
	Anchor    Point
	AnchorSet bool
	Pan       Point
	Active    bool
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
