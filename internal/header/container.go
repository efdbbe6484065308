package header

import (
	"io"
	"log/slog"
	"time"
)

// Renderer receives a fresh Frame whenever derived state changes. The
// container never draws; it only tells the host what to draw.
type Renderer interface {
	Render(Frame)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(Frame)

func (f RenderFunc) Render(fr Frame) { f(fr) }

// Anchor names a scroll position the host can animate to.
type Anchor int

const (
	AnchorTop Anchor = iota
)

// Scroller is the host scroll surface.
type Scroller interface {
	ScrollTo(Anchor)
}

// Container orchestrates geometry, the refresh latch and the zoom controller
// for one header. It owns all mutable state and must be driven from a single
// goroutine; hosts that receive events elsewhere must queue them onto that
// goroutine first.
type Container struct {
	geom     Geometry
	offset   float64
	refresh  *RefreshController
	zoom     *PinchPanController
	renderer Renderer
	scroller Scroller
	log      *slog.Logger

	refreshing bool
	dirty      bool

	// OnRefresh is called once per pull that crosses the trigger distance.
	// The host starts its refresh and later calls EndRefresh.
	OnRefresh func()
}

// NewContainer validates settings against the initial top inset. renderer
// and scroller may be nil.
func NewContainer(s Settings, topInset float64, renderer Renderer, scroller Scroller) (*Container, error) {
	g, err := NewGeometry(s, topInset)
	if err != nil {
		return nil, err
	}
	c := &Container{
		geom:     g,
		refresh:  NewRefreshController(s.RefreshTriggerDistance, s.RefreshEnabled),
		zoom:     NewPinchPanController(),
		renderer: renderer,
		scroller: scroller,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.refresh.OnRefresh = c.startRefresh
	c.dirty = true
	c.flush()
	return c, nil
}

// SetLogger replaces the discard logger.
func (c *Container) SetLogger(l *slog.Logger) {
	if l != nil {
		c.log = l
	}
}

// Configure swaps in new settings. Invalid settings are rejected and the
// previous configuration stays active.
func (c *Container) Configure(s Settings) error {
	g, err := NewGeometry(s, c.geom.TopInset())
	if err != nil {
		return err
	}
	c.geom = g
	c.refresh.Configure(s.RefreshTriggerDistance, s.RefreshEnabled)
	c.markDirty()
	return nil
}

// SetTopInset updates the safe-area inset for the current layout pass. An
// inset that would leave no collapse range is rejected.
func (c *Container) SetTopInset(inset float64) error {
	if inset == c.geom.TopInset() {
		return nil
	}
	g, err := NewGeometry(c.geom.Settings(), inset)
	if err != nil {
		return err
	}
	c.geom = g
	c.markDirty()
	return nil
}

// OnScrollOffsetChanged feeds the latest scroll offset.
func (c *Container) OnScrollOffsetChanged(offset float64) {
	if offset != c.offset {
		c.offset = offset
		c.dirty = true
	}
	was := c.refresh.State()
	c.refresh.Update(offset)
	if c.refresh.State() != was {
		c.dirty = true
	}
	c.flush()
}

// OnPinchUpdate forwards a pinch update to the zoom controller.
func (c *Container) OnPinchUpdate(phase Phase, factor float64, loc Point) {
	c.zoom.Pinch(phase, factor, loc)
	c.markDirty()
}

// OnPanUpdate forwards a pan update to the zoom controller.
func (c *Container) OnPanUpdate(phase Phase, translation Point) {
	c.zoom.Pan(phase, translation)
	c.markDirty()
}

// OnScrollToTopRequested asks the host to animate back to the baseline.
func (c *Container) OnScrollToTopRequested() {
	if c.scroller == nil {
		return
	}
	c.log.Debug("scroll to top", "offset", c.offset)
	c.scroller.ScrollTo(AnchorTop)
}

// Tick advances animations by dt. Call once per frame.
func (c *Container) Tick(dt time.Duration) {
	if c.zoom.Tick(dt) {
		c.markDirty()
	}
}

// EndRefresh is called by the host once its refresh operation completes.
func (c *Container) EndRefresh() {
	if !c.refreshing && !c.refresh.Triggered() {
		return
	}
	c.refreshing = false
	c.refresh.Complete()
	c.log.Debug("refresh finished")
	c.markDirty()
}

func (c *Container) startRefresh() {
	c.refreshing = true
	c.dirty = true
	c.log.Info("refresh triggered", "offset", c.offset, "distance", c.geom.Settings().RefreshTriggerDistance)
	if c.OnRefresh != nil {
		c.OnRefresh()
	}
}

func (c *Container) markDirty() {
	c.dirty = true
	c.flush()
}

func (c *Container) flush() {
	if !c.dirty {
		return
	}
	c.dirty = false
	if c.renderer != nil {
		c.renderer.Render(c.Frame())
	}
}

// Frame computes the full render snapshot for the current state.
func (c *Container) Frame() Frame {
	f := c.geom.Compute(c.offset)
	f.RefreshTriggered = c.refresh.Triggered()
	f.Refreshing = c.refreshing
	f.Zoom = c.zoom.Transform()
	return f
}

func (c *Container) Settings() Settings         { return c.geom.Settings() }
func (c *Container) Geometry() Geometry         { return c.geom }
func (c *Container) Offset() float64            { return c.offset }
func (c *Container) Progress() float64          { return c.geom.Progress(c.offset) }
func (c *Container) HeaderHeight() float64      { return c.geom.HeaderHeight(c.offset) }
func (c *Container) TopBarOpacity() float64     { return c.geom.TopBarOpacity(c.offset) }
func (c *Container) HeaderBlur() float64        { return c.geom.HeaderBlur(c.offset) }
func (c *Container) TopBarBlur() float64        { return c.geom.TopBarBlur(c.offset) }
func (c *Container) CornerRadius() float64      { return c.geom.CornerRadius(c.offset) }
func (c *Container) IsRefreshTriggered() bool   { return c.refresh.Triggered() }
func (c *Container) IsRefreshing() bool         { return c.refreshing }
func (c *Container) IsZoomActive() bool         { return c.zoom.ZoomActive() }
func (c *Container) RefreshState() RefreshState { return c.refresh.State() }

// Zoom exposes the zoom controller, mainly so hosts can hook OnZoomChange.
func (c *Container) Zoom() *PinchPanController { return c.zoom }
