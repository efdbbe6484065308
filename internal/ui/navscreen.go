package ui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/stickynav/internal/cache"
	"github.com/depeter/stickynav/internal/feed"
	"github.com/depeter/stickynav/internal/gesture"
	"github.com/depeter/stickynav/internal/header"
)

const (
	loadTimeout = 30 * time.Second
	// clickSlop is how far a pointer may travel and still count as a click.
	clickSlop = 8
	// wheelZoomStep is the pinch factor change per wheel unit while the zoom
	// modifier is held.
	wheelZoomStep = 0.1
	// wheelZoomIdle ends an emulated pinch after this many ticks without
	// wheel input.
	wheelZoomIdle = 20
	minOverscroll = 180
)

type loadResult struct {
	page feed.Page
	err  error
}

type imageResult struct {
	url string
	img image.Image
}

// SettingsFunc resolves header settings for a viewport height.
type SettingsFunc func(viewHeight float64) (header.Settings, error)

// NavScreen is a scrolling list under a sticky collapsing header.
type NavScreen struct {
	src         feed.Source
	images      *cache.Images
	settingsFor SettingsFunc
	keys        Keymap
	log         *slog.Logger

	container  *header.Container
	scroll     gesture.ScrollState
	touch      gesture.TouchRecognizer
	view       *HeaderView
	topBar     TopBar
	errDisplay ErrorDisplay

	width, height, inset float64

	page     feed.Page
	loadCh   chan loadResult
	loading  bool
	errText  string
	loadedAt time.Time
	tick     int
	// push holds the content down under the refresh indicator while a
	// refresh is running.
	push float64

	imgMu     sync.Mutex
	imgReady  []imageResult
	requested map[string]bool
	textures  map[string]*ebiten.Image
	uploaded  map[image.Image]*ebiten.Image

	touchIDs   []ebiten.TouchID
	touches    []gesture.Touch
	touchStart header.Point
	touchMoved bool

	mouseDown   bool
	mouseStart  header.Point
	mouseMoved  bool
	mousePan    bool
	wheelZoom   bool
	wheelFactor float64
	wheelIdle   int

	scrollUpRect ButtonRect
}

// NewNavScreen builds the screen and its header container. settingsFor is
// consulted again whenever the viewport height changes.
func NewNavScreen(src feed.Source, images *cache.Images, settingsFor SettingsFunc, keys Keymap, log *slog.Logger) (*NavScreen, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ns := &NavScreen{
		src:         src,
		images:      images,
		settingsFor: settingsFor,
		keys:        keys,
		log:         log,
		view:        NewHeaderView(),
		loadCh:      make(chan loadResult, 1),
		requested:   make(map[string]bool),
		textures:    make(map[string]*ebiten.Image),
		uploaded:    make(map[image.Image]*ebiten.Image),
	}

	s, err := settingsFor(float64(defaultViewHeight))
	if err != nil {
		return nil, err
	}
	c, err := header.NewContainer(s, 0, ns.view, &ns.scroll)
	if err != nil {
		return nil, err
	}
	c.SetLogger(log)
	c.OnRefresh = ns.startLoad
	c.Zoom().OnZoomChange = func(active bool) {
		ns.log.Debug("zoom", "active", active)
		if active && ns.scroll.Dragging() {
			ns.scroll.EndDrag()
		}
	}
	ns.container = c

	ns.touch.OnPinch = c.OnPinchUpdate
	ns.touch.OnPan = c.OnPanUpdate
	return ns, nil
}

// defaultViewHeight seeds the settings before the first layout pass.
const defaultViewHeight = 900

func (ns *NavScreen) Name() string { return "Nav: " + ns.src.Name() }

func (ns *NavScreen) OnEnter() {
	if ns.page.Items == nil && !ns.loading {
		ns.startLoad()
	}
}

func (ns *NavScreen) OnExit() {}

// Container exposes the header for tests and the debug overlay.
func (ns *NavScreen) Container() *header.Container { return ns.container }

// Resize implements Resizable.
func (ns *NavScreen) Resize(width, height, inset float64) {
	if height != ns.height {
		if s, err := ns.settingsFor(height); err != nil {
			ns.log.Warn("header settings rejected for viewport", "height", height, "err", err)
		} else if err := ns.container.Configure(s); err != nil {
			ns.log.Warn("header configure failed", "err", err)
		}
	}
	if inset != ns.inset {
		if err := ns.container.SetTopInset(inset); err != nil {
			ns.log.Warn("top inset rejected, keeping previous", "inset", inset, "err", err)
		} else {
			ns.inset = inset
		}
	}
	ns.width, ns.height = width, height
	ns.view.Resize(width, height)
	ns.touch.Bounds = ns.view.Bounds()
}

func (ns *NavScreen) startLoad() {
	if ns.loading {
		return
	}
	ns.loading = true
	ns.errText = ""
	ns.log.Info("loading feed", "source", ns.src.Name())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		page, err := ns.src.Load(ctx)
		ns.loadCh <- loadResult{page: page, err: err}
	}()
}

func (ns *NavScreen) applyPage(p feed.Page) {
	ns.page = p
	ns.loadedAt = time.Now()
	ns.topBar.Title = p.Title
	ns.topBar.Subtitle = p.Subtitle
	ns.topBar.Avatar = nil

	pages := make([]*ebiten.Image, len(p.Headers))
	labels := make([]string, len(p.Headers))
	for i, h := range p.Headers {
		labels[i] = h.Label
		if h.Image != nil {
			pages[i] = ns.upload(h.Image)
			continue
		}
		pages[i] = ns.texture(h.URL)
	}
	ns.view.SetPages(pages, labels)
	if p.AvatarURL != "" {
		ns.topBar.Avatar = ns.texture(p.AvatarURL)
	}
	ns.log.Info("feed loaded", "items", len(p.Items), "headers", len(p.Headers))
}

// texture returns the uploaded image for url, requesting it if needed.
func (ns *NavScreen) texture(url string) *ebiten.Image {
	if url == "" || ns.images == nil {
		return nil
	}
	if t, ok := ns.textures[url]; ok {
		return t
	}
	if ns.requested[url] {
		return nil
	}
	ns.requested[url] = true
	ns.images.LoadAsync(url, func(img image.Image, err error) {
		if err != nil {
			ns.log.Debug("image load failed", "url", url, "err", err)
			return
		}
		ns.imgMu.Lock()
		ns.imgReady = append(ns.imgReady, imageResult{url: url, img: img})
		ns.imgMu.Unlock()
	})
	return nil
}

func (ns *NavScreen) upload(img image.Image) *ebiten.Image {
	if t, ok := ns.uploaded[img]; ok {
		return t
	}
	t := ImageFromStd(img)
	ns.uploaded[img] = t
	return t
}

// drainImages uploads images that finished loading since the last tick.
func (ns *NavScreen) drainImages() {
	ns.imgMu.Lock()
	ready := ns.imgReady
	ns.imgReady = nil
	ns.imgMu.Unlock()
	if len(ready) == 0 {
		return
	}
	for _, r := range ready {
		ns.textures[r.url] = ns.upload(r.img)
	}
	// Header pages and the avatar may have been waiting on these.
	pages := make([]*ebiten.Image, len(ns.page.Headers))
	labels := make([]string, len(ns.page.Headers))
	for i, h := range ns.page.Headers {
		labels[i] = h.Label
		if h.Image != nil {
			pages[i] = ns.upload(h.Image)
		} else {
			pages[i] = ns.textures[h.URL]
		}
	}
	ns.view.SetPages(pages, labels)
	if ns.page.AvatarURL != "" {
		ns.topBar.Avatar = ns.textures[ns.page.AvatarURL]
	}
}

func (ns *NavScreen) Update() (*ScreenTransition, error) {
	ns.tick++

	select {
	case r := <-ns.loadCh:
		ns.loading = false
		if r.err != nil {
			ns.log.Error("feed load failed", "source", ns.src.Name(), "err", r.err)
			ns.errText = "Failed to load: " + r.err.Error()
		} else {
			ns.applyPage(r.page)
		}
		ns.container.EndRefresh()
	default:
	}
	ns.drainImages()

	ns.handleKeys()
	tr := ns.handleTouches()
	if mtr := ns.handleMouse(); mtr != nil {
		tr = mtr
	}

	ns.updatePush()
	ns.layoutScroll()
	ns.scroll.Animate()
	ns.container.OnScrollOffsetChanged(ns.scroll.Offset())
	ns.container.Tick(time.Second / time.Duration(max(ebiten.TPS(), 1)))
	ns.view.Animate()
	ns.touch.Bounds = ns.view.Bounds()
	ns.requestVisibleThumbs()
	return tr, nil
}

func (ns *NavScreen) handleKeys() {
	switch {
	case ns.keys.JustPressed(ActionScrollTop):
		ns.container.OnScrollToTopRequested()
	case ns.keys.JustPressed(ActionRefresh):
		if s := ns.container.Settings(); s.RefreshEnabled && !ns.container.IsRefreshing() {
			ns.scroll.Pull(s.RefreshTriggerDistance * 1.2)
		}
	case ns.keys.JustPressed(ActionNextPage):
		ns.view.NextPage()
	case ns.keys.JustPressed(ActionPrevPage):
		ns.view.PrevPage()
	case ns.keys.JustPressed(ActionZoomReset):
		ns.container.OnPinchUpdate(header.PhaseCancelled, 1, header.Point{})
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		ns.scroll.HandleWheel(-0.25)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		ns.scroll.HandleWheel(0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ns.scroll.HandleWheel(-ns.height / gesture.WheelSpeed * 0.8)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		ns.scroll.HandleWheel(ns.height / gesture.WheelSpeed * 0.8)
	}
}

func (ns *NavScreen) handleTouches() *ScreenTransition {
	ns.touchIDs, ns.touches = TouchSamples(ns.touchIDs, ns.touches)
	ns.touch.Update(ns.touches)

	switch {
	case len(ns.touches) == 1 && !ns.touch.Pinching() && !ns.container.IsZoomActive():
		t := ns.touches[0]
		if !ns.scroll.Dragging() {
			ns.touchStart = header.Point{X: t.X, Y: t.Y}
			ns.touchMoved = false
			ns.scroll.BeginDrag(t.Y)
			return nil
		}
		if math.Hypot(t.X-ns.touchStart.X, t.Y-ns.touchStart.Y) > clickSlop {
			ns.touchMoved = true
		}
		ns.scroll.DragTo(t.Y)
	case len(ns.touches) == 0 && ns.scroll.Dragging() && !ns.mouseDown:
		ns.scroll.EndDrag()
		if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
			x, y := inpututil.TouchPositionInPreviousTick(ids[0])
			return ns.release(float64(x), float64(y), ns.touchStart, ns.touchMoved)
		}
	case len(ns.touches) > 1 && ns.scroll.Dragging():
		ns.scroll.EndDrag()
	}
	return nil
}

func (ns *NavScreen) handleMouse() *ScreenTransition {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	_, wy := MouseWheelDelta()
	switch {
	case wy != 0 && ZoomModifierPressed() && ns.view.Bounds().Contains(x, y):
		if !ns.wheelZoom {
			ns.wheelZoom = true
			ns.wheelFactor = 1
			ns.container.OnPinchUpdate(header.PhaseBegan, 1, ns.view.Bounds().Normalize(x, y))
		}
		ns.wheelFactor = math.Max(0.25, math.Min(ns.wheelFactor*(1+wy*wheelZoomStep), 4))
		ns.wheelIdle = 0
		ns.container.OnPinchUpdate(header.PhaseChanged, ns.wheelFactor, ns.view.Bounds().Normalize(x, y))
	case wy != 0 && !ns.container.IsZoomActive():
		ns.scroll.HandleWheel(wy)
	}
	if ns.wheelZoom && wy == 0 {
		ns.wheelIdle++
		if ns.wheelIdle > wheelZoomIdle || !ZoomModifierPressed() {
			ns.wheelZoom = false
			ns.container.OnPinchUpdate(header.PhaseEnded, ns.wheelFactor, header.Point{})
		}
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ns.mouseDown = true
		ns.mouseStart = header.Point{X: x, Y: y}
		ns.mouseMoved = false
		if ZoomModifierPressed() && ns.view.Bounds().Contains(x, y) {
			ns.mousePan = true
			ns.container.OnPanUpdate(header.PhaseBegan, header.Point{})
		} else {
			ns.scroll.BeginDrag(y)
		}
	case ns.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if math.Hypot(x-ns.mouseStart.X, y-ns.mouseStart.Y) > clickSlop {
			ns.mouseMoved = true
		}
		if ns.mousePan {
			ns.container.OnPanUpdate(header.PhaseChanged, header.Point{X: x, Y: y}.Sub(ns.mouseStart))
		} else {
			ns.scroll.DragTo(y)
		}
	case ns.mouseDown:
		ns.mouseDown = false
		if ns.mousePan {
			ns.mousePan = false
			ns.container.OnPanUpdate(header.PhaseEnded, header.Point{X: x, Y: y}.Sub(ns.mouseStart))
			return nil
		}
		ns.scroll.EndDrag()
		return ns.release(x, y, ns.mouseStart, ns.mouseMoved)
	}
	return nil
}

// release handles the end of a press: a click when the pointer stayed put,
// a header swipe when it moved sideways.
func (ns *NavScreen) release(x, y float64, start header.Point, moved bool) *ScreenTransition {
	if moved {
		dx := x - start.X
		if math.Abs(dx) > SwipeThreshold && math.Abs(dx) > math.Abs(y-start.Y) && ns.view.Bounds().Contains(start.X, start.Y) {
			if dx < 0 {
				ns.view.NextPage()
			} else {
				ns.view.PrevPage()
			}
		}
		return nil
	}

	px, py := int(x), int(y)
	if ns.errDisplay.HandleClick(px, py, ns.errText) {
		return nil
	}
	if ns.scrollUpRect.Contains(px, py) {
		ns.container.OnScrollToTopRequested()
		return nil
	}
	f := ns.view.Frame()
	if y < f.HeaderHeight {
		return nil
	}
	if i := ns.rowAt(y); i >= 0 {
		it := ns.page.Items[i]
		ns.log.Debug("row selected", "id", it.ID, "title", it.Title)
		return &ScreenTransition{Type: TransitionPush, Screen: NewDetailScreen(it, ns.images, ns.log)}
	}
	return nil
}

func (ns *NavScreen) contentTop() float64 {
	return ns.view.Frame().MaxHeaderHeight + ns.push - ns.scroll.ScrollY + ListPadding
}

func (ns *NavScreen) rowAt(y float64) int {
	i := int(math.Floor((y - ns.contentTop()) / RowHeight))
	if y < ns.contentTop() || i >= len(ns.page.Items) {
		return -1
	}
	return i
}

func (ns *NavScreen) updatePush() {
	target := 0.0
	if ns.container.IsRefreshing() {
		target = RefreshIndicatorH
	}
	ns.push = gesture.Lerp(ns.push, target, gesture.AnimSpeed*1.5)
	if math.Abs(ns.push-target) < 0.5 {
		ns.push = target
	}
}

func (ns *NavScreen) layoutScroll() {
	f := ns.view.Frame()
	ns.scroll.ViewHeight = ns.height
	ns.scroll.ContentHeight = f.MaxHeaderHeight + ns.push + 2*ListPadding + float64(len(ns.page.Items))*RowHeight
	ns.scroll.MaxOverscroll = math.Max(minOverscroll, 1.6*f.RefreshDistance)
}

func (ns *NavScreen) requestVisibleThumbs() {
	top := ns.contentTop()
	first := max(0, int((ns.view.Frame().HeaderHeight-top)/RowHeight))
	last := min(len(ns.page.Items), int((ns.height-top)/RowHeight)+1)
	for i := first; i < last; i++ {
		ns.texture(ns.page.Items[i].ImageURL)
	}
}

func (ns *NavScreen) Draw(dst *ebiten.Image) {
	f := ns.view.Frame()
	ns.drawRows(dst, f)
	ns.view.Draw(dst)
	ns.drawRefreshIndicator(dst, f)
	ns.topBar.Draw(dst, f, ns.width, ns.container.Settings().MinHeaderHeight+f.TopInset, ns.view.Composite())
	ns.drawScrollUp(dst, f)

	if ns.errText != "" {
		ns.errDisplay.Draw(dst, ns.errText, RowPadding, ns.height-RowPadding-FontSizeSmall*2, ns.width-RowPadding*2, FontSizeSmall)
	}
	if ns.loading && len(ns.page.Items) == 0 {
		DrawTextCentered(dst, "Loading...", ns.width/2, ns.height/2, FontSizeHeading, ColorTextSecondary)
	}
}

func (ns *NavScreen) drawRows(dst *ebiten.Image, f header.Frame) {
	top := ns.contentTop()
	for i, it := range ns.page.Items {
		y := top + float64(i)*RowHeight
		if y+RowHeight < f.HeaderHeight {
			continue
		}
		if y > ns.height {
			break
		}
		x := float64(RowPadding)
		ty := y + (RowHeight-RowThumbH)/2
		if t := ns.textures[it.ImageURL]; t != nil {
			DrawImageCover(dst, t, x, ty, RowThumbW, RowThumbH, nil, 1)
		} else {
			vector.DrawFilledRect(dst, float32(x), float32(ty), RowThumbW, RowThumbH, ColorSurface, false)
		}
		tx := x + RowThumbW + RowPadding
		maxW := ns.width - tx - RowPadding
		DrawText(dst, truncateText(it.Title, maxW, FontSizeBody), tx, y+RowHeight/2-FontSizeBody-2, FontSizeBody, ColorText)
		if it.Subtitle != "" {
			DrawText(dst, truncateText(it.Subtitle, maxW, FontSizeSmall), tx, y+RowHeight/2+2, FontSizeSmall, ColorTextSecondary)
		}
		vector.DrawFilledRect(dst, float32(tx), float32(y+RowHeight-1), float32(ns.width-tx), 1, ColorDivider, false)
	}
}

func (ns *NavScreen) drawRefreshIndicator(dst *ebiten.Image, f header.Frame) {
	if !f.ShowRefresh {
		return
	}
	cx := float32(ns.width / 2)
	if f.Refreshing || ns.push > 0.5 {
		cy := float32(f.HeaderHeight + ns.push/2)
		drawSpinner(dst, cx, cy, RefreshArrowR, ns.tick, fade(ColorText, ns.push/RefreshIndicatorH))
		return
	}
	if f.Offset <= 0 {
		return
	}
	alpha := math.Min(f.Offset/f.RefreshDistance, 1)
	c := ColorTextSecondary
	if f.RefreshRotation >= 360 {
		c = ColorPrimary
	}
	drawRefreshArrow(dst, cx, float32(f.HeaderHeight-20), RefreshArrowR, f.RefreshRotation, fade(c, alpha))
}

func (ns *NavScreen) drawScrollUp(dst *ebiten.Image, f header.Frame) {
	ns.scrollUpRect = ButtonRect{}
	if !f.ShowScrollUp {
		return
	}
	cx := ns.width - ScrollUpButtonMargin - ScrollUpButtonR
	cy := ns.height - ScrollUpButtonMargin - ScrollUpButtonR + f.ScrollUpShift
	if cy-ScrollUpButtonR > ns.height {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), ScrollUpButtonR, ColorMaterial, true)
	vector.StrokeCircle(dst, float32(cx), float32(cy), ScrollUpButtonR, 1, ColorDivider, true)
	drawChevronUp(dst, float32(cx), float32(cy), ScrollUpButtonR*0.35, ColorText)
	ns.scrollUpRect = ButtonRect{X: cx - ScrollUpButtonR, Y: cy - ScrollUpButtonR, W: ScrollUpButtonR * 2, H: ScrollUpButtonR * 2}
}

// DebugInfo lists the live header state for the debug overlay.
func (ns *NavScreen) DebugInfo() []string {
	f := ns.view.Frame()
	lines := []string{
		fmt.Sprintf("offset      %8.1f  scrollY %8.1f", f.Offset, ns.scroll.ScrollY),
		fmt.Sprintf("progress    %8.3f", f.Progress),
		fmt.Sprintf("header      %8.1f / %.1f", f.HeaderHeight, f.MaxHeaderHeight),
		fmt.Sprintf("blur        %8.2f  bar %.2f", f.HeaderBlur, f.TopBarBlur),
		fmt.Sprintf("radius      %8.2f", f.CornerRadius),
		fmt.Sprintf("bar         op %.2f  reveal %.2f", f.TopBarOpacity, f.TopBarReveal),
		fmt.Sprintf("refresh     %s  rot %.0f", ns.container.RefreshState(), f.RefreshRotation),
		fmt.Sprintf("zoom        %v  scale %.3f  pan %.0f,%.0f", f.Zoom.Active, f.Zoom.Scale, f.Zoom.Pan.X, f.Zoom.Pan.Y),
		fmt.Sprintf("inset       %8.1f", f.TopInset),
	}
	if !ns.loadedAt.IsZero() {
		lines = append(lines, fmt.Sprintf("loaded      %s ago", time.Since(ns.loadedAt).Truncate(time.Second)))
	}
	return lines
}
