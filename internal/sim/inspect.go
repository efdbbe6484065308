package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/depeter/stickynav/internal/header"
)

const (
	frameInterval = time.Second / 30
	gaugeWidth    = 40
	scrollStep    = 10
	pageStep      = 60
	pinchStep     = 0.1
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Baseline   key.Binding
	EndRefresh key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Release    key.Binding
	ScrollTop  key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "pull down"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "K"),
		key.WithHelp("pgup", "pull down more"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "J"),
		key.WithHelp("pgdn", "scroll up more"),
	),
	Baseline: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "baseline"),
	),
	EndRefresh: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "end refresh"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "pinch out"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "pinch in"),
	),
	Release: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "release pinch"),
	),
	ScrollTop: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "scroll to top"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("7"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	eventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type frameMsg time.Time

// scroller lets the scroll-to-top request move the simulated offset.
type scroller struct{ requested bool }

func (s *scroller) ScrollTo(header.Anchor) { s.requested = true }

// Model is an interactive view of a Container. Keys stand in for scroll and
// pinch input; the gauges show the derived values.
type Model struct {
	c        *header.Container
	scroll   *scroller
	offset   float64
	pinching bool
	factor   float64
	renders  int
	events   []string

	gauge progress.Model
}

// NewModel builds the inspector around a fresh container.
func NewModel(s header.Settings, inset float64) (*Model, error) {
	m := &Model{
		scroll: &scroller{},
		gauge:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(gaugeWidth), progress.WithoutPercentage()),
	}
	c, err := header.NewContainer(s, inset, header.RenderFunc(func(header.Frame) { m.renders++ }), m.scroll)
	if err != nil {
		return nil, err
	}
	c.OnRefresh = func() { m.logEvent("refresh fired at %.1f", m.offset) }
	c.Zoom().OnZoomChange = func(active bool) { m.logEvent("zoom active=%v", active) }
	m.c = c
	return m, nil
}

// Container exposes the driven container.
func (m *Model) Container() *header.Container { return m.c }

func (m *Model) logEvent(format string, args ...any) {
	m.events = append(m.events, fmt.Sprintf(format, args...))
	if len(m.events) > 5 {
		m.events = m.events[len(m.events)-5:]
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.scroll.requested {
			// Ease back to the baseline like an animated scroll view.
			m.setOffset(m.offset * 0.7)
			if m.offset > -0.5 && m.offset < 0.5 {
				m.setOffset(0)
				m.scroll.requested = false
			}
		}
		m.c.Tick(frameInterval)
		return m, frameTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.scrollBy(scrollStep)
	case key.Matches(msg, keys.Down):
		m.scrollBy(-scrollStep)
	case key.Matches(msg, keys.PageUp):
		m.scrollBy(pageStep)
	case key.Matches(msg, keys.PageDown):
		m.scrollBy(-pageStep)
	case key.Matches(msg, keys.Baseline):
		m.scroll.requested = false
		m.setOffset(0)
	case key.Matches(msg, keys.EndRefresh):
		m.c.EndRefresh()
		m.logEvent("refresh ended")
	case key.Matches(msg, keys.ZoomIn):
		m.pinch(pinchStep)
	case key.Matches(msg, keys.ZoomOut):
		m.pinch(-pinchStep)
	case key.Matches(msg, keys.Release):
		if m.pinching {
			m.pinching = false
			m.c.OnPinchUpdate(header.PhaseEnded, m.factor, header.Point{X: 0.5, Y: 0.5})
		}
	case key.Matches(msg, keys.ScrollTop):
		m.c.OnScrollToTopRequested()
	}
	return m, nil
}

func (m *Model) scrollBy(d float64) {
	m.scroll.requested = false
	m.setOffset(m.offset + d)
}

func (m *Model) setOffset(v float64) {
	m.offset = v
	m.c.OnScrollOffsetChanged(v)
}

func (m *Model) pinch(d float64) {
	loc := header.Point{X: 0.5, Y: 0.5}
	if !m.pinching {
		m.pinching = true
		m.factor = 1
		m.c.OnPinchUpdate(header.PhaseBegan, 1, loc)
	}
	m.factor = max(0.1, m.factor+d)
	m.c.OnPinchUpdate(header.PhaseChanged, m.factor, loc)
}

func (m *Model) View() string {
	f := m.c.Frame()
	s := m.c.Settings()
	var b strings.Builder

	b.WriteString(titleStyle.Render("stickynav inspect"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	gauge := func(label string, frac float64, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(m.gauge.ViewAs(clamp01(frac)))
		b.WriteString(" ")
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("offset", fmt.Sprintf("%.1f", f.Offset))
	gauge("progress", f.Progress, fmt.Sprintf("%.3f", f.Progress))
	gauge("header", (f.HeaderHeight-s.MinHeaderHeight)/(s.MaxHeaderHeight-s.MinHeaderHeight), fmt.Sprintf("%.1f", f.HeaderHeight))
	gauge("bar opacity", f.TopBarOpacity, fmt.Sprintf("%.2f", f.TopBarOpacity))
	gauge("bar reveal", f.TopBarReveal, fmt.Sprintf("%.2f", f.TopBarReveal))
	gauge("header blur", ratio(f.HeaderBlur, s.MaxBlurRadius), fmt.Sprintf("%.2f", f.HeaderBlur))
	gauge("bar blur", ratio(f.TopBarBlur, s.MaxBlurRadius), fmt.Sprintf("%.2f", f.TopBarBlur))
	gauge("corner", ratio(f.CornerRadius, s.CornerRadius), fmt.Sprintf("%.1f", f.CornerRadius))
	gauge("pull", f.RefreshRotation/360, fmt.Sprintf("%.0f°", f.RefreshRotation))
	row("refresh", m.c.RefreshState().String())
	row("zoom", fmt.Sprintf("active=%v scale=%.3f", f.Zoom.Active, f.Zoom.Scale))
	row("scroll-up", fmt.Sprintf("%.1f", f.ScrollUpShift))
	row("renders", fmt.Sprintf("%d", m.renders))

	b.WriteString("\n")
	for _, e := range m.events {
		b.WriteString(eventStyle.Render("• " + e))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine()))
	b.WriteString("\n")
	return b.String()
}

func helpLine() string {
	var parts []string
	for _, k := range []key.Binding{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Baseline, keys.EndRefresh, keys.ZoomIn, keys.ZoomOut, keys.Release, keys.ScrollTop, keys.Quit} {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return v / maxV
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
