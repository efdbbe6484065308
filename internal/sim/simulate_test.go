package sim

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stickynav/internal/header"
)

func settings() header.Settings {
	s := header.DefaultSettings()
	s.MinHeaderHeight = 100
	s.MaxHeaderHeight = 300
	s.RefreshTriggerDistance = 120
	return s
}

func TestParseSteps(t *testing.T) {
	steps, err := ParseSteps("0, -50,130 ,end,,0")
	require.NoError(t, err)
	assert.Equal(t, []Step{
		{Offset: 0},
		{Offset: -50},
		{Offset: 130},
		{EndRefresh: true},
		{Offset: 0},
	}, steps)

	_, err = ParseSteps("1,abc")
	assert.Error(t, err)

	_, err = ParseSteps(" , ")
	assert.Error(t, err)
}

func TestSimulateCollapse(t *testing.T) {
	steps, err := ParseSteps("0,-100,-200,-250")
	require.NoError(t, err)
	samples, err := Simulate(settings(), 0, steps)
	require.NoError(t, err)
	require.Len(t, samples, 4)

	assert.Equal(t, 300.0, samples[0].Frame.HeaderHeight)
	assert.InDelta(t, 0.5, samples[1].Frame.Progress, 1e-9)
	assert.Equal(t, 200.0, samples[1].Frame.HeaderHeight)
	assert.Equal(t, 1.0, samples[2].Frame.Progress)
	assert.Equal(t, 100.0, samples[3].Frame.HeaderHeight, "clamped at min height")
	for _, s := range samples {
		assert.False(t, s.Fired)
	}
}

func TestSimulateRefreshFiresOncePerPull(t *testing.T) {
	steps, err := ParseSteps("40,120,150,end,90,130,0,125")
	require.NoError(t, err)
	samples, err := Simulate(settings(), 0, steps)
	require.NoError(t, err)

	var fired []int
	for i, s := range samples {
		if s.Fired {
			fired = append(fired, i)
		}
	}
	assert.Equal(t, []int{1, 7}, fired, "no retrigger until the offset returns to 0")
	assert.Equal(t, header.RefreshTriggered, samples[2].State)
	assert.Equal(t, header.RefreshIdle, samples[3].State)
	assert.Equal(t, 150.0, samples[3].Step.Offset, "end keeps the previous offset")
}

func TestSimulateRejectsBadSettings(t *testing.T) {
	s := settings()
	s.MaxHeaderHeight = s.MinHeaderHeight
	_, err := Simulate(s, 0, []Step{{Offset: 0}})
	assert.ErrorIs(t, err, header.ErrInvalidSettings)
}

func TestSimulateCountsRenders(t *testing.T) {
	samples, err := Simulate(settings(), 0, []Step{{Offset: -10}, {Offset: -10}})
	require.NoError(t, err)
	assert.Equal(t, 1, samples[0].Renders)
	assert.Equal(t, 0, samples[1].Renders, "unchanged offset does not redraw")
}

func TestTableMarksFiredRow(t *testing.T) {
	samples, err := Simulate(settings(), 0, []Step{{Offset: 0}, {Offset: 130}, {EndRefresh: true}})
	require.NoError(t, err)
	out := Table(samples)
	assert.Contains(t, out, "FIRED")
	assert.Contains(t, out, "end")
	assert.Contains(t, out, "progress")
	assert.Equal(t, 1, strings.Count(out, "FIRED"))
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelScrollAndRefresh(t *testing.T) {
	m, err := NewModel(settings(), 0)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		m.Update(keyPress("up"))
	}
	assert.Equal(t, 120.0, m.Container().Offset())
	assert.True(t, m.Container().IsRefreshing())
	assert.Contains(t, m.View(), "refresh fired")

	m.Update(keyPress("e"))
	assert.False(t, m.Container().IsRefreshing())

	m.Update(keyPress("0"))
	for i := 0; i < 5; i++ {
		m.Update(keyPress("down"))
	}
	assert.InDelta(t, 0.25, m.Container().Progress(), 1e-9)
}

func TestModelPinch(t *testing.T) {
	m, err := NewModel(settings(), 0)
	require.NoError(t, err)

	m.Update(keyPress("+"))
	m.Update(keyPress("+"))
	assert.True(t, m.Container().IsZoomActive())
	assert.InDelta(t, 1.2, m.Container().Frame().Zoom.Scale, 1e-9)

	m.Update(keyPress("space"))
	for i := 0; i < 30; i++ {
		m.Update(frameMsg{})
	}
	assert.False(t, m.Container().IsZoomActive(), "zoom settles after release")
}

func TestModelScrollToTop(t *testing.T) {
	m, err := NewModel(settings(), 0)
	require.NoError(t, err)
	m.Update(keyPress("J"))
	require.Equal(t, -60.0, m.Container().Offset())

	m.Update(keyPress("t"))
	for i := 0; i < 40; i++ {
		m.Update(frameMsg{})
	}
	assert.Equal(t, 0.0, m.Container().Offset())
}

func TestModelQuit(t *testing.T) {
	m, err := NewModel(settings(), 0)
	require.NoError(t, err)
	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
