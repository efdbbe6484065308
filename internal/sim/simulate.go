// Package sim drives a header.Container without a window, for the
// simulate and inspect commands.
package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/depeter/stickynav/internal/header"
)

// Step is one host event: a new scroll offset, or the host finishing its
// refresh.
type Step struct {
	Offset     float64
	EndRefresh bool
}

// Sample is the container's state after one step.
type Sample struct {
	Step  Step
	Frame header.Frame
	State header.RefreshState
	// Fired is set when this step triggered a refresh.
	Fired bool
	// Renders counts the frames the container emitted for this step.
	Renders int
}

// ParseSteps reads a comma separated list of offsets. The word "end" stands
// for the host completing a refresh.
func ParseSteps(s string) ([]Step, error) {
	var steps []Step
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.EqualFold(f, "end") {
			steps = append(steps, Step{EndRefresh: true})
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("offset %q: %w", f, err)
		}
		steps = append(steps, Step{Offset: v})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no offsets given")
	}
	return steps, nil
}

// Simulate feeds steps to a fresh container and records what it emits.
// An EndRefresh step keeps the previous offset.
func Simulate(s header.Settings, inset float64, steps []Step) ([]Sample, error) {
	renders := 0
	c, err := header.NewContainer(s, inset, header.RenderFunc(func(header.Frame) { renders++ }), nil)
	if err != nil {
		return nil, err
	}
	fired := false
	c.OnRefresh = func() { fired = true }

	samples := make([]Sample, 0, len(steps))
	offset := 0.0
	for _, st := range steps {
		renders, fired = 0, false
		if st.EndRefresh {
			c.EndRefresh()
			st.Offset = offset
		} else {
			offset = st.Offset
			c.OnScrollOffsetChanged(offset)
		}
		samples = append(samples, Sample{
			Step:    st,
			Frame:   c.Frame(),
			State:   c.RefreshState(),
			Fired:   fired,
			Renders: renders,
		})
	}
	return samples, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	firedStyle  = cellStyle.Foreground(lipgloss.Color("2")).Bold(true)
)

// Table renders samples as a terminal table.
func Table(samples []Sample) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("offset", "progress", "height", "bar α", "reveal", "blur", "bar blur", "radius", "rotation", "scroll-up", "refresh").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(samples) && samples[row].Fired:
				return firedStyle
			}
			return cellStyle
		})

	for _, s := range samples {
		f := s.Frame
		offset := num(f.Offset)
		if s.Step.EndRefresh {
			offset = "end"
		}
		state := s.State.String()
		if s.Fired {
			state = "FIRED"
		}
		t.Row(
			offset,
			fmt.Sprintf("%.3f", f.Progress),
			num(f.HeaderHeight),
			fmt.Sprintf("%.2f", f.TopBarOpacity),
			fmt.Sprintf("%.2f", f.TopBarReveal),
			num(f.HeaderBlur),
			num(f.TopBarBlur),
			num(f.CornerRadius),
			num(f.RefreshRotation),
			num(f.ScrollUpShift),
			state,
		)
	}
	return t.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
