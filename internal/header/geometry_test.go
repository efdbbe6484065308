package header

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	s := DefaultSettings()
	s.MinHeaderHeight = 80
	s.MaxHeaderHeight = 300
	s.RefreshTriggerDistance = 120
	return s
}

func mustGeometry(t *testing.T, s Settings, inset float64) Geometry {
	t.Helper()
	g, err := NewGeometry(s, inset)
	require.NoError(t, err)
	return g
}

func TestGeometryCollapseScenario(t *testing.T) {
	g := mustGeometry(t, testSettings(), 20)
	require.Equal(t, 200.0, g.CollapseRange())

	offsets := []float64{0, -50, -200, -220}
	wantProgress := []float64{0, 0.25, 1, 1}
	wantHeight := []float64{300, 250, 100, 100}

	for i, off := range offsets {
		assert.InDelta(t, wantProgress[i], g.Progress(off), 1e-9, "progress at offset %v", off)
		assert.InDelta(t, wantHeight[i], g.HeaderHeight(off), 1e-9, "height at offset %v", off)
	}
}

func TestProgressIsClamped(t *testing.T) {
	g := mustGeometry(t, testSettings(), 0)
	for off := -5000.0; off <= 5000; off += 37 {
		p := g.Progress(off)
		assert.GreaterOrEqual(t, p, -1.0)
		assert.LessOrEqual(t, p, 1.0)
	}
	assert.Equal(t, 1.0, g.Progress(-1e9))
	assert.Equal(t, -1.0, g.Progress(1e9))
}

func TestHeaderHeightMonotonic(t *testing.T) {
	s := testSettings()
	g := mustGeometry(t, s, 20)
	prev := g.HeaderHeight(0)
	for off := 0.0; off >= -600; off -= 5 {
		h := g.HeaderHeight(off)
		want := s.MaxHeaderHeight + off
		if floor := s.MinHeaderHeight + 20; want < floor {
			want = floor
		}
		assert.Equal(t, want, h)
		assert.LessOrEqual(t, h, prev, "height must not grow as offset decreases")
		prev = h
	}
}

func TestHeaderHeightStretchesUnderOverscroll(t *testing.T) {
	g := mustGeometry(t, testSettings(), 0)
	assert.Equal(t, 350.0, g.HeaderHeight(50))
}

func TestTopBarOpacity(t *testing.T) {
	g := mustGeometry(t, testSettings(), 20)

	for _, off := range []float64{0, 10, 100, 400} {
		assert.Zero(t, g.TopBarOpacity(off), "offset %v", off)
	}

	prev := 0.0
	for off := 0.0; off >= -200; off -= 10 {
		op := g.TopBarOpacity(off)
		assert.GreaterOrEqual(t, op, prev)
		prev = op
	}
	assert.Equal(t, 1.0, g.TopBarOpacity(-200))
	assert.Equal(t, 1.0, g.TopBarOpacity(-900))
}

func TestBlurAsymmetry(t *testing.T) {
	s := testSettings()
	s.BlurEnabled = true
	s.MaxBlurRadius = 10
	g := mustGeometry(t, s, 20)

	// overscroll: header blurs, top bar does not
	assert.InDelta(t, 2.5, g.HeaderBlur(50), 1e-9)
	assert.Zero(t, g.TopBarBlur(50))

	// collapsing: top bar blurs, header does not
	assert.Zero(t, g.HeaderBlur(-50))
	assert.InDelta(t, 2.5, g.TopBarBlur(-50), 1e-9)

	assert.Zero(t, g.HeaderBlur(0))
	assert.Zero(t, g.TopBarBlur(0))
}

func TestHeaderBlurDisabled(t *testing.T) {
	s := testSettings()
	s.BlurEnabled = false
	g := mustGeometry(t, s, 0)
	assert.Zero(t, g.HeaderBlur(150))
	assert.NotZero(t, g.TopBarBlur(-50))
}

func TestCornerRadius(t *testing.T) {
	s := testSettings()
	s.CornerRadius = 20
	g := mustGeometry(t, s, 20)

	assert.Equal(t, 20.0, g.CornerRadius(0))
	assert.Equal(t, 20.0, g.CornerRadius(40))
	assert.InDelta(t, 15.0, g.CornerRadius(-50), 1e-9)
	assert.InDelta(t, 0.0, g.CornerRadius(-200), 1e-9)
	assert.InDelta(t, 0.0, g.CornerRadius(-500), 1e-9)
}

func TestTopBarReveal(t *testing.T) {
	s := testSettings()
	s.TopBarRevealRatio = 0.5
	g := mustGeometry(t, s, 0) // range 220

	assert.Zero(t, g.TopBarReveal(0))
	assert.Zero(t, g.TopBarReveal(-110))
	assert.InDelta(t, 0.5, g.TopBarReveal(-165), 1e-9)
	assert.Equal(t, 1.0, g.TopBarReveal(-220))
	assert.Equal(t, 1.0, g.TopBarReveal(-1000))
	assert.InDelta(t, 110.0, g.TopBarHeight(-165), 1e-9)

	s.TopBarRevealRatio = 1
	g = mustGeometry(t, s, 0)
	assert.Zero(t, g.TopBarReveal(-219))
	assert.Equal(t, 1.0, g.TopBarReveal(-220))
}

func TestTopBarShift(t *testing.T) {
	g := mustGeometry(t, testSettings(), 20)
	assert.Equal(t, -60.0, g.TopBarShift(0, 60))
	assert.InDelta(t, 0.0, g.TopBarShift(-200, 60), 1e-9)
	assert.InDelta(t, -45.0, g.TopBarShift(-50, 60), 1e-9)
}

func TestRefreshRotationAndScrollUpShift(t *testing.T) {
	g := mustGeometry(t, testSettings(), 0)
	assert.InDelta(t, 180.0, g.RefreshRotation(60), 1e-9)
	assert.Equal(t, 360.0, g.RefreshRotation(500))

	assert.Equal(t, 130.0, g.ScrollUpButtonShift(0))
	assert.Equal(t, 80.0, g.ScrollUpButtonShift(-50))
	assert.Equal(t, 0.0, g.ScrollUpButtonShift(-400))
	assert.Equal(t, 170.0, g.ScrollUpButtonShift(40))
}

func TestComputeMatchesAccessors(t *testing.T) {
	s := testSettings()
	s.BlurEnabled = true
	s.CornerRadius = 12
	s.IgnoreSafeArea = false
	g := mustGeometry(t, s, 24)

	for _, off := range []float64{80, 0, -33, -196, -400} {
		f := g.Compute(off)
		assert.Equal(t, off, f.Offset)
		assert.Equal(t, g.Progress(off), f.Progress)
		assert.Equal(t, g.HeaderHeight(off), f.HeaderHeight)
		assert.Equal(t, g.HeaderBlur(off), f.HeaderBlur)
		assert.Equal(t, g.TopBarBlur(off), f.TopBarBlur)
		assert.Equal(t, g.TopBarOpacity(off), f.TopBarOpacity)
		assert.Equal(t, g.CornerRadius(off), f.CornerRadius)
		assert.Equal(t, g.TopBarShift(off, 70), f.TopBarShift(70))
		assert.Equal(t, 24.0, f.SafeAreaStrip)
	}
}

func TestNewGeometryRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Settings)
		inset float64
		field string
	}{
		{"zero collapse range", func(s *Settings) { s.MaxHeaderHeight = s.MinHeaderHeight }, 0, "max_height"},
		{"inset eats range", func(s *Settings) {}, 220, "max_height"},
		{"max below min", func(s *Settings) { s.MaxHeaderHeight = 50 }, 0, "max_height"},
		{"negative refresh distance", func(s *Settings) { s.RefreshTriggerDistance = -1 }, 0, "refresh_height"},
		{"zero refresh distance", func(s *Settings) { s.RefreshTriggerDistance = 0 }, 0, "refresh_height"},
		{"negative corner radius", func(s *Settings) { s.CornerRadius = -3 }, 0, "corner_radius"},
		{"reveal ratio zero", func(s *Settings) { s.TopBarRevealRatio = 0 }, 0, "top_bar_reveal_ratio"},
		{"reveal ratio above one", func(s *Settings) { s.TopBarRevealRatio = 1.5 }, 0, "top_bar_reveal_ratio"},
		{"negative inset", func(s *Settings) {}, -4, "top_inset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			tt.edit(&s)
			_, err := NewGeometry(s, tt.inset)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSettings))

			var se *SettingsError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.field, se.Field)
		})
	}
}
