package header

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSettings is the only error class the header produces. It is
// returned when a configuration cannot yield finite geometry.
var ErrInvalidSettings = errors.New("invalid header settings")

// SettingsError describes which field broke a precondition.
type SettingsError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("invalid header settings: %s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *SettingsError) Unwrap() error { return ErrInvalidSettings }

// Settings configures a sticky header. Variants of the component (with or
// without refresh, blur, scroll-up button) are expressed through the flags.
type Settings struct {
	MinHeaderHeight        float64
	MaxHeaderHeight        float64
	CornerRadius           float64
	RefreshTriggerDistance float64
	// TopBarRevealRatio is the fraction of the collapse range after which the
	// condensed top bar starts sliding in.
	TopBarRevealRatio float64
	MaxBlurRadius     float64

	RefreshEnabled           bool
	BlurEnabled              bool
	ScrollToTopButtonEnabled bool
	// IgnoreSafeArea lets the header extend under the top inset. When false a
	// material strip of inset height is drawn above the header.
	IgnoreSafeArea bool
}

// DefaultSettings returns the stock configuration. MaxHeaderHeight is left at
// zero; callers derive it from the viewport (see config.HeaderSettings).
func DefaultSettings() Settings {
	return Settings{
		MinHeaderHeight:          80,
		CornerRadius:             0,
		RefreshTriggerDistance:   120,
		TopBarRevealRatio:        0.5,
		MaxBlurRadius:            10,
		RefreshEnabled:           true,
		BlurEnabled:              false,
		ScrollToTopButtonEnabled: true,
		IgnoreSafeArea:           true,
	}
}

// Validate checks s against a given top inset. A nil result guarantees that
// the collapse range is strictly positive and every geometry value is finite.
func (s Settings) Validate(topInset float64) error {
	checks := []struct {
		field string
		value float64
	}{
		{"min_height", s.MinHeaderHeight},
		{"max_height", s.MaxHeaderHeight},
		{"corner_radius", s.CornerRadius},
		{"refresh_height", s.RefreshTriggerDistance},
		{"top_bar_reveal_ratio", s.TopBarRevealRatio},
		{"max_blur", s.MaxBlurRadius},
		{"top_inset", topInset},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return &SettingsError{Field: c.field, Value: c.value, Reason: "must be finite"}
		}
		if c.value < 0 {
			return &SettingsError{Field: c.field, Value: c.value, Reason: "must not be negative"}
		}
	}

	if s.MaxHeaderHeight < s.MinHeaderHeight {
		return &SettingsError{Field: "max_height", Value: s.MaxHeaderHeight,
			Reason: fmt.Sprintf("must be >= min_height (%g)", s.MinHeaderHeight)}
	}
	if r := s.MaxHeaderHeight - (s.MinHeaderHeight + topInset); r <= 0 {
		return &SettingsError{Field: "max_height", Value: s.MaxHeaderHeight,
			Reason: fmt.Sprintf("collapse range max-(min+inset) is %g, must be > 0", r)}
	}
	if s.RefreshTriggerDistance <= 0 {
		return &SettingsError{Field: "refresh_height", Value: s.RefreshTriggerDistance, Reason: "must be > 0"}
	}
	if s.TopBarRevealRatio <= 0 || s.TopBarRevealRatio > 1 {
		return &SettingsError{Field: "top_bar_reveal_ratio", Value: s.TopBarRevealRatio, Reason: "must be in (0, 1]"}
	}
	return nil
}
