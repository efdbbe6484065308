package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/depeter/stickynav/internal/header"
)

const appName = "stickynav"

// maxHeightDivisor derives the default expanded header height from the
// viewport height.
const maxHeightDivisor = 2.3

type Config struct {
	Header   HeaderConfig  `toml:"header"`
	UI       UIConfig      `toml:"ui"`
	Server   ServerConfig  `toml:"server"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type HeaderConfig struct {
	MinHeight         float64 `toml:"min_height"`
	MaxHeight         float64 `toml:"max_height"` // 0 = viewport height / 2.3
	CornerRadius      float64 `toml:"corner_radius"`
	RefreshHeight     float64 `toml:"refresh_height"`
	TopBarRevealRatio float64 `toml:"top_bar_reveal_ratio"`
	MaxBlur           float64 `toml:"max_blur"`
	Refreshable       bool    `toml:"refreshable"`
	Blur              bool    `toml:"blur"`
	ScrollUpButton    bool    `toml:"scroll_up_button"`
	IgnoreSafeArea    bool    `toml:"ignore_safe_area"`
}

type UIConfig struct {
	Fullscreen bool    `toml:"fullscreen"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	TopInset   float64 `toml:"top_inset"` // simulated safe-area inset
	TPS        int     `toml:"tps"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
	Library  string `toml:"library"` // view name shown under the header; empty = first view
}

type KeybindConfig struct {
	ScrollTop string `toml:"scroll_top"`
	Refresh   string `toml:"refresh"`
	NextPage  string `toml:"next_page"`
	PrevPage  string `toml:"prev_page"`
	ZoomReset string `toml:"zoom_reset"`
}

func DefaultConfig() *Config {
	d := header.DefaultSettings()
	return &Config{
		Header: HeaderConfig{
			MinHeight:         d.MinHeaderHeight,
			CornerRadius:      d.CornerRadius,
			RefreshHeight:     d.RefreshTriggerDistance,
			TopBarRevealRatio: d.TopBarRevealRatio,
			MaxBlur:           d.MaxBlurRadius,
			Refreshable:       d.RefreshEnabled,
			Blur:              d.BlurEnabled,
			ScrollUpButton:    d.ScrollToTopButtonEnabled,
			IgnoreSafeArea:    d.IgnoreSafeArea,
		},
		UI: UIConfig{
			Width:    480,
			Height:   900,
			TopInset: 0,
			TPS:      60,
		},
		Keybinds: KeybindConfig{
			ScrollTop: "Home",
			Refresh:   "R",
			NextPage:  "Right",
			PrevPage:  "Left",
			ZoomReset: "Z",
		},
	}
}

// HeaderSettings resolves the header section into validated settings for a
// viewport of the given height.
func (c *Config) HeaderSettings(viewHeight float64) (header.Settings, error) {
	h := c.Header
	s := header.Settings{
		MinHeaderHeight:          h.MinHeight,
		MaxHeaderHeight:          h.MaxHeight,
		CornerRadius:             h.CornerRadius,
		RefreshTriggerDistance:   h.RefreshHeight,
		TopBarRevealRatio:        h.TopBarRevealRatio,
		MaxBlurRadius:            h.MaxBlur,
		RefreshEnabled:           h.Refreshable,
		BlurEnabled:              h.Blur,
		ScrollToTopButtonEnabled: h.ScrollUpButton,
		IgnoreSafeArea:           h.IgnoreSafeArea,
	}
	if s.MaxHeaderHeight == 0 {
		s.MaxHeaderHeight = viewHeight / maxHeightDivisor
	}
	if err := s.Validate(c.UI.TopInset); err != nil {
		return header.Settings{}, fmt.Errorf("[header]: %w", err)
	}
	return s, nil
}

// Validate checks the parts of the config that can be checked without a
// viewport.
func (c *Config) Validate() error {
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return fmt.Errorf("[ui]: window size %dx%d must be positive", c.UI.Width, c.UI.Height)
	}
	if c.UI.TPS <= 0 {
		return fmt.Errorf("[ui]: tps %d must be positive", c.UI.TPS)
	}
	if _, err := c.HeaderSettings(float64(c.UI.Height)); err != nil {
		return err
	}
	return nil
}

func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, "config.toml"))
}

// StateDir is where logs are written.
func StateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// CacheDir is where downloaded images are kept.
func CacheDir() string {
	return filepath.Join(xdg.CacheHome, appName, "images")
}

// Load reads the config from its XDG location. A missing file yields the
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config at path.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
