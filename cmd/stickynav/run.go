package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/depeter/stickynav/assets/icon"
	"github.com/depeter/stickynav/internal/app"
	"github.com/depeter/stickynav/internal/cache"
	"github.com/depeter/stickynav/internal/config"
	"github.com/depeter/stickynav/internal/feed"
	"github.com/depeter/stickynav/internal/jellyfin"
	"github.com/depeter/stickynav/internal/logging"
	"github.com/depeter/stickynav/internal/ui"
)

var (
	runStatic bool
	runInset  float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the window",
	Long: `Open the navigation window.

The list shows the configured Jellyfin library when [server] has a token,
otherwise a generated demo feed. Pull down past the refresh distance to
reload, press the scroll-to-top key (Home) to collapse back, and hold Ctrl
with the wheel or drag to zoom and pan the header.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("inset") {
			cfg.UI.TopInset = runInset
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		return runWindow(cfg, runStatic)
	},
}

func runWindow(cfg *config.Config, static bool) error {
	log := logging.For("app")

	if err := ui.InitDefaultFonts(); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	images, err := cache.NewImages(config.CacheDir(), 0, logging.For("cache"))
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}

	var src feed.Source = feed.NewStaticSource()
	if !static && cfg.Server.URL != "" && cfg.Server.Token != "" {
		client := jellyfin.NewClient(cfg.Server.URL)
		client.SetToken(cfg.Server.Token, cfg.Server.UserID)
		src = feed.NewLibrarySource(client, cfg.Server.Library, logging.For("feed"))
	}
	log.Info("starting", "source", src.Name(), "inset", cfg.UI.TopInset)

	keys, unknown := app.Keymap(cfg.Keybinds)
	if len(unknown) > 0 {
		log.Warn("ignoring unknown keybinds", "keys", strings.Join(unknown, ", "))
	}

	nav, err := ui.NewNavScreen(src, images, cfg.HeaderSettings, keys, logging.For("header"))
	if err != nil {
		return err
	}

	game := app.NewGame(cfg, log)
	game.Screens.Push(nav)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("StickyNav")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.UI.TPS)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	return ebiten.RunGame(game)
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runStatic, "static", false, "use the generated demo feed even when a server is configured")
	runCmd.Flags().Float64Var(&runInset, "inset", 0, "simulated top safe-area inset in pixels (overrides [ui] top_inset)")
}
