package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depeter/stickynav/internal/config"
	"github.com/depeter/stickynav/internal/logging"
)

var (
	logLevel   string
	configFile string

	// cfg is loaded before any subcommand runs.
	cfg       *config.Config
	logCloser io.Closer
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "stickynav",
	Short: "Sticky collapsing header demo and inspector",
	Long: `A scrolling list under a sticky header that collapses into a top bar,
stretches and blurs when pulled, triggers a refresh and zooms on pinch.

Without a subcommand the window opens. The simulate and inspect commands
drive the same header logic from the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logCloser, err = logging.Init(level, filepath.Join(config.StateDir(), "stickynav.log"))
		if err != nil {
			return err
		}

		if configFile != "" {
			cfg, err = config.LoadFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		logging.Logger.Debug("config loaded", "path", configPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configPath is where the config was read from and where login saves it.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	p, err := config.ConfigPath()
	if err != nil {
		return ""
	}
	return p
}

func saveConfig() error {
	if configFile != "" {
		return cfg.SaveFile(configFile)
	}
	return cfg.Save()
}

func init() {
	// Don't show usage on errors - only show it when explicitly requested
	RootCmd.SilenceUsage = true

	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (debug also logs to stderr)")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/stickynav/config.toml)")
}
