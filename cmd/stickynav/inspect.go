package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/depeter/stickynav/internal/logging"
	"github.com/depeter/stickynav/internal/sim"
)

var inspectHeight float64

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Drive a header interactively in the terminal",
	Long: `Drive a header from the keyboard and watch its geometry live.

Arrow keys move the scroll offset, e ends a running refresh, + and - pinch
and space releases the pinch. Settings come from the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := cfg.HeaderSettings(inspectHeight)
		if err != nil {
			return err
		}
		m, err := sim.NewModel(s, cfg.UI.TopInset)
		if err != nil {
			return err
		}
		m.Container().SetLogger(logging.For("header"))
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Float64Var(&inspectHeight, "height", 900, "viewport height used when max_height is 0")
}
