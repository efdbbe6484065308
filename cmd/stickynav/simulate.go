package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depeter/stickynav/internal/header"
	"github.com/depeter/stickynav/internal/sim"
)

var (
	simOffsets string
	simMin     float64
	simMax     float64
	simInset   float64
	simRefresh float64
	simCorner  float64
	simBlur    bool
	simHeight  float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the header geometry for a stream of scroll offsets",
	Long: `Feed scroll offsets to a header and print every derived value.

Offsets are signed: negative values scroll the content up and collapse the
header, positive values pull it down. The word "end" stands for the host
finishing a refresh. Rows where the refresh fired are marked FIRED.

Settings come from the config file; the flags override them.

Example:
  stickynav simulate --offsets 0,-50,-200,-220,60,130,end,0 --max 300`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := sim.ParseSteps(simOffsets)
		if err != nil {
			return err
		}
		s, inset, err := simSettings(cmd)
		if err != nil {
			return err
		}
		samples, err := sim.Simulate(s, inset, steps)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "min %.0f  max %.0f  inset %.0f  refresh %.0f  range %.0f\n",
			s.MinHeaderHeight, s.MaxHeaderHeight, inset, s.RefreshTriggerDistance,
			s.MaxHeaderHeight-s.MinHeaderHeight-inset)
		fmt.Fprintln(cmd.OutOrStdout(), sim.Table(samples))
		return nil
	},
}

// simSettings resolves the config's header settings and applies flag
// overrides.
func simSettings(cmd *cobra.Command) (header.Settings, float64, error) {
	h := cfg.Header
	f := cmd.Flags()
	if f.Changed("min") {
		h.MinHeight = simMin
	}
	if f.Changed("max") {
		h.MaxHeight = simMax
	}
	if f.Changed("refresh") {
		h.RefreshHeight = simRefresh
	}
	if f.Changed("corner") {
		h.CornerRadius = simCorner
	}
	if f.Changed("blur") {
		h.Blur = simBlur
	}
	c := *cfg
	c.Header = h
	if f.Changed("inset") {
		c.UI.TopInset = simInset
	}
	s, err := c.HeaderSettings(simHeight)
	return s, c.UI.TopInset, err
}

func init() {
	RootCmd.AddCommand(simulateCmd)
	f := simulateCmd.Flags()
	f.StringVar(&simOffsets, "offsets", "0,-50,-200,-220,60,130,end,0", "comma separated offsets, or \"end\"")
	f.Float64Var(&simMin, "min", 0, "minimum header height")
	f.Float64Var(&simMax, "max", 0, "maximum header height (0 derives it from --height)")
	f.Float64Var(&simInset, "inset", 0, "top safe-area inset")
	f.Float64Var(&simRefresh, "refresh", 0, "refresh trigger distance")
	f.Float64Var(&simCorner, "corner", 0, "corner radius")
	f.BoolVar(&simBlur, "blur", false, "enable header blur")
	f.Float64Var(&simHeight, "height", 900, "viewport height used when max is 0")
}
