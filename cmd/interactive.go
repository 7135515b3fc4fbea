package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/hooke/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Open the calculator form with a live force plot",
	Long: `Open a terminal form with the force, displacement, k, x1 and x2 inputs.

The plot redraws on every edit:
  - with a valid k it runs from 0 to |x|
  - with only a valid x it uses k = 1
ctrl+k solves for k and copies it into the work section, ctrl+w computes
the work done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cfg.Points, cfg.Precision, tui.Options{
			PlotWidth:  cfg.Plot.Width,
			PlotHeight: cfg.Plot.Height,
		})
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
