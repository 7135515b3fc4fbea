package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/hooke/internal/input"
	"github.com/alexiusacademia/hooke/internal/spring"
)

var (
	// Curve inputs
	curveK    string
	curveXMax string
	curvePts  int

	// Options
	curveExport string
	curveTable  bool
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Sample and plot the force-displacement line F = kx",
	Long: `Sample F = kx at evenly spaced displacements from 0 to xmax and plot it.

Axis ranges are [0, 1.1·xmax] for displacement and [0, 1.1·k·xmax] for force.
When xmax <= 0 both axes default to [0, 1].

Examples:
  hooke curve --k 20 --xmax 0.5

  # Export the samples to Excel and the chart to SVG
  hooke curve --k 20 --xmax 0.5 --export samples.xlsx
  hooke curve --k 20 --xmax 0.5 --export chart.svg --points 200`,
	RunE: runCurve,
}

func init() {
	rootCmd.AddCommand(curveCmd)

	curveCmd.Flags().StringVar(&curveK, "k", "", "Spring constant k (N/m) [required]")
	curveCmd.Flags().StringVar(&curveXMax, "xmax", "", "Maximum displacement (m) [required]")
	curveCmd.Flags().IntVarP(&curvePts, "points", "n", 0, "Number of samples (default from config, 100)")
	curveCmd.Flags().StringVarP(&curveExport, "export", "o", "", "Export the curve (.png, .svg, .pdf, .csv, .xlsx)")
	curveCmd.Flags().BoolVarP(&curveTable, "table", "t", false, "Print every sample")

	curveCmd.MarkFlagRequired("k")
	curveCmd.MarkFlagRequired("xmax")
}

func runCurve(cmd *cobra.Command, args []string) error {
	vals, err := parseFlags(
		input.Field{Name: "--k", Text: curveK},
		input.Field{Name: "--xmax", Text: curveXMax},
	)
	if err != nil {
		return err
	}

	points := cfg.Points
	if cmd.Flags().Changed("points") {
		points = curvePts
	}

	curve, err := spring.NewForceCurve(vals[0], vals[1], points)
	if err != nil {
		return err
	}
	logger.Debug("sampled force curve", "k", curve.K, "xmax", curve.XMax, "points", len(curve.Samples))

	out := cmd.OutOrStdout()
	p := cfg.Precision

	printHeader(out, "FORCE-DISPLACEMENT CURVE (F = kx)")

	printSection(out, "AXES")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Samples:\t%d\n", len(curve.Samples))
	fmt.Fprintf(w, "  Displacement axis:\t[%.*f, %.*f] m\n", p, curve.XRange.Min, p, curve.XRange.Max)
	fmt.Fprintf(w, "  Force axis:\t[%.*f, %.*f] N\n", p, curve.YRange.Min, p, curve.YRange.Max)
	w.Flush()
	if curve.YRange.Max < curve.YRange.Min {
		fmt.Fprintln(out, "  ⚠ Negative k: force axis is inverted")
	}
	fmt.Fprintln(out)

	if curveTable {
		printSection(out, "SAMPLES")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "  #\tx (m)\tF (N)\t\n")
		for i, s := range curve.Samples {
			fmt.Fprintf(w, "  %d\t%.*f\t%.*f\t\n", i, p, s.Displacement, p, s.Force)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	printCurve(out, curve)

	if curveExport != "" {
		path, err := exportCurve(curve, curveExport)
		if err != nil {
			return err
		}
		printExported(out, path)
	}
	return nil
}
