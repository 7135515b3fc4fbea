package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/hooke/internal/diagram"
	"github.com/alexiusacademia/hooke/internal/input"
	"github.com/alexiusacademia/hooke/internal/spring"
)

var (
	// Spring constant inputs, kept as text so bad numbers are reported as such
	constantForce        string
	constantDisplacement string

	// Options
	constantPlot   bool
	constantExport string
)

var constantCmd = &cobra.Command{
	Use:     "constant",
	Aliases: []string{"k"},
	Short:   "Calculate the spring constant from force and displacement",
	Long: `Calculate the spring constant k from Hooke's Law, F = kx.

The displacement must not be zero (|x| >= 1e-9 m). The force curve is
drawn from 0 to |x|.

Examples:
  # 10 N stretches the spring by 0.5 m
  hooke constant --force 10 --displacement 0.5

  # Show the force-displacement line and save it as an image
  hooke constant -F 10 -x 0.5 --plot --export spring.png`,
	RunE: runConstant,
}

func init() {
	rootCmd.AddCommand(constantCmd)

	constantCmd.Flags().StringVarP(&constantForce, "force", "F", "", "Applied force F (N) [required]")
	constantCmd.Flags().StringVarP(&constantDisplacement, "displacement", "x", "", "Displacement x (m) [required]")
	constantCmd.Flags().BoolVarP(&constantPlot, "plot", "p", false, "Draw the force-displacement line")
	constantCmd.Flags().StringVarP(&constantExport, "export", "o", "", "Export the curve (.png, .svg, .pdf, .csv, .xlsx)")

	constantCmd.MarkFlagRequired("force")
	constantCmd.MarkFlagRequired("displacement")
}

func runConstant(cmd *cobra.Command, args []string) error {
	vals, err := parseFlags(
		input.Field{Name: "--force", Text: constantForce},
		input.Field{Name: "--displacement", Text: constantDisplacement},
	)
	if err != nil {
		return err
	}

	res, err := spring.SpringConstant(vals[0], vals[1])
	if err != nil {
		return err
	}
	logger.Debug("solved spring constant", "force", res.Force, "displacement", res.Displacement, "k", res.K)

	out := cmd.OutOrStdout()
	p := cfg.Precision

	printHeader(out, "SPRING CONSTANT - HOOKE'S LAW (F = kx)")

	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Force (F):\t%.*f N\n", p, res.Force)
	fmt.Fprintf(w, "  Displacement (x):\t%.*f m\n", p, res.Displacement)
	w.Flush()
	fmt.Fprintln(out)

	lines := []string{fmt.Sprintf("Spring Constant k = %.*f N/m", p, res.K)}
	if res.K < 0 {
		lines = append(lines, "⚠ Negative k: F and x have opposite signs")
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", lines))
	fmt.Fprintln(out)

	if !constantPlot && constantExport == "" {
		return nil
	}

	curve, err := spring.NewForceCurve(res.K, math.Abs(res.Displacement), cfg.Points)
	if err != nil {
		return err
	}
	if constantPlot {
		printCurve(out, curve)
	}
	if constantExport != "" {
		path, err := exportCurve(curve, constantExport)
		if err != nil {
			return err
		}
		printExported(out, path)
	}
	return nil
}
