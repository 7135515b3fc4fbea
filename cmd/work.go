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
	// Work inputs
	workK  string
	workX1 string
	workX2 string

	// Options
	workPlot   bool
	workExport string
)

var workCmd = &cobra.Command{
	Use:     "work",
	Aliases: []string{"w"},
	Short:   "Calculate the work done on a spring between two displacements",
	Long: `Calculate the work done moving a spring from x1 to x2:

  W = ∫ kx dx = ½·k·(x2² − x1²)

The result is signed. Moving the spring back toward its free length gives
negative work. The force curve is drawn from 0 to max(|x1|, |x2|).

Examples:
  # Stretch a 20 N/m spring from rest to 0.5 m
  hooke work --k 20 --x1 0 --x2 0.5

  # Release it back and plot
  hooke work --k 20 --x1 0.5 --x2 0 --plot`,
	RunE: runWork,
}

func init() {
	rootCmd.AddCommand(workCmd)

	workCmd.Flags().StringVar(&workK, "k", "", "Spring constant k (N/m) [required]")
	workCmd.Flags().StringVar(&workX1, "x1", "0", "Initial displacement x1 (m)")
	workCmd.Flags().StringVar(&workX2, "x2", "", "Final displacement x2 (m) [required]")
	workCmd.Flags().BoolVarP(&workPlot, "plot", "p", false, "Draw the force-displacement line")
	workCmd.Flags().StringVarP(&workExport, "export", "o", "", "Export the curve (.png, .svg, .pdf, .csv, .xlsx)")

	workCmd.MarkFlagRequired("k")
	workCmd.MarkFlagRequired("x2")
}

func runWork(cmd *cobra.Command, args []string) error {
	vals, err := parseFlags(
		input.Field{Name: "--k", Text: workK},
		input.Field{Name: "--x1", Text: workX1},
		input.Field{Name: "--x2", Text: workX2},
	)
	if err != nil {
		return err
	}

	res := spring.WorkDone(vals[0], vals[1], vals[2])
	logger.Debug("integrated work", "k", res.K, "x1", res.X1, "x2", res.X2, "work", res.Work)

	out := cmd.OutOrStdout()
	p := cfg.Precision

	printHeader(out, "WORK DONE ON A SPRING - W = ½k(x2² − x1²)")

	printSection(out, "INPUT DATA")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Spring constant (k):\t%.*f N/m\n", p, res.K)
	fmt.Fprintf(w, "  Initial displacement (x1):\t%.*f m\n", p, res.X1)
	fmt.Fprintf(w, "  Final displacement (x2):\t%.*f m\n", p, res.X2)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "ENERGY")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stored at x1 (½kx1²):\t%.*f J\n", p, 0.5*res.K*res.X1*res.X1)
	fmt.Fprintf(w, "  Stored at x2 (½kx2²):\t%.*f J\n", p, 0.5*res.K*res.X2*res.X2)
	w.Flush()
	fmt.Fprintln(out)

	lines := []string{fmt.Sprintf("Work Done W = %.*f Joules", p, res.Work)}
	switch {
	case res.Work < 0:
		lines = append(lines, "Spring releases energy")
	case res.Work > 0:
		lines = append(lines, "Energy stored in the spring")
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", lines))
	fmt.Fprintln(out)

	if !workPlot && workExport == "" {
		return nil
	}

	curve, err := spring.NewForceCurve(res.K, math.Max(math.Abs(res.X1), math.Abs(res.X2)), cfg.Points)
	if err != nil {
		return err
	}
	if workPlot {
		printCurve(out, curve)
	}
	if workExport != "" {
		path, err := exportCurve(curve, workExport)
		if err != nil {
			return err
		}
		printExported(out, path)
	}
	return nil
}
