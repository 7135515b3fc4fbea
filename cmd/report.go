package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/hooke/internal/input"
	"github.com/alexiusacademia/hooke/internal/report"
	"github.com/alexiusacademia/hooke/internal/spring"
)

var (
	reportForce        string
	reportDisplacement string
	reportX1           string
	reportX2           string

	reportOut     string
	reportTitle   string
	reportProject string
	reportAuthor  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF calculation report",
	Long: `Solve for k and, when x2 is given, the work done from x1 to x2, then
write a PDF calculation sheet with the force-displacement chart.

Project and author default to the report section of the config file.

Examples:
  hooke report --force 10 --displacement 0.5 --out spring.pdf
  hooke report -F 10 -x 0.5 --x1 0 --x2 0.5 --project "Lab 3" --out lab3.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportForce, "force", "F", "", "Applied force F (N) [required]")
	reportCmd.Flags().StringVarP(&reportDisplacement, "displacement", "x", "", "Displacement x (m) [required]")
	reportCmd.Flags().StringVar(&reportX1, "x1", "0", "Initial displacement x1 for the work calculation (m)")
	reportCmd.Flags().StringVar(&reportX2, "x2", "", "Final displacement x2 for the work calculation (m)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "Output PDF file [required]")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title")
	reportCmd.Flags().StringVar(&reportProject, "project", "", "Project name")
	reportCmd.Flags().StringVar(&reportAuthor, "author", "", "Author")

	reportCmd.MarkFlagRequired("force")
	reportCmd.MarkFlagRequired("displacement")
	reportCmd.MarkFlagRequired("out")
}

func runReport(cmd *cobra.Command, args []string) error {
	vals, err := parseFlags(
		input.Field{Name: "--force", Text: reportForce},
		input.Field{Name: "--displacement", Text: reportDisplacement},
	)
	if err != nil {
		return err
	}

	k, err := spring.SpringConstant(vals[0], vals[1])
	if err != nil {
		return err
	}

	r := report.Report{
		Title:     reportTitle,
		Project:   firstNonEmpty(reportProject, cfg.Report.Project),
		Author:    firstNonEmpty(reportAuthor, cfg.Report.Author),
		Date:      time.Now(),
		Precision: cfg.Precision,
		Spring:    &k,
	}

	xMax := math.Abs(k.Displacement)
	if reportX2 != "" {
		xs, err := parseFlags(
			input.Field{Name: "--x1", Text: reportX1},
			input.Field{Name: "--x2", Text: reportX2},
		)
		if err != nil {
			return err
		}
		wk := spring.WorkDone(k.K, xs[0], xs[1])
		r.Work = &wk
		xMax = math.Max(math.Abs(wk.X1), math.Abs(wk.X2))
	}

	curve, err := spring.NewForceCurve(k.K, xMax, cfg.Points)
	if err != nil {
		return err
	}
	r.Curve = &curve

	if err := report.Save(reportOut, r); err != nil {
		return err
	}
	logger.Debug("wrote report", "path", reportOut, "work", r.Work != nil)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Spring Constant k = %.*f N/m\n", cfg.Precision, k.K)
	if r.Work != nil {
		fmt.Fprintf(out, "  Work Done W = %.*f Joules\n", cfg.Precision, r.Work.Work)
	}
	printExported(out, reportOut)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
