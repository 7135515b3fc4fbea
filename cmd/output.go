package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/hooke/internal/diagram"
	"github.com/alexiusacademia/hooke/internal/export"
	"github.com/alexiusacademia/hooke/internal/input"
	"github.com/alexiusacademia/hooke/internal/spring"
)

const rule = "───────────────────────────────────────────────────────────────"

// errInput marks a flag value that is not a number; the message already
// names the flag
var errInput = errors.New("invalid input")

// parseFlags parses flag text in order, reporting every bad value at once
func parseFlags(fields ...input.Field) ([]float64, error) {
	vals, err := input.ParseAll(fields...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInput, err)
	}
	return vals, nil
}

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, rule)
}

func printCurve(out io.Writer, curve spring.ForceCurve) {
	printSection(out, "FORCE-DISPLACEMENT PLOT")
	fmt.Fprintln(out, diagram.DrawASCIIForceCurve(curve, cfg.Plot.Width, cfg.Plot.Height))
}

// exportCurve writes the curve to path; images by .png/.svg/.pdf,
// sample tables by .csv/.xlsx. Returns the path actually written.
func exportCurve(curve spring.ForceCurve, path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		if err := export.Save(path, curve); err != nil {
			return "", err
		}
		logger.Debug("exported samples", "path", path, "points", len(curve.Samples))
		return path, nil
	default:
		written, err := diagram.ExportForceCurve(curve, path,
			vg.Length(cfg.Export.Width)*vg.Inch, vg.Length(cfg.Export.Height)*vg.Inch)
		if err != nil {
			return "", err
		}
		logger.Debug("exported chart", "path", written)
		return written, nil
	}
}

func printExported(out io.Writer, path string) {
	fmt.Fprintf(out, "  ✓ Saved to %s\n\n", path)
}
