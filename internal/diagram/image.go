package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/hooke/internal/spring"
)

// Default image size
const (
	DefaultImageWidth  = 8 * vg.Inch
	DefaultImageHeight = 6 * vg.Inch
)

// labelTicks formats the default tick marks with a fixed "%.2f"
type labelTicks struct{}

func (labelTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = fmt.Sprintf("%.2f", ticks[i].Value)
		}
	}
	return ticks
}

// NewForceCurvePlot builds the force-displacement chart
func NewForceCurvePlot(curve spring.ForceCurve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = "Displacement x (m)"
	p.Y.Label.Text = "Force F (N)"
	p.X.Tick.Marker = labelTicks{}
	p.Y.Tick.Marker = labelTicks{}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 32, G: 159, B: 223, A: 255}
	p.Add(line)

	// Set after Add, which widens the axes to fit the data
	p.X.Min, p.X.Max = curve.XRange.Min, curve.XRange.Max
	p.Y.Min, p.Y.Max = curve.YRange.Min, curve.YRange.Max

	return p, nil
}

// ExportForceCurve exports the force curve chart to an image file.
// The format follows the extension; anything other than .png, .svg or .pdf
// gets ".png" appended.
func ExportForceCurve(curve spring.ForceCurve, filename string, width, height vg.Length) (string, error) {
	p, err := NewForceCurvePlot(curve)
	if err != nil {
		return "", err
	}

	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	return filename, p.Save(width, height, filename)
}

// WriteForceCurve writes the chart in the given format ("png", "svg", "pdf")
func WriteForceCurve(w io.Writer, curve spring.ForceCurve, format string) error {
	p, err := NewForceCurvePlot(curve)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(DefaultImageWidth, DefaultImageHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
