package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/hooke/internal/spring"
)

// Title is the caption of every force curve drawing
const Title = "Force vs. Displacement (F = kx)"

// Minimum drawing size in characters
const (
	minWidth  = 10
	minHeight = 4
)

// DrawASCIIForceCurve renders the curve as a terminal line chart.
// The chart spans the curve's axis ranges, so the line stops short of the
// right edge by the axis padding.
func DrawASCIIForceCurve(curve spring.ForceCurve, width, height int) string {
	width = max(width, minWidth)
	height = max(height, minHeight)

	axes := fmt.Sprintf("  x: %.2f .. %.2f m   F: %.2f .. %.2f N\n",
		curve.XRange.Min, curve.XRange.Max, curve.YRange.Min, curve.YRange.Max)
	if !drawable(curve) {
		return fmt.Sprintf("  %s: force out of range, nothing to draw\n%s", Title, axes)
	}

	series := resample(curve, width)
	chart := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.LowerBound(math.Min(curve.YRange.Min, curve.YRange.Max)),
		asciigraph.UpperBound(math.Max(curve.YRange.Min, curve.YRange.Max)),
		asciigraph.Precision(2),
		asciigraph.Caption(Title),
	)

	var sb strings.Builder
	sb.WriteString(chart)
	sb.WriteString("\n")
	sb.WriteString(axes)
	return sb.String()
}

// drawable reports whether every force and the force span are finite;
// k·x can overflow for finite inputs
func drawable(curve spring.ForceCurve) bool {
	if math.IsInf(curve.YRange.Max-curve.YRange.Min, 0) || math.IsNaN(curve.YRange.Max-curve.YRange.Min) {
		return false
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range curve.Samples {
		if math.IsInf(s.Force, 0) || math.IsNaN(s.Force) {
			return false
		}
		lo, hi = math.Min(lo, s.Force), math.Max(hi, s.Force)
	}
	return len(curve.Samples) == 0 || !math.IsInf(hi-lo, 0)
}

// resample maps the curve onto width evenly spaced columns across XRange.
// Columns past the last sample are NaN so the line ends where the data does.
// With no positive displacement the samples are spread over all columns.
func resample(curve spring.ForceCurve, width int) []float64 {
	n := len(curve.Samples)
	if n == 0 {
		return []float64{0}
	}
	if n < 2 || curve.XMax <= 0 {
		out := make([]float64, width)
		for j := range out {
			out[j] = curve.Samples[j*(n-1)/max(width-1, 1)].Force
		}
		return out
	}

	step := curve.XMax / float64(n-1)
	colStep := (curve.XRange.Max - curve.XRange.Min) / float64(width-1)

	out := make([]float64, width)
	for j := range out {
		x := curve.XRange.Min + float64(j)*colStep
		if x > curve.XMax*(1+1e-9) {
			out[j] = math.NaN()
			continue
		}
		pos := math.Min(x, curve.XMax) / step
		i := int(pos)
		if i >= n-1 {
			out[j] = curve.Samples[n-1].Force
			continue
		}
		frac := pos - float64(i)
		out[j] = curve.Samples[i].Force + frac*(curve.Samples[i+1].Force-curve.Samples[i].Force)
	}
	return out
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if l := len([]rune(line)); l > maxLen {
			maxLen = l
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, which misaligns
// symbols such as ½ or ²
func pad(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
