package spring

import "fmt"

// Sample is one (displacement, force) point on a force curve
type Sample struct {
	Displacement float64 // m
	Force        float64 // N
}

// AxisRange is a closed interval for one plot axis
type AxisRange struct {
	Min float64
	Max float64
}

// ForceCurve is a sampled F = kx line together with the axis ranges that bound it
type ForceCurve struct {
	K       float64
	XMax    float64
	Samples []Sample
	XRange  AxisRange // Displacement axis
	YRange  AxisRange // Force axis
}

// NewForceCurve samples F = kx at numPoints evenly spaced displacements from 0 to
// xMax inclusive.
//
// When xMax > 0 the axes span [0, 1.1·xMax] and [0, 1.1·k·xMax]. The force
// axis is not normalized, so a negative k gives an inverted range. When
// xMax <= 0 the samples are still generated but both axes fall back to [0, 1].
func NewForceCurve(k, xMax float64, numPoints int) (ForceCurve, error) {
	if numPoints < 2 {
		return ForceCurve{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, numPoints)
	}

	step := xMax / float64(numPoints-1)
	samples := make([]Sample, numPoints)
	for i := range samples {
		x := float64(i) * step
		samples[i] = Sample{Displacement: x, Force: k * x}
	}

	curve := ForceCurve{
		K:       k,
		XMax:    xMax,
		Samples: samples,
	}
	curve.XRange, curve.YRange = AxisRanges(k, xMax)

	return curve, nil
}

// AxisRanges returns the displacement and force axis ranges for a curve
// with stiffness k plotted up to xMax
func AxisRanges(k, xMax float64) (AxisRange, AxisRange) {
	if xMax > 0 {
		return AxisRange{Min: 0, Max: xMax * AxisPadding},
			AxisRange{Min: 0, Max: k * xMax * AxisPadding}
	}
	return AxisRange{Min: 0, Max: DefaultAxisMax}, AxisRange{Min: 0, Max: DefaultAxisMax}
}

// Displacements returns the x values of the samples
func (c ForceCurve) Displacements() []float64 {
	xs := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		xs[i] = s.Displacement
	}
	return xs
}

// Forces returns the y values of the samples
func (c ForceCurve) Forces() []float64 {
	ys := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		ys[i] = s.Force
	}
	return ys
}

// Len returns the number of samples
func (c ForceCurve) Len() int {
	return len(c.Samples)
}

// XY returns sample i; together with Len it satisfies gonum's plotter.XYer
func (c ForceCurve) XY(i int) (float64, float64) {
	return c.Samples[i].Displacement, c.Samples[i].Force
}
