package spring

// Calculation constants
const (
	// DisplacementEpsilon is the smallest displacement magnitude (m) accepted
	// when solving Hooke's Law for k
	DisplacementEpsilon = 1e-9

	// DefaultPoints is the number of samples drawn for a force curve
	DefaultPoints = 100

	// AxisPadding scales the upper bound of both plot axes
	AxisPadding = 1.1

	// DefaultAxisMax is the upper bound of both axes when there is no
	// positive displacement to plot
	DefaultAxisMax = 1.0
)
