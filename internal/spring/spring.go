package spring

import (
	"fmt"
	"math"
)

// SpringConstantResult holds the result of solving F = kx for k
type SpringConstantResult struct {
	Force        float64 // N
	Displacement float64 // m
	K            float64 // N/m
}

// WorkResult holds the work done moving a spring between two positions
type WorkResult struct {
	K    float64 // N/m
	X1   float64 // Initial displacement (m)
	X2   float64 // Final displacement (m)
	Work float64 // J, signed
}

// SpringConstant calculates k = F / x.
// Displacements with magnitude below DisplacementEpsilon are rejected.
func SpringConstant(force, displacement float64) (SpringConstantResult, error) {
	if math.Abs(displacement) < DisplacementEpsilon {
		return SpringConstantResult{}, fmt.Errorf("%w: x = %g m", ErrDegenerateInput, displacement)
	}

	return SpringConstantResult{
		Force:        force,
		Displacement: displacement,
		K:            force / displacement,
	}, nil
}

// WorkDone integrates the spring force kx from x1 to x2.
//
//	W = ½·k·(x2² − x1²)
//
// The result is signed: moving toward equilibrium gives negative work.
func WorkDone(k, x1, x2 float64) WorkResult {
	return WorkResult{
		K:    k,
		X1:   x1,
		X2:   x2,
		Work: 0.5 * k * (x2*x2 - x1*x1),
	}
}
