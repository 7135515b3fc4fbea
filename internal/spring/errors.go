package spring

import "errors"

var (
	// ErrDegenerateInput indicates a displacement too close to zero to divide by.
	ErrDegenerateInput = errors.New("spring: displacement cannot be zero")
	// ErrTooFewPoints indicates a force curve was requested with fewer than two samples.
	ErrTooFewPoints = errors.New("spring: force curve needs at least two points")
)
