package spring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/alexiusacademia/hooke/internal/spring"
)

// ForceCurveSuite groups tests for force curve sampling.
type ForceCurveSuite struct {
	suite.Suite
}

// TestExample: k=20, xMax=0.5 => 100 points ending at (0.5, 10).
func (s *ForceCurveSuite) TestExample() {
	c, err := spring.NewForceCurve(20.0, 0.5, spring.DefaultPoints)
	require.NoError(s.T(), err)
	require.Len(s.T(), c.Samples, 100)

	s.Equal(spring.Sample{}, c.Samples[0])
	s.InDelta(0.5, c.Samples[99].Displacement, 1e-12)
	s.InDelta(10.0, c.Samples[99].Force, 1e-12)
	s.InDelta(0.55, c.XRange.Max, 1e-12)
	s.InDelta(11.0, c.YRange.Max, 1e-12)
	s.Zero(c.XRange.Min)
	s.Zero(c.YRange.Min)
}

func (s *ForceCurveSuite) TestEverySampleOnLine() {
	for _, n := range []int{2, 3, 10, 100, 257} {
		c, err := spring.NewForceCurve(-3.5, 2.0, n)
		require.NoError(s.T(), err)
		require.Len(s.T(), c.Samples, n)
		s.Zero(c.Samples[0].Displacement)
		s.InDelta(2.0, c.Samples[n-1].Displacement, 1e-12)
		for i, p := range c.Samples {
			s.Equal(-3.5*p.Displacement, p.Force, "sample %d", i)
			if i > 0 {
				s.Greater(p.Displacement, c.Samples[i-1].Displacement)
			}
		}
	}
}

func (s *ForceCurveSuite) TestDeterministic() {
	a, err := spring.NewForceCurve(13.7, 0.91, 100)
	require.NoError(s.T(), err)
	b, err := spring.NewForceCurve(13.7, 0.91, 100)
	require.NoError(s.T(), err)
	s.Equal(a, b)
}

// TestNonPositiveXMax: samples still follow the line, axes fall back to [0,1].
func (s *ForceCurveSuite) TestNonPositiveXMax() {
	for _, xMax := range []float64{0, -2} {
		c, err := spring.NewForceCurve(5, xMax, 100)
		require.NoError(s.T(), err)
		s.Len(c.Samples, 100)
		s.Equal(spring.AxisRange{Min: 0, Max: 1}, c.XRange)
		s.Equal(spring.AxisRange{Min: 0, Max: 1}, c.YRange)
		s.InDelta(xMax, c.Samples[99].Displacement, 1e-12)
		s.InDelta(5*xMax, c.Samples[99].Force, 1e-12)
	}
}

// TestNegativeK: the force axis is inverted rather than normalized.
func (s *ForceCurveSuite) TestNegativeK() {
	c, err := spring.NewForceCurve(-20, 0.5, 100)
	require.NoError(s.T(), err)
	s.InDelta(-11.0, c.YRange.Max, 1e-12)
	s.Less(c.YRange.Max, c.YRange.Min)
}

func (s *ForceCurveSuite) TestTooFewPoints() {
	for _, n := range []int{-1, 0, 1} {
		_, err := spring.NewForceCurve(1, 1, n)
		s.True(errors.Is(err, spring.ErrTooFewPoints), "n=%d err=%v", n, err)
	}
}

func (s *ForceCurveSuite) TestXYer() {
	c, err := spring.NewForceCurve(2, 1, 5)
	require.NoError(s.T(), err)
	s.Equal(5, c.Len())
	x, y := c.XY(4)
	s.InDelta(1.0, x, 1e-12)
	s.InDelta(2.0, y, 1e-12)
	s.Equal(c.Displacements()[2], c.Samples[2].Displacement)
	s.Equal(c.Forces()[2], c.Samples[2].Force)
}

func TestForceCurveSuite(t *testing.T) {
	suite.Run(t, new(ForceCurveSuite))
}

func TestAxisRanges(t *testing.T) {
	x, y := spring.AxisRanges(20, 0.5)
	assert.InDelta(t, 0.55, x.Max, 1e-12)
	assert.InDelta(t, 11.0, y.Max, 1e-12)

	x, y = spring.AxisRanges(20, 0)
	assert.Equal(t, spring.AxisRange{Max: 1}, x)
	assert.Equal(t, spring.AxisRange{Max: 1}, y)
}
