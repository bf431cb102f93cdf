package equation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestF(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, 8, 22},
		{2, 27, 75},
		{0, 5, 15},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, F(tt.x, tt.y), 1e-9, "F(%g, %g)", tt.x, tt.y)
	}
}

func TestFNegativeBase(t *testing.T) {
	assert.True(t, math.IsNaN(F(1, -8)), "cube root of a negative base should be NaN")
}

func TestExactMatchesInitialCondition(t *testing.T) {
	cases := []struct{ x0, y0 float64 }{
		{1, 2},
		{1, 8},
		{0.5, 0.25},
		{2, 100},
		{-3, 4},
		{-1.5, 0.5},
	}
	for _, c := range cases {
		got := Exact(c.x0, c.x0, c.y0)
		assert.InEpsilon(t, c.y0, got, 1e-9, "y(x0) for x0=%g y0=%g", c.x0, c.y0)
	}
}

func TestExactScenario(t *testing.T) {
	c := Constant(1, 8)
	assert.InDelta(t, 3.5/math.Exp(2), c, 1e-12)
	assert.InDelta(t, 0.4737, c, 1e-4)

	y := Exact(2, 1, 8)
	assert.InDelta(t, 137.9, y, 0.5)
}

func TestSolutionSatisfiesEquation(t *testing.T) {
	sol := NewSolution(1, 2)
	const h = 1e-6
	for _, x := range []float64{1.2, 1.7, 2.5} {
		derivative := (sol.At(x+h) - sol.At(x-h)) / (2 * h)
		assert.InEpsilon(t, F(x, sol.At(x)), derivative, 1e-5, "y'(%g)", x)
	}
}

func TestReference(t *testing.T) {
	g, y := Reference(1, 2, 6)
	require.Len(t, g, ReferenceSamples)
	require.Len(t, y, ReferenceSamples)

	assert.Equal(t, 1.0, g[0])
	assert.InDelta(t, 6.0, g[len(g)-1], 1e-9)
	assert.InEpsilon(t, 2.0, y[0], 1e-9)
	assert.True(t, y.IsValid())
}
