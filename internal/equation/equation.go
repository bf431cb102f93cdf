package equation

import (
	"math"

	"github.com/san-kum/odelab/internal/dynamo"
)

const (
	oneThird  = 1.0 / 3.0
	twoThirds = 2.0 / 3.0
	oneSixth  = 1.0 / 6.0
)

// F is the right-hand side f(x, y) of the equation.
func F(x, y float64) float64 {
	return 3*y - x*math.Pow(y, oneThird)
}

// Constant returns the integration constant fixed by y(x0) = y0.
func Constant(x0, y0 float64) float64 {
	return (math.Pow(y0, twoThirds) - x0*oneThird - oneSixth) / math.Exp(2*x0)
}

// Exact evaluates the closed-form solution through (x0, y0) at x.
func Exact(x, x0, y0 float64) float64 {
	return NewSolution(x0, y0).At(x)
}

// Solution is the exact solution for one initial condition.
type Solution struct {
	X0, Y0 float64
	C      float64
}

func NewSolution(x0, y0 float64) Solution {
	return Solution{X0: x0, Y0: y0, C: Constant(x0, y0)}
}

// At evaluates the solution at x. At the initial point it returns Y0
// exactly rather than a rounded reconstruction.
func (s Solution) At(x float64) float64 {
	if x == s.X0 {
		return s.Y0
	}
	return math.Pow(x*oneThird+oneSixth+math.Exp(2*x)*s.C, 1.5)
}

// Sample evaluates the solution at every grid point.
func (s Solution) Sample(g dynamo.Grid) dynamo.Series {
	y := make(dynamo.Series, len(g))
	for i, x := range g {
		y[i] = s.At(x)
	}
	return y
}
