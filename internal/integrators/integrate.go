// Package integrators implements fixed-step explicit one-step methods for
// the equation in package equation.
package integrators

import "github.com/san-kum/odelab/internal/dynamo"

// Stepper advances the solution by one step of size h from (x, y).
type Stepper interface {
	Name() string
	Order() int
	Step(x, y, h float64) float64
}

var (
	_ Stepper = (*Euler)(nil)
	_ Stepper = (*Heun)(nil)
	_ Stepper = (*RK4)(nil)
)

// Integrate applies s over the grid of p, starting from y0 at x0.
func Integrate(s Stepper, p dynamo.Problem) (dynamo.Grid, dynamo.Series) {
	g := dynamo.Linspace(p.X0, p.Xn, p.Steps)
	return g, Trajectory(s, g, p.Y0)
}

// Trajectory applies s along an existing grid.
func Trajectory(s Stepper, g dynamo.Grid, y0 float64) dynamo.Series {
	y := make(dynamo.Series, len(g))
	if len(g) == 0 {
		return y
	}
	y[0] = y0

	h := g.Step()
	for i := 1; i < len(g); i++ {
		y[i] = s.Step(g[i-1], y[i-1], h)
	}
	return y
}
