package analysis

import (
	"math"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/equation"
	"github.com/san-kum/odelab/internal/integrators"
)

// Run is the outcome of integrating the problem with one method.
type Run struct {
	Method string        `json:"method"`
	Order  int           `json:"order"`
	Grid   dynamo.Grid   `json:"grid"`
	Approx dynamo.Series `json:"approx"`
	LTE    dynamo.Series `json:"lte"`
	GTE    dynamo.Series `json:"gte"`
}

// Analyze integrates p with s and measures both truncation errors.
func Analyze(s integrators.Stepper, p dynamo.Problem) Run {
	sol := equation.NewSolution(p.X0, p.Y0)
	g, approx := integrators.Integrate(s, p)

	return Run{
		Method: s.Name(),
		Order:  s.Order(),
		Grid:   g,
		Approx: approx,
		LTE:    LocalError(s, g, sol),
		GTE:    GlobalError(g, approx, sol),
	}
}

// LocalError restarts every step from the exact solution, so LTE[i] is
// the error of the single step grid[i-1] -> grid[i]. LTE[0] is zero.
func LocalError(s integrators.Stepper, g dynamo.Grid, sol equation.Solution) dynamo.Series {
	lte := make(dynamo.Series, len(g))
	h := g.Step()
	for i := 1; i < len(g); i++ {
		lte[i] = math.Abs(sol.At(g[i]) - s.Step(g[i-1], sol.At(g[i-1]), h))
	}
	return lte
}

// GlobalError compares an accumulated trajectory with the exact solution.
func GlobalError(g dynamo.Grid, approx dynamo.Series, sol equation.Solution) dynamo.Series {
	gte := make(dynamo.Series, len(g))
	for i, x := range g {
		if i >= len(approx) {
			gte[i] = math.NaN()
			continue
		}
		gte[i] = math.Abs(sol.At(x) - approx[i])
	}
	return gte
}

// WorstGlobalError returns max(GTE) of a full run with s.
func WorstGlobalError(s integrators.Stepper, p dynamo.Problem) float64 {
	sol := equation.NewSolution(p.X0, p.Y0)
	g, approx := integrators.Integrate(s, p)
	return GlobalError(g, approx, sol).Max()
}

// ObservedOrder estimates the convergence order from the first and last
// entries of a sweep, log(e0/e1) / log(n1/n0). It returns NaN when the
// estimate is undefined.
func ObservedOrder(steps []int, worst dynamo.Series) float64 {
	if len(steps) < 2 || len(worst) != len(steps) {
		return math.NaN()
	}
	n0, n1 := float64(steps[0]), float64(steps[len(steps)-1])
	e0, e1 := worst[0], worst[len(worst)-1]
	if n0 <= 0 || n1 <= n0 || e0 <= 0 || e1 <= 0 {
		return math.NaN()
	}
	return math.Log(e0/e1) / math.Log(n1/n0)
}
