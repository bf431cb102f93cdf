package dynamo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Problem is the parameter set of one initial-value problem together with
// the step-count range of its sweep.
type Problem struct {
	X0    float64 `json:"x0" yaml:"x0"`
	Y0    float64 `json:"y0" yaml:"y0"`
	Xn    float64 `json:"xn" yaml:"xn"`
	Steps int     `json:"steps" yaml:"steps"`
	N0    int     `json:"n0" yaml:"n0"`
	N     int     `json:"n" yaml:"n"`
}

func DefaultProblem() Problem {
	return Problem{X0: 1, Y0: 2, Xn: 6, Steps: 10, N0: 10, N: 100}
}

// WithSteps returns a copy of p using n grid points.
func (p Problem) WithSteps(n int) Problem {
	p.Steps = n
	return p
}

// Validate checks the invariants every computation relies on. The interval
// must not contain zero.
func (p Problem) Validate() error {
	switch {
	case math.IsNaN(p.X0) || math.IsNaN(p.Y0) || math.IsNaN(p.Xn):
		return fmt.Errorf("%w: NaN parameter", ErrInvalidProblem)
	case p.X0 >= p.Xn:
		return fmt.Errorf("%w: x0 (%g) must be less than xn (%g)", ErrInvalidProblem, p.X0, p.Xn)
	case !(p.X0 > 0 || p.Xn < 0):
		return fmt.Errorf("%w: interval [%g, %g] crosses zero", ErrInvalidProblem, p.X0, p.Xn)
	case p.Steps < 1:
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidProblem, p.Steps)
	case p.N0 < 1:
		return fmt.Errorf("%w: n0 must be positive, got %d", ErrInvalidProblem, p.N0)
	case p.N0 >= p.N:
		return fmt.Errorf("%w: n0 (%d) must be less than N (%d)", ErrInvalidProblem, p.N0, p.N)
	}
	return nil
}

// StepCounts returns the sweep range [N0, N].
func (p Problem) StepCounts() []int {
	if p.N < p.N0 {
		return nil
	}
	counts := make([]int, 0, p.N-p.N0+1)
	for n := p.N0; n <= p.N; n++ {
		counts = append(counts, n)
	}
	return counts
}

// Grid is an evenly spaced set of abscissae, endpoints included.
type Grid []float64

// Linspace returns n evenly spaced points from start to end inclusive.
func Linspace(start, end float64, n int) Grid {
	switch {
	case n <= 0:
		return Grid{}
	case n == 1:
		return Grid{start}
	}
	return floats.Span(make(Grid, n), start, end)
}

// Step returns the spacing h of the grid, or 0 when it has fewer than two points.
func (g Grid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

// Series holds values aligned index-for-index with a Grid.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) IsValid() bool {
	return s.FirstInvalid() < 0
}

// FirstInvalid returns the index of the first NaN or infinite value, or -1.
func (s Series) FirstInvalid() int {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// Max returns the largest value. An empty series yields 0 and any NaN
// poisons the result.
func (s Series) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	if floats.HasNaN(s) {
		return math.NaN()
	}
	return floats.Max(s)
}

// Last returns the final value, or NaN for an empty series.
func (s Series) Last() float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	return s[len(s)-1]
}
