package integrators

import "github.com/san-kum/odelab/internal/equation"

// Euler is the explicit first-order method.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }
func (e *Euler) Order() int   { return 1 }

func (e *Euler) Step(x, y, h float64) float64 {
	return y + h*equation.F(x, y)
}
