package integrators

import "github.com/san-kum/odelab/internal/equation"

// Heun is the explicit trapezoidal (improved Euler) method.
type Heun struct{}

func NewHeun() *Heun {
	return &Heun{}
}

func (hm *Heun) Name() string { return "heun" }
func (hm *Heun) Order() int   { return 2 }

func (hm *Heun) Step(x, y, h float64) float64 {
	k1 := equation.F(x, y)
	k2 := equation.F(x+h, y+k1*h)
	return y + (k1+k2)*h*0.5
}
