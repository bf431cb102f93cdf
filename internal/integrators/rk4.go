package integrators

import "github.com/san-kum/odelab/internal/equation"

// RK4 is the classical fourth-order Runge-Kutta method.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }
func (r *RK4) Order() int   { return 4 }

func (r *RK4) Step(x, y, h float64) float64 {
	halfH := h * 0.5

	k1 := equation.F(x, y)
	k2 := equation.F(x+halfH, y+k1*halfH)
	k3 := equation.F(x+halfH, y+k2*halfH)
	k4 := equation.F(x+h, y+k3*h)

	return y + (k1+2*k2+2*k3+k4)*h/6.0
}
