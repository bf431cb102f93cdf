package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/equation"
)

func allSteppers() []Stepper {
	return []Stepper{NewEuler(), NewHeun(), NewRK4()}
}

func TestEulerScenario(t *testing.T) {
	p := dynamo.Problem{X0: 1, Y0: 8, Xn: 2, Steps: 2, N0: 1, N: 2}
	g, y := Integrate(NewEuler(), p)

	if len(g) != 2 || g[0] != 1 || g[1] != 2 {
		t.Fatalf("unexpected grid %v", g)
	}
	if g.Step() != 1 {
		t.Errorf("expected h=1, got %g", g.Step())
	}
	if math.Abs(y[1]-30) > 1e-9 {
		t.Errorf("expected trajectory[1]=30, got %.12f", y[1])
	}
}

func TestHeunStep(t *testing.T) {
	k1 := 22.0
	k2 := 90 - 2*math.Cbrt(30)
	want := 8 + (k1+k2)/2

	if got := NewHeun().Step(1, 8, 1); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %.9f, got %.9f", want, got)
	}
}

func TestZeroStepIsIdentity(t *testing.T) {
	for _, s := range allSteppers() {
		if got := s.Step(1.5, 3, 0); got != 3 {
			t.Errorf("%s: zero step changed y to %g", s.Name(), got)
		}
	}
}

func TestTrajectoryStartsAtInitialValue(t *testing.T) {
	problems := []dynamo.Problem{
		dynamo.DefaultProblem(),
		{X0: 1, Y0: 8, Xn: 2, Steps: 2, N0: 1, N: 2},
		{X0: -3, Y0: 1, Xn: -1, Steps: 7, N0: 1, N: 2},
		{X0: 0.5, Y0: 0.1, Xn: 0.6, Steps: 1, N0: 1, N: 2},
	}
	for _, p := range problems {
		for _, s := range allSteppers() {
			g, y := Integrate(s, p)
			if len(g) != p.Steps || len(y) != p.Steps {
				t.Fatalf("%s: expected %d points, got grid %d trajectory %d", s.Name(), p.Steps, len(g), len(y))
			}
			if y[0] != p.Y0 {
				t.Errorf("%s: trajectory[0]=%g, want %g", s.Name(), y[0], p.Y0)
			}
		}
	}
}

func TestTrajectoryEmptyGrid(t *testing.T) {
	y := Trajectory(NewRK4(), dynamo.Grid{}, 2)
	if len(y) != 0 {
		t.Errorf("expected empty trajectory, got %v", y)
	}
}

func TestLocalErrorOrder(t *testing.T) {
	sol := equation.NewSolution(1, 2)
	localErr := func(s Stepper, h float64) float64 {
		return math.Abs(sol.At(1+h) - s.Step(1, 2, h))
	}

	tests := []struct {
		s        Stepper
		min, max float64
	}{
		{NewEuler(), 3.5, 4.5},
		{NewHeun(), 7, 9},
		{NewRK4(), 26, 38},
	}

	for _, tt := range tests {
		ratio := localErr(tt.s, 0.01) / localErr(tt.s, 0.005)
		if ratio < tt.min || ratio > tt.max {
			t.Errorf("%s: local error ratio %.3f outside [%g, %g]", tt.s.Name(), ratio, tt.min, tt.max)
		}
	}
}

func TestGlobalErrorOrder(t *testing.T) {
	p := dynamo.Problem{X0: 1, Y0: 2, Xn: 1.5, N0: 1, N: 2}
	sol := equation.NewSolution(p.X0, p.Y0)
	finalErr := func(s Stepper, n int) float64 {
		g, y := Integrate(s, p.WithSteps(n))
		return math.Abs(sol.At(g[len(g)-1]) - y[len(y)-1])
	}

	for _, s := range allSteppers() {
		ratio := finalErr(s, 21) / finalErr(s, 41)
		want := math.Pow(2, float64(s.Order()))
		if ratio < 0.8*want || ratio > 1.25*want {
			t.Errorf("%s: global error ratio %.3f, expected about %g", s.Name(), ratio, want)
		}
	}
}

func TestNegativeTrajectoryFaults(t *testing.T) {
	p := dynamo.Problem{X0: 1, Y0: -1, Xn: 2, Steps: 5, N0: 1, N: 2}
	for _, s := range allSteppers() {
		_, y := Integrate(s, p)
		if y[0] != -1 {
			t.Errorf("%s: initial value altered", s.Name())
		}
		if y.FirstInvalid() != 1 {
			t.Errorf("%s: expected NaN from index 1, got %v", s.Name(), y)
		}
	}
}

func TestOrders(t *testing.T) {
	want := map[string]int{"euler": 1, "heun": 2, "rk4": 4}
	for _, s := range allSteppers() {
		if s.Order() != want[s.Name()] {
			t.Errorf("%s: order %d, want %d", s.Name(), s.Order(), want[s.Name()])
		}
	}
}
