package analysis

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/integrators"
)

func steppers() []integrators.Stepper {
	return []integrators.Stepper{integrators.NewEuler(), integrators.NewHeun(), integrators.NewRK4()}
}

var _ = Describe("Analyze", func() {
	problems := []dynamo.Problem{
		dynamo.DefaultProblem(),
		{X0: 1, Y0: 8, Xn: 2, Steps: 2, N0: 1, N: 2},
		{X0: 1, Y0: 2, Xn: 1.5, Steps: 25, N0: 1, N: 2},
		{X0: -3, Y0: 1, Xn: -1, Steps: 12, N0: 1, N: 2},
	}

	It("starts every series at the initial condition", func() {
		for _, p := range problems {
			for _, s := range steppers() {
				run := Analyze(s, p)
				Expect(run.Method).To(Equal(s.Name()))
				Expect(run.Grid).To(HaveLen(p.Steps))
				Expect(run.Approx).To(HaveLen(p.Steps))
				Expect(run.LTE).To(HaveLen(p.Steps))
				Expect(run.GTE).To(HaveLen(p.Steps))

				Expect(run.Approx[0]).To(Equal(p.Y0))
				Expect(run.LTE[0]).To(BeZero())
				Expect(run.GTE[0]).To(BeZero())
			}
		}
	})

	It("never reports a negative error", func() {
		for _, p := range problems {
			for _, s := range steppers() {
				run := Analyze(s, p)
				for i := range run.GTE {
					Expect(run.GTE[i]).To(BeNumerically(">=", 0), "%s GTE[%d]", s.Name(), i)
					Expect(run.LTE[i]).To(BeNumerically(">=", 0), "%s LTE[%d]", s.Name(), i)
				}
			}
		}
	})

	It("agrees on the first step because both errors start from y0", func() {
		p := dynamo.DefaultProblem()
		for _, s := range steppers() {
			run := Analyze(s, p)
			Expect(run.LTE[1]).To(Equal(run.GTE[1]))
		}
	})

	It("reproduces the worked Euler example", func() {
		p := dynamo.Problem{X0: 1, Y0: 8, Xn: 2, Steps: 2, N0: 1, N: 2}
		run := Analyze(integrators.NewEuler(), p)

		Expect(run.Grid).To(Equal(dynamo.Grid{1, 2}))
		Expect(run.Approx[1]).To(BeNumerically("~", 30, 1e-9))
		Expect(run.GTE[1]).To(BeNumerically("~", 107.9, 0.5))
	})

	Context("when the trajectory leaves the real domain", func() {
		It("propagates NaN instead of failing", func() {
			p := dynamo.Problem{X0: 1, Y0: -1, Xn: 2, Steps: 5, N0: 1, N: 2}
			for _, s := range steppers() {
				run := Analyze(s, p)
				Expect(run.Approx.FirstInvalid()).To(Equal(1))
				Expect(math.IsNaN(WorstGlobalError(s, p))).To(BeTrue())
			}
		})
	})
})

var _ = Describe("GlobalError", func() {
	It("marks points missing from a short trajectory as NaN", func() {
		p := dynamo.DefaultProblem()
		run := Analyze(integrators.NewEuler(), p)
		gte := GlobalError(run.Grid, run.Approx[:3], solutionOf(p))
		Expect(gte).To(HaveLen(len(run.Grid)))
		Expect(gte.FirstInvalid()).To(Equal(3))
	})
})

var _ = Describe("ObservedOrder", func() {
	It("recovers the exponent of a power law", func() {
		steps := []int{10, 20, 40}
		worst := dynamo.Series{1, 1.0 / 4, 1.0 / 16}
		Expect(ObservedOrder(steps, worst)).To(BeNumerically("~", 2, 1e-12))
	})

	DescribeTable("is undefined for degenerate input",
		func(steps []int, worst dynamo.Series) {
			Expect(math.IsNaN(ObservedOrder(steps, worst))).To(BeTrue())
		},
		Entry("single step count", []int{10}, dynamo.Series{1}),
		Entry("length mismatch", []int{10, 20}, dynamo.Series{1}),
		Entry("zero error", []int{10, 20}, dynamo.Series{1, 0}),
		Entry("NaN error", []int{10, 20}, dynamo.Series{math.NaN(), 1}),
	)
})
