package analysis

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/equation"
)

func solutionOf(p dynamo.Problem) equation.Solution {
	return equation.NewSolution(p.X0, p.Y0)
}

var _ = Describe("Sweep", func() {
	var (
		ctx context.Context
		p   dynamo.Problem
	)

	BeforeEach(func() {
		ctx = context.Background()
		p = dynamo.Problem{X0: 1, Y0: 2, Xn: 1.5, Steps: 10, N0: 20, N: 80}
	})

	It("returns one worst-case series per method aligned with the step counts", func() {
		res, err := Sweep(ctx, p, steppers(), 0)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.Steps).To(HaveLen(61))
		Expect(res.Steps[0]).To(Equal(20))
		Expect(res.Steps[60]).To(Equal(80))
		Expect(res.Methods).To(Equal([]string{"euler", "heun", "rk4"}))

		for _, m := range res.Methods {
			Expect(res.Worst[m]).To(HaveLen(len(res.Steps)))
		}
	})

	It("matches a direct run for each step count", func() {
		res, err := Sweep(ctx, p, steppers(), 3)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range steppers() {
			for i, n := range res.Steps {
				run := Analyze(s, p.WithSteps(n))
				Expect(res.Worst[s.Name()][i]).To(Equal(run.GTE.Max()))
			}
		}
	})

	It("does not depend on the number of workers", func() {
		serial, err := Sweep(ctx, p, steppers(), 1)
		Expect(err).NotTo(HaveOccurred())
		parallel, err := Sweep(ctx, p, steppers(), 8)
		Expect(err).NotTo(HaveOccurred())

		Expect(parallel).To(Equal(serial))
	})

	It("converges faster for higher-order methods", func() {
		res, err := Sweep(ctx, p, steppers(), 0)
		Expect(err).NotTo(HaveOccurred())

		last := len(res.Steps) - 1
		Expect(res.Worst["rk4"][last]).To(BeNumerically("<", res.Worst["heun"][last]))
		Expect(res.Worst["heun"][last]).To(BeNumerically("<", res.Worst["euler"][last]))

		euler := ObservedOrder(res.Steps, res.Worst["euler"])
		heun := ObservedOrder(res.Steps, res.Worst["heun"])
		rk4 := ObservedOrder(res.Steps, res.Worst["rk4"])

		Expect(euler).To(BeNumerically("~", 1, 0.3))
		Expect(heun).To(BeNumerically("~", 2, 0.3))
		Expect(rk4).To(BeNumerically("~", 4, 0.5))
		Expect(rk4).To(BeNumerically(">=", heun))
		Expect(heun).To(BeNumerically(">=", euler))
	})

	It("stops when the context is cancelled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		res, err := Sweep(cctx, p, steppers(), 2)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res).To(BeNil())
	})

	It("handles an empty method list", func() {
		res, err := Sweep(ctx, p, nil, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Methods).To(BeEmpty())
		Expect(res.Steps).To(HaveLen(61))
	})
})
