package equation

import "github.com/san-kum/odelab/internal/dynamo"

// ReferenceSamples is the resolution of the dense exact curve.
const ReferenceSamples = 1000

// Reference samples the exact solution densely over [x0, xn] for plotting.
func Reference(x0, y0, xn float64) (dynamo.Grid, dynamo.Series) {
	g := dynamo.Linspace(x0, xn, ReferenceSamples)
	return g, NewSolution(x0, y0).Sample(g)
}
