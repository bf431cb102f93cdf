package analysis

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/integrators"
)

// SweepResult holds the worst-case GTE of every method for each step
// count in [N0, N]. Worst[m][i] belongs to Steps[i].
type SweepResult struct {
	Steps   []int                    `json:"steps"`
	Methods []string                 `json:"methods"`
	Worst   map[string]dynamo.Series `json:"worst"`
}

// Sweep re-runs every stepper for each step count in [p.N0, p.N] and records
// max(GTE). Step counts are evaluated on up to workers goroutines; a
// non-positive value uses GOMAXPROCS. Results do not depend on workers.
func Sweep(ctx context.Context, p dynamo.Problem, steppers []integrators.Stepper, workers int) (*SweepResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	steps := p.StepCounts()
	res := &SweepResult{
		Steps:   steps,
		Methods: make([]string, len(steppers)),
		Worst:   make(map[string]dynamo.Series, len(steppers)),
	}
	for i, s := range steppers {
		res.Methods[i] = s.Name()
		res.Worst[s.Name()] = make(dynamo.Series, len(steps))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for idx, n := range steps {
		if gctx.Err() != nil {
			break
		}
		idx, n := idx, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			run := p.WithSteps(n)
			for _, s := range steppers {
				res.Worst[s.Name()][idx] = WorstGlobalError(s, run)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation may stop scheduling before any goroutine observes it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
