package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/equation"
	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/logging"
)

type Config struct {
	Problem   dynamo.Problem
	Methods   []string
	Workers   int
	SkipSweep bool
}

type Experiment struct {
	cfg      Config
	registry *Registry
	log      logr.Logger
	steppers []integrators.Stepper
}

func New(cfg Config, registry *Registry, log logr.Logger) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Experiment{cfg: cfg, registry: registry, log: log}
}

// Setup validates the problem and resolves the configured methods. An
// empty method list selects every registered method.
func (e *Experiment) Setup() error {
	if err := e.cfg.Problem.Validate(); err != nil {
		return err
	}

	names := e.cfg.Methods
	if len(names) == 0 {
		names = e.registry.Names()
	}

	e.steppers = e.steppers[:0]
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		s, err := e.registry.Get(name)
		if err != nil {
			return err
		}
		if seen[s.Name()] {
			continue
		}
		seen[s.Name()] = true
		e.steppers = append(e.steppers, s)
	}
	return nil
}

func (e *Experiment) Steppers() []integrators.Stepper {
	return e.steppers
}

func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	if len(e.steppers) == 0 {
		return nil, errors.New("experiment not setup")
	}

	p := e.cfg.Problem
	log := e.log.WithValues("x0", p.X0, "y0", p.Y0, "xn", p.Xn, "steps", p.Steps)
	report := &Report{
		Problem:   p,
		Timestamp: time.Now(),
	}

	report.Reference.Grid, report.Reference.Exact = equation.Reference(p.X0, p.Y0, p.Xn)

	for _, s := range e.steppers {
		start := time.Now()
		run := analysis.Analyze(s, p)
		log.V(logging.DEBUG).Info("method analysed", "method", run.Method,
			"maxLTE", run.LTE.Max(), "maxGTE", run.GTE.Max(), "elapsed", time.Since(start))
		report.Runs = append(report.Runs, run)
	}

	if !e.cfg.SkipSweep {
		start := time.Now()
		sweep, err := analysis.Sweep(ctx, p, e.steppers, e.cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("sweep [%d, %d]: %w", p.N0, p.N, err)
		}
		log.V(logging.DEBUG).Info("sweep finished", "n0", p.N0, "N", p.N, "elapsed", time.Since(start))
		report.Sweep = sweep
	}

	report.Faults = scanFaults(report)
	for _, f := range report.Faults {
		log.V(logging.INFO).Info("numeric domain fault", "method", f.Method, "series", f.Series, "index", f.Index, "x", f.X)
	}

	return report, nil
}

// scanFaults records the first invalid value of every series in the report.
func scanFaults(r *Report) []*dynamo.DomainError {
	var faults []*dynamo.DomainError

	check := func(method, series string, grid dynamo.Grid, values dynamo.Series) {
		i := values.FirstInvalid()
		if i < 0 {
			return
		}
		x := 0.0
		if i < len(grid) {
			x = grid[i]
		}
		faults = append(faults, &dynamo.DomainError{Method: method, Series: series, Index: i, X: x})
	}

	check("exact", "reference", r.Reference.Grid, r.Reference.Exact)
	for _, run := range r.Runs {
		check(run.Method, "approx", run.Grid, run.Approx)
		check(run.Method, "lte", run.Grid, run.LTE)
		check(run.Method, "gte", run.Grid, run.GTE)
	}
	if r.Sweep != nil {
		steps := make(dynamo.Grid, len(r.Sweep.Steps))
		for i, n := range r.Sweep.Steps {
			steps[i] = float64(n)
		}
		for _, m := range r.Sweep.Methods {
			check(m, "sweep", steps, r.Sweep.Worst[m])
		}
	}
	return faults
}
