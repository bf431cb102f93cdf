package experiment

import (
	"math"
	"time"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/dynamo"
)

// Report gathers everything one experiment produced.
type Report struct {
	Problem   dynamo.Problem        `json:"problem"`
	Timestamp time.Time             `json:"timestamp"`
	Reference Reference             `json:"reference"`
	Runs      []analysis.Run        `json:"runs"`
	Sweep     *analysis.SweepResult `json:"sweep,omitempty"`
	Faults    []*dynamo.DomainError `json:"faults,omitempty"`
}

// Reference is the densely sampled exact solution.
type Reference struct {
	Grid  dynamo.Grid   `json:"grid"`
	Exact dynamo.Series `json:"exact"`
}

// MethodSummary condenses one method's results.
type MethodSummary struct {
	Method        string
	Order         int
	Final         float64
	MaxLTE        float64
	MaxGTE        float64
	ObservedOrder float64
}

func (r *Report) Methods() []string {
	names := make([]string, len(r.Runs))
	for i, run := range r.Runs {
		names[i] = run.Method
	}
	return names
}

// Run returns the run of the named method.
func (r *Report) Run(method string) (analysis.Run, bool) {
	for _, run := range r.Runs {
		if run.Method == method {
			return run, true
		}
	}
	return analysis.Run{}, false
}

func (r *Report) Summary() []MethodSummary {
	out := make([]MethodSummary, 0, len(r.Runs))
	for _, run := range r.Runs {
		s := MethodSummary{
			Method:        run.Method,
			Order:         run.Order,
			Final:         run.Approx.Last(),
			MaxLTE:        run.LTE.Max(),
			MaxGTE:        run.GTE.Max(),
			ObservedOrder: math.NaN(),
		}
		if r.Sweep != nil {
			s.ObservedOrder = analysis.ObservedOrder(r.Sweep.Steps, r.Sweep.Worst[run.Method])
		}
		out = append(out, s)
	}
	return out
}

// Metrics flattens the summary into name/value pairs for storage.
// Non-finite values are left out.
func (r *Report) Metrics() map[string]float64 {
	m := make(map[string]float64)
	put := func(name string, v float64) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			m[name] = v
		}
	}
	for _, s := range r.Summary() {
		put(s.Method+"_final", s.Final)
		put(s.Method+"_max_lte", s.MaxLTE)
		put(s.Method+"_max_gte", s.MaxGTE)
		put(s.Method+"_observed_order", s.ObservedOrder)
	}
	return m
}
