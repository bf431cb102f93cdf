// Package analysis measures the truncation error of the integrators
// against the exact solution.
//
//   - [LocalError]: error of a single step started from the exact value
//   - [GlobalError]: accumulated error of a full trajectory
//   - [Analyze]: trajectory, LTE and GTE for one method
//   - [Sweep]: worst-case GTE as a function of step count
//
// # Convergence
//
// For a method of order p the worst-case GTE shrinks roughly like n^-p as
// the step count n grows:
//
//	res, _ := analysis.Sweep(ctx, problem, steppers, 0)
//	order := analysis.ObservedOrder(res.Steps, res.Worst["rk4"])
package analysis
