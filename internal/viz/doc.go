// Package viz renders experiment reports in the terminal.
//
//   - [Chart]: multi-series asciigraph line chart
//   - [SummaryTable]: per-method metrics
//   - [App]: interactive form with Plots, LTE and GTE tabs; the GTE tab
//     plots worst-case global error against step count
//
// # Key Bindings
//
//	j/k   - Select field
//	enter - Edit field / commit edit
//	a     - Apply: validate the fields and rerun
//	tab   - Cycle tabs (1, 2, 3 jump directly)
//	q     - Quit
//
// Invalid input leaves the last applied problem and its charts in place.
package viz
