// Package export renders experiment reports to files: SVG and PNG line
// charts and JSON documents.
package export

import (
	"image/color"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/experiment"
)

// Line is one named series of a chart.
type Line struct {
	Name  string
	X     []float64
	Y     dynamo.Series
	Color color.RGBA
	Width float64
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
}

var (
	ExactColor   = color.RGBA{R: 51, A: 255}
	methodColors = map[string]color.RGBA{
		"euler": {G: 153, B: 76, A: 255},
		"heun":  {R: 255, G: 165, A: 255},
		"rk4":   {R: 51, G: 51, B: 255, A: 255},
	}
	methodLabels = map[string]string{
		"euler": "Euler's method",
		"heun":  "Heun's method",
		"rk4":   "Runge-Kutta method",
	}
)

// MethodColor returns the plotting colour of a method.
func MethodColor(method string) color.RGBA {
	if c, ok := methodColors[method]; ok {
		return c
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func MethodLabel(method string) string {
	if l, ok := methodLabels[method]; ok {
		return l
	}
	return method
}

// ApproxChart plots the exact solution and every method's trajectory.
func ApproxChart(r *experiment.Report) Chart {
	c := Chart{Title: "Approximations", XLabel: "x", YLabel: "y"}
	c.Lines = append(c.Lines, Line{
		Name:  "Exact solution",
		X:     r.Reference.Grid,
		Y:     r.Reference.Exact,
		Color: ExactColor,
		Width: 3,
	})
	for _, run := range r.Runs {
		c.Lines = append(c.Lines, methodLine(run.Method, run.Grid, run.Approx))
	}
	return c
}

// LTEChart plots the local truncation error of every method.
func LTEChart(r *experiment.Report) Chart {
	c := Chart{Title: "Local truncation error", XLabel: "x", YLabel: "LTE"}
	for _, run := range r.Runs {
		c.Lines = append(c.Lines, methodLine(run.Method, run.Grid, run.LTE))
	}
	return c
}

// GTEChart plots the global truncation error of the single run.
func GTEChart(r *experiment.Report) Chart {
	c := Chart{Title: "Global truncation error", XLabel: "x", YLabel: "GTE"}
	for _, run := range r.Runs {
		c.Lines = append(c.Lines, methodLine(run.Method, run.Grid, run.GTE))
	}
	return c
}

// SweepChart plots worst-case GTE against step count. It is empty when the
// report has no sweep.
func SweepChart(r *experiment.Report) Chart {
	c := Chart{Title: "Worst-case global truncation error", XLabel: "steps", YLabel: "max GTE"}
	if r.Sweep == nil {
		return c
	}
	steps := make([]float64, len(r.Sweep.Steps))
	for i, n := range r.Sweep.Steps {
		steps[i] = float64(n)
	}
	for _, m := range r.Sweep.Methods {
		c.Lines = append(c.Lines, methodLine(m, steps, r.Sweep.Worst[m]))
	}
	return c
}

// ChartByName selects one of the report charts: approx, lte, gte or sweep.
func ChartByName(r *experiment.Report, name string) (Chart, bool) {
	switch name {
	case "approx", "plots":
		return ApproxChart(r), true
	case "lte":
		return LTEChart(r), true
	case "gte":
		return GTEChart(r), true
	case "sweep":
		return SweepChart(r), true
	}
	return Chart{}, false
}

func methodLine(method string, x []float64, y dynamo.Series) Line {
	return Line{Name: MethodLabel(method), X: x, Y: y, Color: MethodColor(method), Width: 2}
}

func (c Chart) bounds() (minX, maxX, minY, maxY float64, ok bool) {
	for _, l := range c.Lines {
		for i, y := range l.Y {
			if i >= len(l.X) || !finite(y) || !finite(l.X[i]) {
				continue
			}
			x := l.X[i]
			if !ok {
				minX, maxX, minY, maxY, ok = x, x, y, y, true
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	return
}
