package viz

import (
	"image/color"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/export"
)

// Line is one series of a terminal chart.
type Line struct {
	Name  string
	X     []float64
	Y     dynamo.Series
	Color asciigraph.AnsiColor
}

// Chart plots every line on a shared x axis of width columns. Lines are
// linearly resampled onto that axis; columns outside a line's range or
// next to a non-finite value are left blank.
func Chart(title string, lines []Line, width, height int) string {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}

	lo, hi, ok := xRange(lines)
	if !ok {
		return Subtle.Render(title + ": no finite data")
	}
	axis := dynamo.Linspace(lo, hi, width)

	var (
		data    [][]float64
		colors  []asciigraph.AnsiColor
		legends []string
	)
	for _, l := range lines {
		ys := resample(l, axis)
		if !anyFinite(ys) {
			continue
		}
		data = append(data, ys)
		colors = append(colors, l.Color)
		legends = append(legends, l.Name)
	}
	if len(data) == 0 {
		return Subtle.Render(title + ": no finite data")
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Precision(4),
		asciigraph.Caption(title),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}

// FromExport converts an export chart into terminal lines.
func FromExport(c export.Chart) []Line {
	lines := make([]Line, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = Line{Name: l.Name, X: l.X, Y: l.Y, Color: ansiColor(l.Color)}
	}
	return lines
}

func ansiColor(c color.RGBA) asciigraph.AnsiColor {
	switch c {
	case export.ExactColor:
		return asciigraph.Maroon
	case export.MethodColor("euler"):
		return asciigraph.Green
	case export.MethodColor("heun"):
		return asciigraph.Orange
	case export.MethodColor("rk4"):
		return asciigraph.Blue
	}
	return asciigraph.Default
}

func xRange(lines []Line) (lo, hi float64, ok bool) {
	for _, l := range lines {
		for i, x := range l.X {
			if i >= len(l.Y) || !finite(x) || !finite(l.Y[i]) {
				continue
			}
			if !ok {
				lo, hi, ok = x, x, true
				continue
			}
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	return
}

// resample interpolates l at every axis point. l.X must be increasing.
func resample(l Line, axis dynamo.Grid) []float64 {
	out := make([]float64, len(axis))
	n := min(len(l.X), len(l.Y))
	j := 0
	for i, x := range axis {
		out[i] = math.NaN()
		if n == 0 || x < l.X[0] || x > l.X[n-1] {
			continue
		}
		for j < n-2 && l.X[j+1] < x {
			j++
		}
		switch {
		case n == 1 || x == l.X[j]:
			out[i] = l.Y[j]
		case x == l.X[j+1]:
			out[i] = l.Y[j+1]
		default:
			t := (x - l.X[j]) / (l.X[j+1] - l.X[j])
			out[i] = l.Y[j] + t*(l.Y[j+1]-l.Y[j])
		}
		if !finite(out[i]) {
			out[i] = math.NaN()
		}
	}
	return out
}

func anyFinite(v []float64) bool {
	for _, x := range v {
		if finite(x) {
			return true
		}
	}
	return false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
