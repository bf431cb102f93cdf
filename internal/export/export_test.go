package export

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/experiment"
)

func runReport(t *testing.T, p dynamo.Problem) *experiment.Report {
	t.Helper()
	exp := experiment.New(experiment.Config{Problem: p, Workers: 2}, nil, logr.Discard())
	require.NoError(t, exp.Setup())
	r, err := exp.Run(context.Background())
	require.NoError(t, err)
	return r
}

func TestChartBuilders(t *testing.T) {
	p := dynamo.DefaultProblem()
	p.N = 20
	r := runReport(t, p)

	approx := ApproxChart(r)
	require.Len(t, approx.Lines, 4)
	assert.Equal(t, "Exact solution", approx.Lines[0].Name)
	assert.Equal(t, ExactColor, approx.Lines[0].Color)
	assert.Equal(t, MethodColor("rk4"), approx.Lines[3].Color)

	assert.Len(t, LTEChart(r).Lines, 3)
	assert.Len(t, GTEChart(r).Lines, 3)

	sweep := SweepChart(r)
	require.Len(t, sweep.Lines, 3)
	assert.Len(t, sweep.Lines[0].X, p.N-p.N0+1)

	_, ok := ChartByName(r, "lte")
	assert.True(t, ok)
	_, ok = ChartByName(r, "phase")
	assert.False(t, ok)
}

func TestSweepChartWithoutSweep(t *testing.T) {
	r := &experiment.Report{}
	assert.Empty(t, SweepChart(r).Lines)
}

func TestSeriesToSVG(t *testing.T) {
	r := runReport(t, dynamo.DefaultProblem())
	svg := SeriesToSVG(ApproxChart(r), 800, 600)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "</svg>")
	assert.Equal(t, 4, strings.Count(svg, "<path"))
	assert.Contains(t, svg, "Runge-Kutta method")
	assert.Contains(t, svg, "#3333ff")
}

func TestSeriesToSVGBreaksAtNaN(t *testing.T) {
	l := Line{
		Name: "broken",
		X:    []float64{0, 1, 2, 3, 4},
		Y:    dynamo.Series{1, 2, math.NaN(), 3, math.Inf(1)},
	}
	d := linePath(l, func(x, y float64) (float64, float64) { return x, y })
	assert.Equal(t, "M0.0,1.0 L1.0,2.0 M3.0,3.0", d)

	svg := SeriesToSVG(Chart{Lines: []Line{l}}, 400, 300)
	assert.Equal(t, 1, strings.Count(svg, "<path"))
	assert.NotContains(t, svg, "NaN")
}

func TestSeriesToSVGEmptyChart(t *testing.T) {
	svg := SeriesToSVG(Chart{Title: "empty"}, 200, 100)
	assert.Contains(t, svg, "<svg")
	assert.NotContains(t, svg, "<path")
}

func TestWritePNG(t *testing.T) {
	r := runReport(t, dynamo.DefaultProblem())
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, LTEChart(r), 4, 3))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
}

func TestWriteJSON(t *testing.T) {
	p := dynamo.DefaultProblem()
	p.Y0 = -1
	r := runReport(t, p)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var decoded experiment.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, p, decoded.Problem)
	assert.Len(t, decoded.Runs, 3)
	assert.NotEmpty(t, decoded.Faults)
}
