package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePNG renders the chart with gonum/plot. Width and height are in
// inches. Non-finite points are dropped.
func WritePNG(w io.Writer, c Chart, width, height float64) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for _, l := range c.Lines {
		pts := make(plotter.XYs, 0, len(l.Y))
		for i, y := range l.Y {
			if i >= len(l.X) || !finite(y) || !finite(l.X[i]) {
				continue
			}
			pts = append(pts, plotter.XY{X: l.X[i], Y: y})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("line %q: %w", l.Name, err)
		}
		line.LineStyle.Color = l.Color
		line.LineStyle.Width = vg.Points(strokeWidth(l))
		p.Add(line)
		p.Legend.Add(l.Name, line)
	}

	wt, err := p.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
