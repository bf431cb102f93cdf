package export

import (
	"fmt"
	"html"
	"image/color"
	"math"
	"strings"
)

// SeriesToSVG renders the chart as an SVG line plot with a legend.
// Non-finite points split a line into separate segments.
func SeriesToSVG(c Chart, width, height int) string {
	minX, maxX, minY, maxY, ok := c.bounds()
	if !ok {
		minX, maxX, minY, maxY = 0, 1, 0, 1
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeY = maxY - minY

	const margin = 40.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="24" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000"/>
`, width, height, width, height, width/2, html.EscapeString(c.Title), margin, margin, plotW, plotH))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" font-family="sans-serif" font-size="12" text-anchor="middle">%s</text>
`, margin+plotW/2, height-8, html.EscapeString(c.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10">%.4g</text>
<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="10">%.4g</text>
`, margin+2, margin-4, maxY, margin+2, margin+plotH+12, minY))

	for _, l := range c.Lines {
		d := linePath(l, func(x, y float64) (float64, float64) {
			px := margin + (x-minX)/rangeX*plotW
			py := margin + plotH - (y-minY)/rangeY*plotH
			return px, py
		})
		if d == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" d="%s"/>
`, hexColor(l.Color), strokeWidth(l), d))
	}

	for i, l := range c.Lines {
		y := margin + 16 + float64(i)*16
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="3"/>
<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12">%s</text>
`, margin+plotW-170, y-4, margin+plotW-150, y-4, hexColor(l.Color), margin+plotW-145, y, html.EscapeString(l.Name)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func linePath(l Line, project func(x, y float64) (float64, float64)) string {
	var sb strings.Builder
	pen := false
	for i, y := range l.Y {
		if i >= len(l.X) || !finite(y) || !finite(l.X[i]) {
			pen = false
			continue
		}
		px, py := project(l.X[i], y)
		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		} else {
			if sb.Len() > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", px, py))
			pen = true
		}
	}
	return sb.String()
}

func strokeWidth(l Line) float64 {
	if l.Width <= 0 {
		return 1.5
	}
	return l.Width
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
