package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/odelab/internal/experiment"
)

// SummaryTable renders per-method metrics of the report.
func SummaryTable(r *experiment.Report) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%-8s %5s %14s %14s %14s %8s",
		"method", "order", "y(X)", "max LTE", "max GTE", "p(obs)")))
	b.WriteString("\n")

	for _, s := range r.Summary() {
		b.WriteString(MethodStyle(s.Method).Render(fmt.Sprintf("%-8s", s.Method)))
		b.WriteString(MetricLabel.Render(fmt.Sprintf(" %5d", s.Order)))
		b.WriteString(MetricValue.Render(" " + cell(s.Final, 14, "%14.6g")))
		b.WriteString(MetricValue.Render(" " + cell(s.MaxLTE, 14, "%14.6g")))
		b.WriteString(MetricValue.Render(" " + cell(s.MaxGTE, 14, "%14.6g")))
		b.WriteString(MetricValue.Render(" " + cell(s.ObservedOrder, 8, "%8.3f")))
		b.WriteString("\n")
	}

	if n := len(r.Faults); n > 0 {
		b.WriteString(ErrorText.Render(fmt.Sprintf("%d domain fault(s), first: %v", n, r.Faults[0])))
		b.WriteString("\n")
	}
	return b.String()
}

func cell(v float64, width int, format string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%*s", width, "-")
	}
	return fmt.Sprintf(format, v)
}
