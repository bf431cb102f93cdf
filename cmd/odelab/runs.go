package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

func listRuns(cmd *cobra.Command, opts *options) error {
	st := storage.New(opts.dataDir())
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tX0\tY0\tX\tSTEPS\tSWEEP\tMETHODS\tFAULTS")
	for _, run := range runs {
		names := make([]string, len(run.Methods))
		for i, m := range run.Methods {
			names[i] = m.Name
		}
		sweep := "-"
		if run.HasSweep {
			sweep = fmt.Sprintf("%d..%d", run.Problem.N0, run.Problem.N)
		}
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%d\t%s\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Problem.X0,
			run.Problem.Y0,
			run.Problem.Xn,
			run.Problem.Steps,
			sweep,
			strings.Join(names, ","),
			len(run.Faults),
		)
	}
	return w.Flush()
}

func loadChart(cmd *cobra.Command, opts *options, runID string) (*experiment.Report, export.Chart, error) {
	report, err := storage.New(opts.dataDir()).LoadReport(runID)
	if err != nil {
		return nil, export.Chart{}, err
	}
	name, _ := cmd.Flags().GetString("chart")
	c, ok := export.ChartByName(report, name)
	if !ok {
		return nil, export.Chart{}, fmt.Errorf("unknown chart: %s (available: approx, lte, gte, sweep)", name)
	}
	if name == "sweep" && report.Sweep == nil {
		return nil, export.Chart{}, fmt.Errorf("run %s has no sweep", runID)
	}
	return report, c, nil
}

func plotRun(cmd *cobra.Command, opts *options, runID string) error {
	report, c, err := loadChart(cmd, opts, runID)
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Chart(c.Title, viz.FromExport(c), width, height))
	fmt.Fprintln(out)
	fmt.Fprint(out, viz.SummaryTable(report))
	return nil
}

func exportRun(cmd *cobra.Command, opts *options, runID string) error {
	meta, err := storage.New(opts.dataDir()).Load(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, opts *options, runID string) error {
	runs, err := storage.New(opts.dataDir()).LoadRuns(runID)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	return w.WriteAll(storage.RunsTable(runs))
}

func exportJSON(cmd *cobra.Command, opts *options, runID string) error {
	report, err := storage.New(opts.dataDir()).LoadReport(runID)
	if err != nil {
		return err
	}
	return export.WriteJSON(cmd.OutOrStdout(), report)
}

func exportSVG(cmd *cobra.Command, opts *options, runID string) error {
	_, c, err := loadChart(cmd, opts, runID)
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	path := outputPath(cmd, runID, "svg")
	if err := os.WriteFile(path, []byte(export.SeriesToSVG(c, width, height)), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
	return nil
}

func exportPNG(cmd *cobra.Command, opts *options, runID string) error {
	_, c, err := loadChart(cmd, opts, runID)
	if err != nil {
		return err
	}
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")

	path := outputPath(cmd, runID, "png")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WritePNG(f, c, width, height); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", path)
	return nil
}

func outputPath(cmd *cobra.Command, runID, ext string) string {
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return out
	}
	name, _ := cmd.Flags().GetString("chart")
	return fmt.Sprintf("%s_%s.%s", runID, name, ext)
}
