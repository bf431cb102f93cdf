package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/dynamo"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/export"
	"github.com/san-kum/odelab/internal/logging"
	"github.com/san-kum/odelab/internal/storage"
	"github.com/san-kum/odelab/internal/viz"
)

func newExperiment(opts *options, p dynamo.Problem, skipSweep bool) (*experiment.Experiment, error) {
	cfg := experiment.Config{
		Problem:   p,
		Methods:   opts.methods(),
		Workers:   opts.workers(),
		SkipSweep: skipSweep,
	}
	exp := experiment.New(cfg, experiment.NewRegistry(), opts.log)
	if err := exp.Setup(); err != nil {
		return nil, err
	}
	return exp, nil
}

func runExperiment(cmd *cobra.Command, opts *options) error {
	noSweep, _ := cmd.Flags().GetBool("no-sweep")
	noSave, _ := cmd.Flags().GetBool("no-save")

	exp, err := newExperiment(opts, opts.problem(), noSweep)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	report, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "completed in %v\n", elapsed)

	if !noSave {
		st := storage.New(opts.dataDir())
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(report)
		if err != nil {
			return err
		}
		opts.log.V(logging.DEBUG).Info("run stored", "id", runID, "dir", opts.dataDir())
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	c := export.ApproxChart(report)
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Chart(c.Title, viz.FromExport(c), 80, 15))
	fmt.Fprintln(out)
	fmt.Fprint(out, viz.SummaryTable(report))
	return nil
}

func runSweep(cmd *cobra.Command, opts *options) error {
	every, _ := cmd.Flags().GetInt("every")
	if every < 1 {
		every = 1
	}

	p := opts.problem()
	exp, err := newExperiment(opts, p, true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := analysis.Sweep(ctx, p, exp.Steppers(), opts.workers())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "STEPS")
	for _, m := range res.Methods {
		fmt.Fprintf(w, "\t%s", m)
	}
	fmt.Fprintln(w)
	for i, n := range res.Steps {
		if i%every != 0 && i != len(res.Steps)-1 {
			continue
		}
		fmt.Fprintf(w, "%d", n)
		for _, m := range res.Methods {
			fmt.Fprintf(w, "\t%.6g", res.Worst[m][i])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nobserved order:")
	for _, m := range res.Methods {
		fmt.Fprintf(out, "  %s: %.3f\n", m, analysis.ObservedOrder(res.Steps, res.Worst[m]))
	}

	c := export.SweepChart(&experiment.Report{Sweep: res})
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Chart(c.Title, viz.FromExport(c), 80, 15))
	return nil
}

func validateInput(cmd *cobra.Command, args []string) error {
	f := config.Fields{X0: args[0], Y0: args[1], Xn: args[2], Steps: args[3], N0: args[4], N: args[5]}
	p, err := f.Parse()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), config.InvalidInputMessage)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid: x0=%g y0=%g X=%g steps=%d n0=%d N=%d\n",
		p.X0, p.Y0, p.Xn, p.Steps, p.N0, p.N)
	return nil
}

func listPresets(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX0\tY0\tX\tSTEPS\tN0\tN")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%d\t%d\t%d\n", name, p.X0, p.Y0, p.Xn, p.Steps, p.N0, p.N)
	}
	return w.Flush()
}

func benchMethods(cmd *cobra.Command, opts *options) error {
	base := opts.problem()
	exp, err := newExperiment(opts, base, true)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tSTEPS\tTIME\tSTEPS/SEC\tMAX GTE")
	for _, s := range exp.Steppers() {
		for _, n := range []int{10, 100, 1000, 10000, 100000} {
			p := base.WithSteps(n)
			start := time.Now()
			run := analysis.Analyze(s, p)
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%.3g\n",
				s.Name(), n, elapsed, float64(n)/elapsed.Seconds(), run.GTE.Max())
		}
	}
	return w.Flush()
}

func runTUI(opts *options) error {
	p := opts.problem()
	if err := p.Validate(); err != nil {
		opts.log.Info("configured problem rejected, using defaults", "reason", err.Error())
		p = dynamo.DefaultProblem()
	}

	runner := func(ctx context.Context, p dynamo.Problem) (*experiment.Report, error) {
		exp, err := newExperiment(opts, p, false)
		if err != nil {
			return nil, err
		}
		return exp.Run(ctx)
	}
	return viz.RunApp(p, runner)
}
