package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := newOptions()

	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "compare Euler, Heun and Runge-Kutta on y' = 3y - xy^(1/3)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
		SilenceUsage: true,
	}
	addPersistentFlags(rootCmd.PersistentFlags())
	addProblemFlags(rootCmd.Flags())

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run every method once, then sweep step counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(cmd, opts)
		},
	}
	addProblemFlags(runCmd.Flags())
	runCmd.Flags().Bool("no-sweep", false, "skip the step-count sweep")
	runCmd.Flags().Bool("no-save", false, "do not store the run")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "worst-case global error against step count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, opts)
		},
	}
	addProblemFlags(sweepCmd.Flags())
	sweepCmd.Flags().Int("every", 10, "print every n-th step count")

	validateCmd := &cobra.Command{
		Use:   "validate x0 y0 X steps n0 N",
		Short: "check raw input the way the interactive form does",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateInput(cmd, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, opts)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotRun(cmd, opts, args[0])
		},
	}
	addChartFlags(plotCmd)
	plotCmd.Flags().Int("width", 80, "chart width in columns")
	plotCmd.Flags().Int("height", 15, "chart height in rows")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRun(cmd, opts, args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportCSV(cmd, opts, args[0])
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export the full report to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportJSON(cmd, opts, args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a chart to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportSVG(cmd, opts, args[0])
		},
	}
	addChartFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringP("out", "o", "", "output file (default <run_id>_<chart>.svg)")
	exportSVGCmd.Flags().Int("width", 800, "width in pixels")
	exportSVGCmd.Flags().Int("height", 600, "height in pixels")

	exportPNGCmd := &cobra.Command{
		Use:   "export-png [run_id]",
		Short: "export a chart to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportPNG(cmd, opts, args[0])
		},
	}
	addChartFlags(exportPNGCmd)
	exportPNGCmd.Flags().StringP("out", "o", "", "output file (default <run_id>_<chart>.png)")
	exportPNGCmd.Flags().Float64("width", 8, "width in inches")
	exportPNGCmd.Flags().Float64("height", 6, "height in inches")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd)
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the methods at growing step counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchMethods(cmd, opts)
		},
	}
	addProblemFlags(benchCmd.Flags())

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive comparison window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	addProblemFlags(tuiCmd.Flags())

	rootCmd.AddCommand(runCmd, sweepCmd, validateCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, exportSVGCmd, exportPNGCmd, presetsCmd, benchCmd, tuiCmd)
	return rootCmd
}

func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().String("chart", "approx", "chart to draw (approx, lte, gte, sweep)")
}
