package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"qtycalc/app/metrics"
)

// globalOptions holds state shared by every subcommand.
type globalOptions struct {
	Verbose bool
	Stats   bool

	Logger   *slog.Logger
	Recorder metrics.Recorder

	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider

	ErrOut io.Writer
}

func NewCmdRoot(out, errOut io.Writer) *cobra.Command {
	g := &globalOptions{ErrOut: errOut}

	cmd := &cobra.Command{
		Use:   "qtycalc",
		Short: "Evaluate unit-aware length, angle and number expressions",
		Long: `qtycalc evaluates arithmetic expressions over lengths, angles and plain
numbers, checks them against a quantity type and bounds, and prints the
cleaned expression with its rounded value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return g.Complete()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", g.Verbose, "log debug information to stderr.")
	cmd.PersistentFlags().BoolVar(&g.Stats, "stats", g.Stats, "print evaluation counts to stderr when done.")

	cmd.AddCommand(NewCmdEval(g, out))
	cmd.AddCommand(NewCmdDefaults(g, out))
	return cmd
}

// Complete sets up logging and, with --stats, an in-process metrics reader.
func (g *globalOptions) Complete() error {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	g.Logger = slog.New(slog.NewTextHandler(g.ErrOut, &slog.HandlerOptions{Level: level}))

	if !g.Stats {
		g.Recorder = metrics.NoopMetrics{}
		return nil
	}
	g.reader = sdkmetric.NewManualReader()
	g.provider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(g.reader))
	g.Recorder = metrics.NewRecorder(g.provider)
	return nil
}

// Finish prints the collected statistics, if any, and releases the meter
// provider.
func (g *globalOptions) Finish(ctx context.Context) {
	if g.provider == nil {
		return
	}
	defer func() {
		if err := g.provider.Shutdown(ctx); err != nil {
			g.Logger.Warn("shutting down meter provider", slog.String("error", err.Error()))
		}
	}()

	var rm metricdata.ResourceMetrics
	if err := g.reader.Collect(ctx, &rm); err != nil {
		g.Logger.Warn("collecting metrics", slog.String("error", err.Error()))
		return
	}
	writeStats(g.ErrOut, &rm)
}

func writeStats(w io.Writer, rm *metricdata.ResourceMetrics) {
	var lines []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != metrics.EvaluationsName {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value("quantity_kind")
				outcome, _ := dp.Attributes.Value("outcome")
				lines = append(lines, fmt.Sprintf("%-8s %-15s %d", kind.AsString(), outcome.AsString(), dp.Value))
			}
		}
	}
	sort.Strings(lines)
	fmt.Fprintln(w, "evaluations:")
	for _, l := range lines {
		fmt.Fprintln(w, "  "+l)
	}
}
