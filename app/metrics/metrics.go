// Package metrics records expression evaluation outcomes through
// OpenTelemetry. Use NewRecorder for OTel metrics or NoopMetrics{} when
// disabled.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"qtycalc/app/lang"
)

const (
	EvaluationsName = "qtycalc.evaluations"
	DurationName    = "qtycalc.evaluation.duration_us"
)

// Recorder records evaluation metrics.
type Recorder interface {
	// RecordEvaluation records one evaluation of kind, its outcome and duration.
	RecordEvaluation(ctx context.Context, kind lang.QuantityKind, res lang.Result, d time.Duration)
}

type otelMetrics struct {
	evaluations metric.Int64Counter
	duration    metric.Float64Histogram
}

func newOtelMetrics(mp metric.MeterProvider) (*otelMetrics, error) {
	meter := mp.Meter("qtycalc")

	evaluations, err := meter.Int64Counter(EvaluationsName,
		metric.WithDescription("Number of expression evaluations"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(DurationName,
		metric.WithDescription("Expression evaluation latency in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{evaluations: evaluations, duration: duration}, nil
}

// NewRecorder returns a Recorder backed by mp, or by the global meter
// provider when mp is nil. If the instruments cannot be created it logs a
// warning and returns a no-op recorder.
func NewRecorder(mp metric.MeterProvider) Recorder {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	m, err := newOtelMetrics(mp)
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// Outcome is "ok" for a successful result and the error kind otherwise.
func Outcome(res lang.Result) string {
	if !res.HasError {
		return "ok"
	}
	return res.ErrorKind.String()
}

func (m *otelMetrics) RecordEvaluation(ctx context.Context, kind lang.QuantityKind, res lang.Result, d time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("quantity_kind", kind.String()),
		attribute.String("outcome", Outcome(res)),
	)
	m.evaluations.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(d.Nanoseconds())/1e3, attrs)
}

// Evaluate runs lang.EvaluateExpression and records it with r.
func Evaluate(ctx context.Context, r Recorder, input string, opts lang.EvaluateOptions) lang.Result {
	start := time.Now()
	res := lang.EvaluateExpression(input, opts)
	r.RecordEvaluation(ctx, opts.QuantityKind, res, time.Since(start))
	return res
}
