package metrics

import (
	"context"
	"time"

	"qtycalc/app/lang"
)

// NoopMetrics is a Recorder that does nothing.
type NoopMetrics struct{}

var _ Recorder = NoopMetrics{}

// RecordEvaluation does nothing.
func (NoopMetrics) RecordEvaluation(_ context.Context, _ lang.QuantityKind, _ lang.Result, _ time.Duration) {
}
