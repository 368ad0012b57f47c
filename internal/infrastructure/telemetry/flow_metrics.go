package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// FlowMetrics tracks AI flow executions: per-flow run counts and latency plus
// result cache effectiveness.
type FlowMetrics struct {
	logger *zap.Logger

	runsTotal   metric.Int64Counter
	runDuration metric.Float64Histogram
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
}

// NewFlowMetrics registers the flow instruments on the given meter.
func NewFlowMetrics(meter metric.Meter, logger *zap.Logger) (*FlowMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fm := &FlowMetrics{logger: logger}

	var err error
	fm.runsTotal, err = meter.Int64Counter(
		"bizos_flow_runs_total",
		metric.WithDescription("Total number of AI flow executions"),
		metric.WithUnit("{runs}"),
	)
	if err != nil {
		return nil, err
	}

	fm.runDuration, err = meter.Float64Histogram(
		"bizos_flow_duration_seconds",
		metric.WithDescription("AI flow execution latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	fm.cacheHits, err = meter.Int64Counter(
		"bizos_flow_cache_hits_total",
		metric.WithDescription("AI generation results served from cache"),
		metric.WithUnit("{hits}"),
	)
	if err != nil {
		return nil, err
	}

	fm.cacheMisses, err = meter.Int64Counter(
		"bizos_flow_cache_misses_total",
		metric.WithDescription("AI generation results that required a provider call"),
		metric.WithUnit("{misses}"),
	)
	if err != nil {
		return nil, err
	}

	return fm, nil
}

// RecordRun records one flow execution with its outcome and latency.
func (fm *FlowMetrics) RecordRun(ctx context.Context, flow string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("flow", flow),
		attribute.String("status", status),
	)
	fm.runsTotal.Add(ctx, 1, attrs)
	fm.runDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordCacheHit records a generation served from the result cache.
func (fm *FlowMetrics) RecordCacheHit(ctx context.Context) {
	fm.cacheHits.Add(ctx, 1)
}

// RecordCacheMiss records a generation that went to the provider.
func (fm *FlowMetrics) RecordCacheMiss(ctx context.Context) {
	fm.cacheMisses.Add(ctx, 1)
}
