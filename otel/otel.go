package otel

import (
	"context"
	"errors"
	"net/http"
	"time"

	config "github.com/inference-gateway/groq-mcp-client/config"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	exporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	resource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

type MeterProvider = sdkmetric.MeterProvider

// Outcome values attached to recorded calls
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Telemetry records completion and tool call metrics
//
//go:generate mockgen -source=otel.go -destination=../mocks/otel.go -package=mocks
type Telemetry interface {
	RecordCompletion(ctx context.Context, model string, stage string, duration time.Duration, err error)
	RecordToolCall(ctx context.Context, tool string, succeeded bool, duration time.Duration)
}

// NoopTelemetry discards every measurement, used when telemetry is disabled
type NoopTelemetry struct{}

func (NoopTelemetry) RecordCompletion(ctx context.Context, model string, stage string, duration time.Duration, err error) {
}

func (NoopTelemetry) RecordToolCall(ctx context.Context, tool string, succeeded bool, duration time.Duration) {
}

type OpenTelemetryImpl struct {
	meterProvider *MeterProvider
	registry      *prom.Registry

	completionCounter   metric.Int64Counter
	completionHistogram metric.Float64Histogram
	toolCallCounter     metric.Int64Counter
	toolCallHistogram   metric.Float64Histogram
}

// Init wires a prometheus exporter into a fresh meter provider and creates
// the instruments. The collected metrics are served by Handler.
func (o *OpenTelemetryImpl) Init(cfg config.Config) error {
	registry := prom.NewRegistry()
	metricExporter, err := exporter.New(exporter.WithRegisterer(registry))
	if err != nil {
		return err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(metricExporter),
		sdkmetric.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(cfg.ApplicationName),
		)),
	)

	otel.SetMeterProvider(mp)
	o.meterProvider = mp
	o.registry = registry

	meter := mp.Meter("groq-mcp-client")

	// Durations are recorded in milliseconds
	timeUnit := "ms"

	var errs []error
	o.completionCounter, err = meter.Int64Counter(
		"llm_completions",
		metric.WithDescription("Number of chat completion calls, by stage and outcome"),
	)
	errs = append(errs, err)

	o.completionHistogram, err = meter.Float64Histogram(
		"llm_completion_duration",
		metric.WithDescription("Time spent on a chat completion call including retries"),
		metric.WithUnit(timeUnit),
	)
	errs = append(errs, err)

	o.toolCallCounter, err = meter.Int64Counter(
		"mcp_tool_calls",
		metric.WithDescription("Number of MCP tool calls, by tool and outcome"),
	)
	errs = append(errs, err)

	o.toolCallHistogram, err = meter.Float64Histogram(
		"mcp_tool_call_duration",
		metric.WithDescription("Time spent on a single MCP tool call"),
		metric.WithUnit(timeUnit),
	)
	errs = append(errs, err)

	return errors.Join(errs...)
}

// Handler serves the collected metrics in the prometheus exposition format
func (o *OpenTelemetryImpl) Handler() http.Handler {
	if o.registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

func (o *OpenTelemetryImpl) Shutdown(ctx context.Context) error {
	if o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}

func (o *OpenTelemetryImpl) RecordCompletion(ctx context.Context, model string, stage string, duration time.Duration, err error) {
	if o.completionCounter == nil || o.completionHistogram == nil {
		return // Not initialized
	}

	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	attrs := []attribute.KeyValue{
		attribute.String("model", model),
		attribute.String("stage", stage),
		attribute.String("outcome", outcome),
	}

	o.completionCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	o.completionHistogram.Record(ctx, milliseconds(duration), metric.WithAttributes(attrs...))
}

func (o *OpenTelemetryImpl) RecordToolCall(ctx context.Context, tool string, succeeded bool, duration time.Duration) {
	if o.toolCallCounter == nil || o.toolCallHistogram == nil {
		return // Not initialized
	}

	outcome := OutcomeSuccess
	if !succeeded {
		outcome = OutcomeFailure
	}
	attrs := []attribute.KeyValue{
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	}

	o.toolCallCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	o.toolCallHistogram.Record(ctx, milliseconds(duration), metric.WithAttributes(attrs...))
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
