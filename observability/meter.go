package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the application.
	ServiceName string
	// ServiceVersion is the version of the application.
	ServiceVersion string
	// Environment is the deployment environment.
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The returned provider should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// LifecycleMetrics holds the metric instruments recorded across the
// orchestrator's lifecycle.
type LifecycleMetrics struct {
	eventTotal    metric.Int64Counter
	phaseDuration metric.Float64Histogram
	errorTotal    metric.Int64Counter
}

// NewLifecycleMetrics creates the lifecycle instruments on the given meter.
func NewLifecycleMetrics(meter metric.Meter) (*LifecycleMetrics, error) {
	eventTotal, err := meter.Int64Counter("lifecycle.event.total",
		metric.WithDescription("Total lifecycle events dispatched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lifecycle.event.total counter: %w", err)
	}

	phaseDuration, err := meter.Float64Histogram("lifecycle.phase.duration",
		metric.WithDescription("Duration of lifecycle phases in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lifecycle.phase.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("lifecycle.error.total",
		metric.WithDescription("Total lifecycle errors by phase"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lifecycle.error.total counter: %w", err)
	}

	return &LifecycleMetrics{
		eventTotal:    eventTotal,
		phaseDuration: phaseDuration,
		errorTotal:    errorTotal,
	}, nil
}

// RecordEvent counts one lifecycle event.
func (m *LifecycleMetrics) RecordEvent(ctx context.Context, event string) {
	m.eventTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrEvent, event),
	))
}

// RecordPhase records the duration of one completed phase.
func (m *LifecycleMetrics) RecordPhase(ctx context.Context, phase string, duration time.Duration) {
	m.phaseDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrPhase, phase),
	))
}

// RecordError counts one lifecycle error.
func (m *LifecycleMetrics) RecordError(ctx context.Context, phase string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPhase, phase),
	))
}
