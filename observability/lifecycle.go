package observability

import (
	"context"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/nodejs-spain/atlas.js/component"
	"github.com/nodejs-spain/atlas.js/logger"
	"github.com/nodejs-spain/atlas.js/version"
)

const lifecycleMeterName = "atlas.lifecycle"

// NewLifecycleHook returns a hook definition that observes the application
// and records its lifecycle as metrics and log lines. With tracing or
// metrics enabled in its config section it also installs the global OTLP
// providers and shuts them down when the application stops.
//
//	app.Hook("telemetry", observability.NewLifecycleHook())
func NewLifecycleHook() component.Definition {
	return component.Definition{
		New:      newLifecycleHook,
		Observes: component.ObserveApp,
		Defaults: map[string]any{
			"service_name": "atlas",
			"environment":  "development",
			"endpoint":     "localhost:4318",
			"insecure":     true,
			"sample_rate":  1.0,
			"interval":     15,
			"tracing":      false,
			"metrics":      false,
		},
	}
}

type lifecycleHook struct {
	log     *logger.Logger
	metrics *LifecycleMetrics

	tp *sdktrace.TracerProvider
	mp *sdkmetric.MeterProvider

	startingAt time.Time
	stoppingAt time.Time
}

func newLifecycleHook(cfg map[string]any, deps component.Deps) (any, error) {
	h := &lifecycleHook{log: deps.Logger}

	serviceName := stringValue(cfg, "service_name", "atlas")
	env := stringValue(cfg, "environment", "development")
	endpoint := stringValue(cfg, "endpoint", "localhost:4318")
	insecure := boolValue(cfg, "insecure", true)

	ctx := context.Background()
	if boolValue(cfg, "tracing", false) {
		tc := DefaultTracerConfig(serviceName)
		tc.ServiceVersion = version.Get().Version
		tc.Environment = env
		tc.Endpoint = endpoint
		tc.Insecure = insecure
		tc.SampleRate = floatValue(cfg, "sample_rate", 1.0)

		tp, err := InitTracer(ctx, tc)
		if err != nil {
			return nil, err
		}
		h.tp = tp
	}
	if boolValue(cfg, "metrics", false) {
		mc := DefaultMeterConfig(serviceName)
		mc.ServiceVersion = version.Get().Version
		mc.Environment = env
		mc.Endpoint = endpoint
		mc.Insecure = insecure
		mc.Interval = time.Duration(intValue(cfg, "interval", 15)) * time.Second

		mp, err := InitMeter(ctx, mc)
		if err != nil {
			return nil, err
		}
		h.mp = mp
	}

	metrics, err := NewLifecycleMetrics(Meter(lifecycleMeterName))
	if err != nil {
		return nil, err
	}
	h.metrics = metrics
	return h, nil
}

// OnAppEvent records each lifecycle event and the durations of the start
// and stop phases.
func (h *lifecycleHook) OnAppEvent(ctx context.Context, event component.Event) error {
	h.metrics.RecordEvent(ctx, string(event))
	SpanFromContext(ctx).AddEvent(string(event))
	h.log.Debug("lifecycle event", logger.Fields(logger.FieldEvent, string(event)))

	switch event {
	case component.EventBeforeStart:
		h.startingAt = time.Now()
	case component.EventAfterStart:
		if !h.startingAt.IsZero() {
			h.metrics.RecordPhase(ctx, "start", time.Since(h.startingAt))
		}
	case component.EventBeforeStop:
		h.stoppingAt = time.Now()
	case component.EventAfterStop:
		if !h.stoppingAt.IsZero() {
			h.metrics.RecordPhase(ctx, "stop", time.Since(h.stoppingAt))
		}
	}
	return nil
}

// Stop flushes and shuts down the telemetry providers installed by this
// hook.
func (h *lifecycleHook) Stop(ctx context.Context) error {
	var firstErr error
	if h.mp != nil {
		if err := h.mp.Shutdown(ctx); err != nil {
			firstErr = err
		}
		h.mp = nil
	}
	if h.tp != nil {
		if err := h.tp.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		h.tp = nil
	}
	return firstErr
}

func stringValue(cfg map[string]any, key, fallback string) string {
	if v, ok := cfg[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolValue(cfg map[string]any, key string, fallback bool) bool {
	if v, ok := cfg[key].(bool); ok {
		return v
	}
	return fallback
}

func floatValue(cfg map[string]any, key string, fallback float64) float64 {
	switch v := cfg[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

func intValue(cfg map[string]any, key string, fallback int) int {
	switch v := cfg[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}
