package otel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Brendin-DP/IMD-accelerator-sub000/core/config"
)

// Providers holds the engine's installed trace and log pipelines so the
// process can flush them on exit.
type Providers struct {
	traces *sdktrace.TracerProvider
	logs   *sdklog.LoggerProvider
}

// Shutdown flushes buffered spans and records. Both pipelines are always
// attempted.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.traces != nil {
		if err := p.traces.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing spans: %w", err))
		}
	}
	if p.logs != nil {
		if err := p.logs.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing log records: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Setup installs the global tracer provider, propagator and log provider for
// an engine process. Telemetry is optional: with no collector endpoint it
// installs nothing and returns nil, nil.
func Setup(ctx context.Context, cfg config.OTelConfig) (*Providers, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	res, err := engineResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("describing engine resource: %w", err)
	}
	headers := parseHeaders(cfg.Headers)

	traces, err := newTraces(ctx, cfg, headers, res)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(traces)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logs, err := newLogs(ctx, cfg, headers, res)
	if err != nil {
		_ = traces.Shutdown(ctx)
		return nil, err
	}
	global.SetLoggerProvider(logs)

	return &Providers{traces: traces, logs: logs}, nil
}

func engineResource(cfg config.OTelConfig) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
}

// newTraces samples root spans at cfg.SampleRatio; the server and worker
// keep whatever decision an upstream caller already made.
func newTraces(ctx context.Context, cfg config.OTelConfig, headers map[string]string, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(signalURL(cfg.Endpoint, "traces")),
		otlptracehttp.WithHeaders(headers),
	)
	if err != nil {
		return nil, fmt.Errorf("dialing span exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	), nil
}

func newLogs(ctx context.Context, cfg config.OTelConfig, headers map[string]string, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(signalURL(cfg.Endpoint, "logs")),
		otlploghttp.WithHeaders(headers),
	)
	if err != nil {
		return nil, fmt.Errorf("dialing log record exporter: %w", err)
	}
	return sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	), nil
}

// signalURL appends the OTLP/HTTP path for one signal to the collector base.
func signalURL(endpoint, signal string) string {
	return strings.TrimRight(endpoint, "/") + "/v1/" + signal
}

// parseHeaders turns "api-key=abc, tenant=imd" into exporter headers.
// Entries without '=' are dropped.
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			headers[name] = strings.TrimSpace(value)
		}
	}
	return headers
}
