// Package trace records tab selection transitions as OpenTelemetry spans.
// Export is off unless an OTLP endpoint is configured.
package trace

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tabview/internal/config"
	"tabview/internal/tabs"
)

const tracerName = "tabview/tabs"

// Recorder turns tab transitions into spans. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	ctx      context.Context
}

// NewRecorder creates a recorder exporting over OTLP/HTTP to cfg.Endpoint.
// Returns nil if no endpoint is configured (disabled).
func NewRecorder(ctx context.Context, cfg config.TraceConfig) (*Recorder, error) {
	if cfg.Endpoint == "" {
		return nil, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if strings.Contains(cfg.Endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "tabview"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewRecorderWithProvider(ctx, provider), nil
}

// NewRecorderWithProvider records spans through an existing provider.
func NewRecorderWithProvider(ctx context.Context, provider *sdktrace.TracerProvider) *Recorder {
	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
		ctx:      ctx,
	}
}

// Observe records one transition. It matches the tabs.State observer signature.
func (r *Recorder) Observe(t tabs.Transition) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(r.ctx, "tabs."+t.Kind.String())
	span.SetAttributes(
		attribute.String("tabview.main.from", t.From.Main),
		attribute.String("tabview.main.to", t.To.Main),
		attribute.String("tabview.sub.from", t.From.Sub),
		attribute.String("tabview.sub.to", t.To.Sub),
		attribute.Bool("tabview.main.changed", t.From.Main != t.To.Main),
	)
	span.End()
}

// Shutdown flushes and closes the provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
