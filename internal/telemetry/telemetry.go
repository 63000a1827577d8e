// Package telemetry configures OpenTelemetry tracing for tilemap.
//
// Spans are exported over OTLP/HTTP; the endpoint and headers come from the
// standard OTEL_EXPORTER_OTLP_* variables.
package telemetry

import (
	"context"
	"runtime"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// scopePrefix is prepended to component names to form instrumentation scopes.
const scopePrefix = "github.com/samdwyer/tilemap/internal/"

// Components that open spans.
const (
	// ComponentApp traces map bootstrap (span "map.init").
	ComponentApp = "app"
)

// Service identifies the process in exported resources.
type Service struct {
	Name    string
	Version string // Empty means the main module version from build info
}

// Setup registers a global batching tracer provider for svc and returns its
// shutdown function, which flushes pending spans.
func Setup(ctx context.Context, svc Service) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithAttributes(
			attribute.String("service.name", svc.Name),
			attribute.String("service.version", svc.version()),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the global provider's tracer for a component.
func Tracer(component string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(ScopeName(component))
}

// NoopTracer returns a tracer for a component that records nothing.
func NoopTracer(component string) trace.Tracer {
	return noop.NewTracerProvider().Tracer(ScopeName(component))
}

// ScopeName returns the instrumentation scope used for a component.
func ScopeName(component string) string {
	return scopePrefix + component
}

func (s Service) version() string {
	if s.Version != "" {
		return s.Version
	}
	return buildVersion(debug.ReadBuildInfo())
}

// buildVersion extracts the main module version, falling back to "devel".
func buildVersion(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}
	return info.Main.Version
}
