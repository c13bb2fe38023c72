// Package observability configures OpenTelemetry tracing for the CLI. The
// HTTP client's otelhttp transport and the REPL's per-command spans report
// to the provider installed here.
package observability

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	ModeOff    = "off"
	ModeStdout = "stdout"
	ModeOTLP   = "otlp"
)

// ServiceName is reported as service.name on every span.
const ServiceName = "datav-cli"

// ShutdownFunc flushes pending spans.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs a global tracer provider for mode. ModeStdout writes spans
// to w (os.Stderr when nil), ModeOTLP exports over HTTP to the endpoint in
// OTEL_EXPORTER_OTLP_ENDPOINT, and ModeOff or "" leaves the no-op provider
// in place.
func Init(ctx context.Context, mode string, version string, w io.Writer) (ShutdownFunc, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" || mode == ModeOff {
		return noopShutdown, nil
	}

	exporter, err := newSpanExporter(ctx, mode, w)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", ServiceName),
			attribute.String("service.version", version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func newSpanExporter(ctx context.Context, mode string, w io.Writer) (sdktrace.SpanExporter, error) {
	switch mode {
	case ModeStdout:
		if w == nil {
			w = os.Stderr
		}
		return stdouttrace.New(stdouttrace.WithWriter(w))
	case ModeOTLP:
		var opts []otlptracehttp.Option
		if endpoint := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")); endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
		}
		exp, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("otlp trace exporter: %w", err)
		}
		return exp, nil
	}
	return nil, fmt.Errorf("unknown tracing mode %q", mode)
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
