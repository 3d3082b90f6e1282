package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// TelemetryConfig holds configuration for tracing initialization.
type TelemetryConfig struct {
	Enabled        bool
	OTLPEndpoint   string
	ServiceName    string
	ServiceVersion string
	Environment    string
}

var (
	mu             sync.Mutex
	tracerProvider *sdktrace.TracerProvider
)

// InitTelemetry sets up the global OpenTelemetry tracer provider. In
// development traces go to stdout; otherwise they are exported over OTLP
// HTTP. When disabled, the global no-op provider stays in place.
func InitTelemetry(cfg TelemetryConfig) error {
	if !cfg.Enabled {
		return nil
	}

	ctx := context.Background()

	var exporter sdktrace.SpanExporter
	var err error
	if cfg.Environment == "development" {
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	} else {
		endpoint := cfg.OTLPEndpoint
		if endpoint == "" {
			endpoint = "localhost:4318"
		}
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	mu.Lock()
	tracerProvider = tp
	mu.Unlock()

	return nil
}

// Shutdown flushes and stops the tracer provider.
func Shutdown() error {
	mu.Lock()
	tp := tracerProvider
	tracerProvider = nil
	mu.Unlock()

	if tp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return tp.Shutdown(ctx)
}

// Tracer returns a named tracer from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// GetForecastTracer returns the tracer used around model dispatch.
func GetForecastTracer() trace.Tracer {
	return Tracer("kairos.forecast")
}

// GetHTTPTracer returns the tracer used by the HTTP middleware.
func GetHTTPTracer() trace.Tracer {
	return Tracer("kairos.http")
}
