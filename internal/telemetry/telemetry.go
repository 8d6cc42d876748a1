// Package telemetry provides OpenTelemetry tracing exported to Honeycomb.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "delvewood"
	serviceVersion = "0.2.0"

	// DefaultEndpoint is the Honeycomb OTLP ingest endpoint.
	DefaultEndpoint = "https://api.honeycomb.io"
)

// ErrDisabled is returned by Setup when no API key is configured. Tracing
// still works against the global no-op provider.
var ErrDisabled = errors.New("telemetry disabled: no API key")

// Config selects where spans are exported.
type Config struct {
	Endpoint string // OTLP/HTTP base URL, DefaultEndpoint when empty
	APIKey   string // Honeycomb team key
	Dataset  string // Honeycomb dataset, the service name when empty
	RunID    string // Attached to every span as run.id
}

// headers returns the Honeycomb authentication headers.
func (c Config) headers() map[string]string {
	dataset := c.Dataset
	if dataset == "" {
		dataset = serviceName
	}
	return map[string]string{
		"x-honeycomb-team":    c.APIKey,
		"x-honeycomb-dataset": dataset,
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter and registers
// it as the global tracer provider.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint+"/v1/traces"),
		otlptracehttp.WithHeaders(cfg.headers()),
	)
	if err != nil {
		return nil, err
	}

	// Built without merging resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
			attribute.String("run.id", cfg.RunID),
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

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Seed returns the world seed as a span attribute. It is recorded as a
// decimal string so seeds above MaxInt64 keep their value.
func Seed(seed uint64) attribute.KeyValue {
	return attribute.String("world.seed", strconv.FormatUint(seed, 10))
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
