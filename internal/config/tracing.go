package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceName = "hikma-api"

// InitTracing installs a global SDK tracer provider selected by
// OTEL_TRACES_EXPORTER. "stdout" prints finished spans as JSON; an empty value
// or "none" leaves the global no-op provider in place.
func InitTracing(ctx context.Context) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch exporter := strings.ToLower(strings.TrimSpace(os.Getenv("OTEL_TRACES_EXPORTER"))); exporter {
	case "", "none":
		return noop, nil
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(os.Stdout))
		if err != nil {
			return noop, fmt.Errorf("failed to create stdout span exporter: %w", err)
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})

		Logger.WithField("exporter", exporter).Info("Tracing enabled")
		return tp.Shutdown, nil
	default:
		return noop, fmt.Errorf("unsupported OTEL_TRACES_EXPORTER %q", exporter)
	}
}
