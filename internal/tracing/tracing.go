package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

var Tracer trace.Tracer

// InitTracing инициализирует OpenTelemetry трейсинг.
// При пустом endpoint спаны не экспортируются
func InitTracing(serviceName, otelEndpoint string) error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String("1.0.0"),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdktrace.SpanExporter

	if otelEndpoint != "" {
		// Используем OTLP HTTP экспортер
		exporter, err = otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(otelEndpoint),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		fmt.Printf("✅ OpenTelemetry настроен для OTLP экспорта: %s\n", otelEndpoint)
	} else {
		// Пустой экспортер для локальной разработки, в продакшене задайте OTEL_ENDPOINT
		fmt.Println("✅ OpenTelemetry настроен (используйте OTEL_ENDPOINT для экспорта)")
		exporter = &noopExporter{}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	Tracer = otel.Tracer(serviceName)

	fmt.Println("✅ OpenTelemetry инициализирован")
	return nil
}

// noopExporter - пустой экспортер для локальной разработки
type noopExporter struct{}

var _ sdktrace.SpanExporter = (*noopExporter)(nil)

func (e *noopExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (e *noopExporter) Shutdown(ctx context.Context) error {
	return nil
}
