// Package telemetry initializes OpenTelemetry tracing and metrics for
// dddcheck, exporting to stdout during development or OTLP/HTTP in production.
//
//	tp, err := telemetry.InitTracer(ctx, "dddcheck", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
//	mp, err := telemetry.InitMeter(ctx, "dddcheck", telemetry.ExporterStdout, "")
//	defer mp.Shutdown(ctx)
//
//	metrics, err := telemetry.NewMetrics(mp)
//	metrics.BuildTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrEntity.String("Project")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Scope is the instrumentation scope of the checker's own instruments.
const Scope = "github.com/jsamuelsen11/go-ddd-kit"

// Metric attribute keys.
var (
	AttrEntity = attribute.Key("ddd.entity")
	AttrResult = attribute.Key("ddd.result")
	AttrCode   = attribute.Key("ddd.code")
)

// Result values for AttrResult.
const (
	ResultCreated  = "created"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics holds the pre-registered instruments.
type Metrics struct {
	// BuildTotal counts builder runs by entity and result.
	BuildTotal metric.Int64Counter
	// ValidationErrors counts reported failures by entity and base code.
	ValidationErrors metric.Int64Counter
	// EventsDispatched counts domain events delivered to handlers.
	EventsDispatched metric.Int64Counter
	// CheckDuration records the wall time of a whole check run.
	CheckDuration metric.Float64Histogram
}

// ErrUnsupportedExporter is returned for exporter names other than
// ExporterStdout and ExporterOTLP.
var ErrUnsupportedExporter = errors.New("unsupported exporter")

// InitTracer creates a TracerProvider exporting through exporter and
// registers it, with W3C trace-context and baggage propagation, as the global
// provider. The caller shuts it down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates a MeterProvider exporting periodically through exporter
// and registers it as the global provider. The caller shuts it down.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(Scope)

	buildTotal, err := meter.Int64Counter(
		"ddd.build.total",
		metric.WithDescription("Builder runs by entity and result"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ddd.build.total: %w", err)
	}

	validationErrors, err := meter.Int64Counter(
		"ddd.validation.errors",
		metric.WithDescription("Validation failures reported by builders"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ddd.validation.errors: %w", err)
	}

	eventsDispatched, err := meter.Int64Counter(
		"ddd.events.dispatched",
		metric.WithDescription("Domain events delivered to handlers"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ddd.events.dispatched: %w", err)
	}

	checkDuration, err := meter.Float64Histogram(
		"ddd.check.duration",
		metric.WithDescription("Duration of a check run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ddd.check.duration: %w", err)
	}

	return &Metrics{
		BuildTotal:       buildTotal,
		ValidationErrors: validationErrors,
		EventsDispatched: eventsDispatched,
		CheckDuration:    checkDuration,
	}, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
