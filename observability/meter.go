package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kyavuz/uakit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry instruments for user-agent selection.
type Metrics struct {
	selectionTotal    metric.Int64Counter
	selectionDuration metric.Float64Histogram
	fallbackTotal     metric.Int64Counter
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	selectionTotal, err := meter.Int64Counter("ua.selection.total",
		metric.WithDescription("Total number of user-agent selections"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ua.selection.total counter: %w", err)
	}

	selectionDuration, err := meter.Float64Histogram("ua.selection.duration",
		metric.WithDescription("Duration of user-agent selections in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ua.selection.duration histogram: %w", err)
	}

	fallbackTotal, err := meter.Int64Counter("ua.fallback.total",
		metric.WithDescription("Total fallbacks taken during selection"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ua.fallback.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("ua.error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ua.error.total counter: %w", err)
	}

	return &Metrics{
		selectionTotal:    selectionTotal,
		selectionDuration: selectionDuration,
		fallbackTotal:     fallbackTotal,
		errorTotal:        errorTotal,
	}, nil
}

// RecordSelection records one user-agent selection by a provider.
func (m *Metrics) RecordSelection(ctx context.Context, provider string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("provider", provider))
	m.selectionTotal.Add(ctx, 1, attrs)
	m.selectionDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordFallback records a fallback taken during selection.
func (m *Metrics) RecordFallback(ctx context.Context, provider, reason string) {
	m.fallbackTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("reason", reason),
	))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
