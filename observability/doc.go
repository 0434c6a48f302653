// Package observability provides OpenTelemetry metrics and tracing for
// uakit.
//
// InitMeter and InitTracer set up OTLP HTTP exporters; Metrics holds
// the instruments recording user-agent selections, fallbacks, and
// errors. Both initializers are optional — without them the otel
// no-op globals make every recording call free.
package observability
