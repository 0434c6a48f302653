package provider

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kyavuz/uakit/observability"
)

func installTestMetrics(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := observability.NewMetrics(mp.Meter("provider-test"))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	SetMetrics(m)
	t.Cleanup(func() { SetMetrics(nil) })
	return reader
}

func recordedMetrics(t *testing.T, reader *sdkmetric.ManualReader) map[string]bool {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	names := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	return names
}

func TestSyntheticFallbackRecorded(t *testing.T) {
	reader := installTestMetrics(t)

	p, err := NewSyntheticProvider(settingsWith(map[string]any{
		SettingSyntheticUAType: "not_a_real_method",
	}))
	if err != nil {
		t.Fatalf("NewSyntheticProvider() error = %v", err)
	}
	p.RandomUA()

	if names := recordedMetrics(t, reader); !names["ua.fallback.total"] {
		t.Error("expected ua.fallback.total after unsupported-method fallback")
	}
}

func TestFilteredEmptyPoolFallbackRecorded(t *testing.T) {
	reader := installTestMetrics(t)

	p, err := NewFilteredCatalogProvider(settingsWith(map[string]any{
		SettingFilteredUAType: map[string]string{
			"hardware_types":    "COMPUTER",
			"operating_systems": "ANDROID",
		},
	}))
	if err != nil {
		t.Fatalf("NewFilteredCatalogProvider() error = %v", err)
	}
	p.RandomUA()

	if names := recordedMetrics(t, reader); !names["ua.fallback.total"] {
		t.Error("expected ua.fallback.total after empty-pool fallback")
	}
}

func TestInvalidFilterErrorRecorded(t *testing.T) {
	reader := installTestMetrics(t)

	_, err := NewFilteredCatalogProvider(settingsWith(map[string]any{
		SettingFilteredUAType: map[string]string{
			"hardware_types": "TOASTER",
		},
	}))
	if err == nil {
		t.Fatal("NewFilteredCatalogProvider() succeeded, want error")
	}

	if names := recordedMetrics(t, reader); !names["ua.error.total"] {
		t.Error("expected ua.error.total after invalid filter")
	}
}

func TestFallbackWithoutMetricsInstalled(t *testing.T) {
	SetMetrics(nil)

	p, err := NewSyntheticProvider(settingsWith(map[string]any{
		SettingSyntheticUAType: "not_a_real_method",
	}))
	if err != nil {
		t.Fatalf("NewSyntheticProvider() error = %v", err)
	}
	if p.RandomUA() == "" {
		t.Error("RandomUA() returned empty string with metrics disabled")
	}
}
