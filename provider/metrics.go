package provider

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/kyavuz/uakit/observability"
)

// activeMetrics is the module-wide instrument set used by provider
// fallback and error paths, which happen inside RandomUA where no
// decorator can observe them.
var activeMetrics atomic.Pointer[observability.Metrics]

// SetMetrics installs the instruments the providers record fallbacks
// and errors on. Pass nil to disable recording again.
func SetMetrics(m *observability.Metrics) {
	activeMetrics.Store(m)
}

func recordFallback(provider, reason string) {
	if m := activeMetrics.Load(); m != nil {
		m.RecordFallback(context.Background(), provider, reason)
	}
}

func recordError(errType, component string) {
	if m := activeMetrics.Load(); m != nil {
		m.RecordError(context.Background(), errType, component)
	}
}

// WithMetrics returns a Middleware that records each RandomUA call on
// the uakit observability instruments. RandomUA carries no context, so
// recordings use the background context; otel attaches them to the
// global meter provider either way.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return func(inner Provider) Provider {
		return &metricsProvider{inner: inner, metrics: metrics}
	}
}

type metricsProvider struct {
	inner   Provider
	metrics *observability.Metrics
}

func (m *metricsProvider) Name() string { return m.inner.Name() }

func (m *metricsProvider) RandomUA() string {
	start := time.Now()
	ua := m.inner.RandomUA()
	m.metrics.RecordSelection(context.Background(), m.inner.Name(), time.Since(start))
	return ua
}
