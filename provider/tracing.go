package provider

import (
	"context"

	"github.com/kyavuz/uakit/observability"
)

// WithTracing returns a Middleware that opens a span around each
// RandomUA call. Selection has no inbound context, so spans start from
// the background context; callers that want request-scoped spans trace
// at the transport layer instead.
func WithTracing() Middleware {
	return func(inner Provider) Provider {
		return &tracingProvider{inner: inner}
	}
}

type tracingProvider struct {
	inner Provider
}

func (t *tracingProvider) Name() string { return t.inner.Name() }

func (t *tracingProvider) RandomUA() string {
	ctx, span := observability.StartSpan(context.Background(), observability.SpanSelection)
	defer span.End()

	ua := t.inner.RandomUA()
	observability.SetSpanAttribute(ctx, observability.AttrProviderName, t.inner.Name())
	return ua
}
