package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kyavuz/uakit/logger"
	"github.com/kyavuz/uakit/observability"
	"github.com/kyavuz/uakit/resilience"
)

// Header names set by the Transport.
const (
	HeaderUserAgent = "User-Agent"
	HeaderRequestID = "X-Request-Id"
)

// UASource supplies one user-agent string per call. provider.Provider
// and provider.Manager both satisfy it.
type UASource interface {
	RandomUA() string
}

// Transport is an http.RoundTripper that attaches a user agent from a
// UASource to each outbound request. The wrapped request is a clone;
// the caller's request is never mutated.
type Transport struct {
	source    UASource
	base      http.RoundTripper
	overwrite bool
	metrics   *observability.Metrics
	limiter   *resilience.RateLimiter
	log       *logger.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithBase sets the underlying RoundTripper. Defaults to
// http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(t *Transport) { t.base = base }
}

// WithOverwrite makes the Transport replace a User-Agent header the
// request already carries. By default an existing header wins.
func WithOverwrite() Option {
	return func(t *Transport) { t.overwrite = true }
}

// WithMetrics records a selection measurement per attached user agent.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(t *Transport) { t.metrics = metrics }
}

// WithRateLimit throttles outbound requests to rate per second with a
// burst allowance. RoundTrip blocks on the request context until a slot
// is free. Zero values pick the limiter defaults.
func WithRateLimit(rate float64, burst int) Option {
	return func(t *Transport) {
		t.limiter = resilience.NewRateLimiter(resilience.RateLimiterConfig{
			Name:  "transport",
			Rate:  rate,
			Burst: burst,
		})
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(log *logger.Logger) Option {
	return func(t *Transport) { t.log = log }
}

// New creates a Transport drawing user agents from source.
func New(source UASource, opts ...Option) *Transport {
	t := &Transport{
		source: source,
		base:   http.DefaultTransport,
		log:    logger.Get(logger.ComponentTransport),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	out := req.Clone(req.Context())
	if out.Header == nil {
		out.Header = make(http.Header)
	}

	requestID := out.Header.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
		out.Header.Set(HeaderRequestID, requestID)
	}

	if t.overwrite || out.Header.Get(HeaderUserAgent) == "" {
		ctx, span := observability.StartSpan(out.Context(), observability.SpanTransport)
		start := time.Now()
		ua := t.source.RandomUA()
		if t.metrics != nil {
			t.metrics.RecordSelection(ctx, sourceName(t.source), time.Since(start))
		}
		observability.SetSpanAttribute(ctx, observability.AttrRequestID, requestID)
		span.End()

		out.Header.Set(HeaderUserAgent, ua)
		t.log.Debug("user agent attached", logger.Fields(
			logger.FieldRequestID, requestID,
			"ua", ua,
			"url", out.URL.String(),
		))
	}

	return t.base.RoundTrip(out)
}

// Client returns an *http.Client using a Transport built from source.
func Client(source UASource, opts ...Option) *http.Client {
	return &http.Client{Transport: New(source, opts...)}
}

func sourceName(source UASource) string {
	if named, ok := source.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "manager"
}
