package provider

import (
	"time"

	"github.com/kyavuz/uakit/logger"
)

// WithLogging returns a Middleware that logs each RandomUA call.
// Logs: provider name, duration, and the chosen user agent.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Provider) Provider {
		return &loggingProvider{inner: inner, log: log}
	}
}

type loggingProvider struct {
	inner Provider
	log   *logger.Logger
}

func (l *loggingProvider) Name() string { return l.inner.Name() }

func (l *loggingProvider) RandomUA() string {
	start := time.Now()
	ua := l.inner.RandomUA()
	l.log.Debug("user agent selected", logger.Fields(
		logger.FieldProvider, l.inner.Name(),
		"ua", ua,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return ua
}
