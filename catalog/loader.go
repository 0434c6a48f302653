package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kyavuz/uakit/logger"
	"github.com/kyavuz/uakit/resilience"
)

// DefaultFetchTimeout bounds a remote snapshot fetch.
const DefaultFetchTimeout = 10 * time.Second

// maxSnapshotBytes caps how much of a remote snapshot is read.
const maxSnapshotBytes = 4 << 20

// Load fetches a dataset snapshot from url and parses it. Transient
// fetch failures are retried with backoff; once attempts run out the
// failure is logged at warn level and the embedded snapshot is returned
// instead, so Load never leaves the caller without a dataset.
func Load(ctx context.Context, url string, opts ...Option) (*Dataset, error) {
	log := logger.Get(logger.ComponentCatalog)

	retryCfg := resilience.DefaultRetryConfig()
	retryCfg.OnRetry = func(attempt int, err error, backoff time.Duration) {
		log.Debug("dataset fetch retry", logger.Fields(
			"url", url, "attempt", attempt, logger.FieldError, err.Error()))
	}

	ds, err := resilience.Retry(ctx, retryCfg, func() (*Dataset, error) {
		return fetch(ctx, url, opts...)
	})
	if err != nil {
		log.Warn("falling back to embedded dataset",
			logger.Fields("url", url, logger.FieldError, err.Error()))
		return New(opts...)
	}
	log.Info("remote dataset loaded", logger.Fields("url", url, "entries", ds.Size()))
	return ds, nil
}

func fetch(ctx context.Context, url string, opts ...Option) (*Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(body, opts...)
}
