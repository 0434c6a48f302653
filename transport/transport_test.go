package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fixedSource struct {
	ua string
}

func (s *fixedSource) RandomUA() string { return s.ua }

func newEchoServer(t *testing.T, captured *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTransportSetsUserAgent(t *testing.T) {
	var captured http.Header
	srv := newEchoServer(t, &captured)

	client := Client(&fixedSource{ua: "uakit-test-agent"})
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if got := captured.Get(HeaderUserAgent); got != "uakit-test-agent" {
		t.Errorf("User-Agent = %q, want uakit-test-agent", got)
	}
	if captured.Get(HeaderRequestID) == "" {
		t.Error("X-Request-Id header missing")
	}
}

func TestTransportRespectsExistingHeader(t *testing.T) {
	var captured http.Header
	srv := newEchoServer(t, &captured)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set(HeaderUserAgent, "caller-agent")

	resp, err := Client(&fixedSource{ua: "source-agent"}).Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	if got := captured.Get(HeaderUserAgent); got != "caller-agent" {
		t.Errorf("User-Agent = %q, want caller-agent to win", got)
	}
}

func TestTransportOverwrite(t *testing.T) {
	var captured http.Header
	srv := newEchoServer(t, &captured)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set(HeaderUserAgent, "caller-agent")

	resp, err := Client(&fixedSource{ua: "source-agent"}, WithOverwrite()).Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	if got := captured.Get(HeaderUserAgent); got != "source-agent" {
		t.Errorf("User-Agent = %q, want source-agent after overwrite", got)
	}
}

func TestTransportDoesNotMutateCaller(t *testing.T) {
	var captured http.Header
	srv := newEchoServer(t, &captured)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	resp, err := Client(&fixedSource{ua: "source-agent"}).Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	if got := req.Header.Get(HeaderUserAgent); got != "" {
		t.Errorf("caller request mutated, User-Agent = %q", got)
	}
	if got := req.Header.Get(HeaderRequestID); got != "" {
		t.Errorf("caller request mutated, X-Request-Id = %q", got)
	}
}

func TestTransportRateLimit(t *testing.T) {
	var captured http.Header
	srv := newEchoServer(t, &captured)

	// Burst of 1 at a slow refill so the second request must wait.
	client := Client(&fixedSource{ua: "limited"}, WithRateLimit(20, 1))

	start := time.Now()
	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		resp.Body.Close()
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("two requests finished in %v, want the second throttled", elapsed)
	}
}

func TestTransportPreservesRequestID(t *testing.T) {
	var captured http.Header
	srv := newEchoServer(t, &captured)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set(HeaderRequestID, "fixed-id")

	resp, err := Client(&fixedSource{ua: "source-agent"}).Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	resp.Body.Close()

	if got := captured.Get(HeaderRequestID); got != "fixed-id" {
		t.Errorf("X-Request-Id = %q, want fixed-id preserved", got)
	}
}
