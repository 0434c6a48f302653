package provider

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kyavuz/uakit/logger"
)

func TestChain(t *testing.T) {
	var order []string
	tag := func(label string) Middleware {
		return func(inner Provider) Provider {
			return &tagProvider{inner: inner, label: label, order: &order}
		}
	}

	base := &stubProvider{name: "base", ua: "base-ua"}
	wrapped := Chain(tag("a"), tag("b"), tag("c"))(base)

	if got := wrapped.RandomUA(); got != "base-ua" {
		t.Fatalf("RandomUA() = %q, want base-ua", got)
	}
	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("execution order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("execution order = %v, want %v", order, want)
		}
	}
	if wrapped.Name() != "base" {
		t.Errorf("Name() = %q, want base", wrapped.Name())
	}
}

type tagProvider struct {
	inner Provider
	label string
	order *[]string
}

func (p *tagProvider) Name() string { return p.inner.Name() }

func (p *tagProvider) RandomUA() string {
	*p.order = append(*p.order, p.label)
	return p.inner.RandomUA()
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWriter(&buf, "debug")

	base := &stubProvider{name: "stub", ua: "logged-ua"}
	wrapped := WithLogging(log)(base)

	if got := wrapped.RandomUA(); got != "logged-ua" {
		t.Fatalf("RandomUA() = %q, want logged-ua", got)
	}
	out := buf.String()
	if !strings.Contains(out, "user agent selected") {
		t.Errorf("log output missing selection message: %s", out)
	}
	if !strings.Contains(out, "logged-ua") {
		t.Errorf("log output missing chosen agent: %s", out)
	}
	if !strings.Contains(out, `"provider":"stub"`) {
		t.Errorf("log output missing provider field: %s", out)
	}
}
