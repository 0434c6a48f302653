package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kyavuz/uakit/errors"
)

func TestNewEmbedded(t *testing.T) {
	ds, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ds.Size() == 0 {
		t.Fatal("expected embedded dataset to have entries")
	}
	for _, name := range []string{"chrome", "firefox", "safari", "edge", "opera", "mobile"} {
		if !ds.Has(name) {
			t.Errorf("expected category %q in embedded dataset", name)
		}
	}
}

func TestPickKnownCategory(t *testing.T) {
	ds, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		ua, err := ds.Pick("chrome")
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		if ua == "" {
			t.Fatal("expected non-empty UA")
		}
	}
}

func TestPickRandomVirtualCategory(t *testing.T) {
	ds, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !ds.Has(CategoryRandom) {
		t.Error("expected virtual random category")
	}
	if ua := ds.Random(); ua == "" {
		t.Error("expected non-empty random UA")
	}
}

func TestPickUnknownCategory(t *testing.T) {
	ds, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = ds.Pick("netscape")
	if !errors.IsCode(err, errors.ErrCodeUnknownCategory) {
		t.Errorf("expected UNKNOWN_CATEGORY, got %v", err)
	}
}

func TestEmptyCategoryFallback(t *testing.T) {
	data := []byte(`{"browsers": {"chrome": []}}`)

	ds, err := Parse(data, WithFallback("Mozilla/5.0 (fallback)"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ua, err := ds.Pick("chrome")
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if ua != "Mozilla/5.0 (fallback)" {
		t.Errorf("expected fallback UA, got %q", ua)
	}

	ds, err = Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := ds.Pick("chrome"); !errors.IsCode(err, errors.ErrCodeEmptyPool) {
		t.Errorf("expected EMPTY_POOL without fallback, got %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"no categories", `{"browsers": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"browsers": {"chrome": ["RemoteUA/1.0"]}}`))
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ua, err := ds.Pick("chrome")
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if ua != "RemoteUA/1.0" {
		t.Errorf("expected remote UA, got %q", ua)
	}
}

func TestLoadRemoteFailureFallsBackToEmbedded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ds, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ds.Has("chrome") {
		t.Error("expected embedded dataset after remote failure")
	}
}
