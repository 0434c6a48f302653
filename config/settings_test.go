package config

import (
	"testing"
)

func TestSettingsGetString(t *testing.T) {
	s := NewSettings(map[string]any{
		"USER_AGENT": "MyBot/1.0",
		"retries":    3,
	})

	tests := []struct {
		name string
		key  string
		def  string
		want string
	}{
		{"present", "USER_AGENT", "", "MyBot/1.0"},
		{"case insensitive", "user_agent", "", "MyBot/1.0"},
		{"absent uses default", "FAKER_RANDOM_UA_TYPE", "user_agent", "user_agent"},
		{"coerced from int", "retries", "", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetString(tt.key, tt.def); got != tt.want {
				t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSettingsGetStringMap(t *testing.T) {
	s := NewSettings(map[string]any{
		"RANDOMUSERAGENT_RANDOM_UA_TYPE": map[string]string{
			"hardware_types": "computer",
		},
	})

	m := s.GetStringMap("RANDOMUSERAGENT_RANDOM_UA_TYPE")
	if m["hardware_types"] != "computer" {
		t.Errorf("expected hardware_types=computer, got %v", m)
	}

	if m := s.GetStringMap("missing"); len(m) != 0 {
		t.Errorf("expected empty map for missing key, got %v", m)
	}
}

func TestSettingsImmutable(t *testing.T) {
	src := map[string]any{"USER_AGENT": "a"}
	s := NewSettings(src)
	src["USER_AGENT"] = "b"

	if got := s.GetString("USER_AGENT", ""); got != "a" {
		t.Errorf("expected settings to be unaffected by source mutation, got %q", got)
	}
}

func TestSettingsHasAndGet(t *testing.T) {
	s := NewSettings(map[string]any{"FAKEUSERAGENT_FALLBACK": "Mozilla/5.0"})

	if !s.Has("fakeuseragent_fallback") {
		t.Error("expected Has to be case-insensitive")
	}
	if s.Has("absent") {
		t.Error("did not expect absent key")
	}
	if got := s.Get("absent", 42); got != 42 {
		t.Errorf("expected default 42, got %v", got)
	}
}

func TestSettingsGetStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"list value", []string{"catalog", "fixed"}, []string{"catalog", "fixed"}},
		{"any list", []any{"catalog", "fixed"}, []string{"catalog", "fixed"}},
		{"comma separated string", "catalog, fixed ,synthetic", []string{"catalog", "fixed", "synthetic"}},
		{"single string", "catalog", []string{"catalog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings(map[string]any{"UA_PROVIDERS": tt.value})
			got := s.GetStringSlice("UA_PROVIDERS", nil)
			if len(got) != len(tt.want) {
				t.Fatalf("GetStringSlice() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("GetStringSlice() = %v, want %v", got, tt.want)
				}
			}
		})
	}

	s := NewSettings(nil)
	if got := s.GetStringSlice("UA_PROVIDERS", []string{"catalog"}); len(got) != 1 || got[0] != "catalog" {
		t.Errorf("GetStringSlice() default = %v, want [catalog]", got)
	}
}

type fakeFS struct {
	files map[string]string
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeFS) LoadEnv(path string) error { return nil }

func TestLoadWithoutFiles(t *testing.T) {
	s, err := Load("uakit", WithFileSystem(&fakeFS{files: map[string]string{}}))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := s.GetString("USER_AGENT", "fallback"); got != "fallback" {
		t.Errorf("expected default from empty settings, got %q", got)
	}
}
