package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uakit.yml")
	content := "user_agent: MyBot/2.0\nfaker_random_ua_type: chrome\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := Load("uakit", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := s.GetString("USER_AGENT", ""); got != "MyBot/2.0" {
		t.Errorf("expected USER_AGENT from file, got %q", got)
	}
	if got := s.GetString("FAKER_RANDOM_UA_TYPE", ""); got != "chrome" {
		t.Errorf("expected faker ua type from file, got %q", got)
	}
}

func TestLoadNestedFilterMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uakit.yml")
	content := "randomuseragent_random_ua_type:\n  hardware_types: computer\n  operating_systems: windows\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := Load("uakit", WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	m := s.GetStringMap("RANDOMUSERAGENT_RANDOM_UA_TYPE")
	if m["hardware_types"] != "computer" || m["operating_systems"] != "windows" {
		t.Errorf("unexpected filter mapping: %v", m)
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uakit.yml")
	if err := os.WriteFile(path, []byte(":\n\t- broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load("uakit", WithConfigFile(path)); err == nil {
		t.Error("expected error for malformed config file")
	}
}
