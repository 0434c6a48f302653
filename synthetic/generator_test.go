package synthetic

import (
	"strings"
	"testing"

	"github.com/kyavuz/uakit/errors"
)

func TestGenerateKnownMethods(t *testing.T) {
	for _, name := range Methods() {
		t.Run(name, func(t *testing.T) {
			ua, err := Generate(name)
			if err != nil {
				t.Fatalf("Generate(%q) failed: %v", name, err)
			}
			if ua == "" {
				t.Errorf("Generate(%q) returned empty string", name)
			}
		})
	}
}

func TestGenerateCaseInsensitive(t *testing.T) {
	ua, err := Generate("CHROME")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if ua == "" {
		t.Error("expected non-empty UA")
	}
}

func TestGenerateUnknownMethod(t *testing.T) {
	_, err := Generate("quantum_browser")
	if !errors.IsCode(err, errors.ErrCodeUnknownMethod) {
		t.Errorf("expected UNKNOWN_METHOD, got %v", err)
	}
}

func TestDefaultAlwaysPresent(t *testing.T) {
	if !Supports(DefaultMethod) {
		t.Fatalf("default method %q missing from method set", DefaultMethod)
	}
	if ua := Default(); ua == "" {
		t.Error("expected non-empty default UA")
	}
}

func TestMethodsSorted(t *testing.T) {
	names := Methods()
	for i := 1; i < len(names); i++ {
		if strings.Compare(names[i-1], names[i]) >= 0 {
			t.Errorf("expected sorted method names, got %v", names)
		}
	}
}
