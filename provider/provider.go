package provider

import "github.com/kyavuz/uakit/config"

// Provider is the capability contract every user-agent source implements.
type Provider interface {
	// Name returns the provider's unique name.
	Name() string
	// RandomUA returns one user-agent string. It never fails: resolution
	// problems are handled internally with a defined fallback.
	RandomUA() string
}

// Factory creates a provider instance from a settings mapping. It must
// fail immediately when the configuration is structurally invalid
// rather than deferring the failure to first use.
type Factory func(settings *config.Settings) (Provider, error)
