// Package uakit assembles the provider registry, selection policy, and
// settings into a ready-to-use user-agent source.
//
// The minimal setup reads the provider list from settings and returns a
// Manager that picks the first healthy provider in configured order,
// with the fixed provider as the always-available last resort:
//
//	settings := config.NewSettings(map[string]any{
//		"UA_PROVIDERS": []string{"catalog", "synthetic"},
//		"USER_AGENT":   "my-crawler/1.0",
//	})
//	manager, err := uakit.Setup(settings)
//	client := transport.Client(manager)
package uakit

import (
	"net/http"

	"github.com/kyavuz/uakit/config"
	"github.com/kyavuz/uakit/logger"
	"github.com/kyavuz/uakit/provider"
	"github.com/kyavuz/uakit/transport"
	"github.com/kyavuz/uakit/validation"
	"github.com/kyavuz/uakit/version"
)

// SettingProviders names the ordered provider list setting.
const SettingProviders = "UA_PROVIDERS"

// DefaultProviders is the provider order used when UA_PROVIDERS is
// absent: the catalog dataset first, synthetic generation next, the
// fixed string as the last resort.
var DefaultProviders = []string{"catalog", "synthetic", "fixed"}

// Setup builds a Manager from settings: built-in factories registered,
// every listed provider initialized, priority selection in list order.
// A provider whose construction fails is logged and skipped rather than
// failing the whole setup; the fixed provider is always appended so at
// least one provider survives. Setup fails only when the provider list
// itself is invalid.
func Setup(settings *config.Settings, extra ...map[string]provider.Factory) (*provider.Manager, error) {
	log := logger.Get(logger.ComponentUAKit)

	registry := provider.NewRegistry()
	provider.RegisterBuiltins(registry)
	for _, factories := range extra {
		for name, factory := range factories {
			registry.RegisterFactory(name, factory)
		}
	}

	names := settings.GetStringSlice(SettingProviders, DefaultProviders)
	names = ensureLastResort(names)

	if err := validateNames(names, registry.List()); err != nil {
		return nil, err
	}

	manager := provider.NewManager(registry, &provider.PrioritySelector{Priority: names})
	for _, name := range names {
		if err := manager.Initialize(name, settings); err != nil {
			log.Warn("provider skipped", logger.ErrorFields("initialize", err))
		}
	}
	return manager, nil
}

// Client returns an *http.Client whose requests carry user agents from
// a Manager built with Setup.
func Client(settings *config.Settings, opts ...transport.Option) (*http.Client, error) {
	manager, err := Setup(settings)
	if err != nil {
		return nil, err
	}
	return transport.Client(manager, opts...), nil
}

// DefaultSettings returns the settings used when the caller supplies
// none: the library's own version token as the fixed agent.
func DefaultSettings() *config.Settings {
	return config.NewSettings(map[string]any{
		provider.SettingUserAgent: version.UserAgent(),
	})
}

// ensureLastResort appends "fixed" when absent so selection always has
// a provider that cannot fail to construct.
func ensureLastResort(names []string) []string {
	for _, n := range names {
		if n == "fixed" {
			return names
		}
	}
	out := make([]string, len(names), len(names)+1)
	copy(out, names)
	return append(out, "fixed")
}

// providerList is the shape of the UA_PROVIDERS setting, validated by
// tag before the names are checked against the registry.
type providerList struct {
	Providers []string `json:"providers" validate:"required,min=1,dive,required"`
}

func validateNames(names, registered []string) error {
	if err := validation.Validate(providerList{Providers: names}); err != nil {
		return err
	}
	v := validation.New()
	for _, name := range names {
		v.OneOf("providers", name, registered)
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
