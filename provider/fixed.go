package provider

import "github.com/kyavuz/uakit/config"

// SettingUserAgent configures the fixed user-agent string.
const SettingUserAgent = "USER_AGENT"

// FixedProvider returns a single configured user-agent string.
type FixedProvider struct {
	ua string
}

// NewFixedProvider builds a FixedProvider from settings. An absent
// USER_AGENT setting yields the empty string.
func NewFixedProvider(settings *config.Settings) (*FixedProvider, error) {
	return &FixedProvider{
		ua: settings.GetString(SettingUserAgent, ""),
	}, nil
}

// Name returns the provider name.
func (p *FixedProvider) Name() string { return "fixed" }

// RandomUA always returns the configured string. Deterministic, no
// failure mode.
func (p *FixedProvider) RandomUA() string { return p.ua }
