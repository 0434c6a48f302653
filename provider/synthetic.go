package provider

import (
	"github.com/kyavuz/uakit/config"
	"github.com/kyavuz/uakit/logger"
	"github.com/kyavuz/uakit/synthetic"
)

// SettingSyntheticUAType names the synthetic generation method to invoke.
const SettingSyntheticUAType = "FAKER_RANDOM_UA_TYPE"

// SyntheticProvider generates user agents with the synthetic backend.
// An unsupported method name is tolerated: each call retries with the
// default method, which is always present.
type SyntheticProvider struct {
	uaType string
	log    *logger.Logger
}

// NewSyntheticProvider builds a SyntheticProvider from settings.
func NewSyntheticProvider(settings *config.Settings) (*SyntheticProvider, error) {
	return &SyntheticProvider{
		uaType: settings.GetString(SettingSyntheticUAType, synthetic.DefaultMethod),
		log:    logger.Get(logger.ComponentProvider),
	}, nil
}

// Name returns the provider name.
func (p *SyntheticProvider) Name() string { return "synthetic" }

// RandomUA invokes the configured generation method, falling back to
// the default method when the configured one is unsupported. This call
// never fails outward.
func (p *SyntheticProvider) RandomUA() string {
	ua, err := synthetic.Generate(p.uaType)
	if err != nil {
		p.log.Debug("unsupported generation method, using default",
			logger.Fields(logger.FieldUAType, p.uaType, logger.FieldFallback, synthetic.DefaultMethod))
		recordFallback(p.Name(), "unknown_method")
		return synthetic.Default()
	}
	return ua
}
