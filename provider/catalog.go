package provider

import (
	"github.com/kyavuz/uakit/catalog"
	"github.com/kyavuz/uakit/config"
	"github.com/kyavuz/uakit/errors"
	"github.com/kyavuz/uakit/logger"
)

// Settings consumed by the CatalogProvider.
const (
	// SettingCatalogUAType names the catalog category to draw from.
	SettingCatalogUAType = "FAKEUSERAGENT_RANDOM_UA_TYPE"
	// SettingCatalogFallback sets the string the dataset returns when a
	// category has no entries.
	SettingCatalogFallback = "FAKEUSERAGENT_FALLBACK"
)

// CatalogProvider draws user agents from a named category of a
// real-world dataset. The category name is resolved at construction;
// an unknown name is a fatal configuration error, not a deferred crash.
type CatalogProvider struct {
	dataset *catalog.Dataset
	uaType  string
	log     *logger.Logger
}

// NewCatalogProvider builds a CatalogProvider from settings, backed by
// the embedded dataset.
func NewCatalogProvider(settings *config.Settings) (*CatalogProvider, error) {
	var opts []catalog.Option
	if fallback := settings.GetString(SettingCatalogFallback, ""); fallback != "" {
		opts = append(opts, catalog.WithFallback(fallback))
	}
	ds, err := catalog.New(opts...)
	if err != nil {
		return nil, err
	}
	return NewCatalogProviderFrom(ds, settings)
}

// NewCatalogProviderFrom builds a CatalogProvider on an existing dataset.
func NewCatalogProviderFrom(ds *catalog.Dataset, settings *config.Settings) (*CatalogProvider, error) {
	uaType := settings.GetString(SettingCatalogUAType, catalog.CategoryRandom)
	if !ds.Has(uaType) {
		return nil, errors.UnknownCategory(uaType)
	}
	return &CatalogProvider{
		dataset: ds,
		uaType:  uaType,
		log:     logger.Get(logger.ComponentProvider),
	}, nil
}

// Name returns the provider name.
func (p *CatalogProvider) Name() string { return "catalog" }

// RandomUA returns one entry from the configured category. The category
// was validated at construction, so the only failure left is a category
// emptied of entries with no fallback configured; the whole dataset
// serves as the last resort then.
func (p *CatalogProvider) RandomUA() string {
	ua, err := p.dataset.Pick(p.uaType)
	if err != nil {
		p.log.Debug("category exhausted, using whole dataset",
			logger.Fields(logger.FieldCategory, p.uaType))
		recordFallback(p.Name(), "empty_category")
		return p.dataset.Random()
	}
	return ua
}
