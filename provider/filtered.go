package provider

import (
	"github.com/kyavuz/uakit/catalog"
	"github.com/kyavuz/uakit/config"
	"github.com/kyavuz/uakit/filter"
	"github.com/kyavuz/uakit/logger"
)

// SettingFilteredUAType configures the filter-category-to-value mapping
// for the FilteredCatalogProvider.
const SettingFilteredUAType = "RANDOMUSERAGENT_RANDOM_UA_TYPE"

// PoolLimit caps the candidate pool built at construction.
const PoolLimit = 100

// FilteredCatalogProvider draws from a bounded pool of user agents
// matching a resolved filter parameter set. An unresolvable filter
// value aborts construction; this is the one place misconfiguration is
// not silently tolerated.
type FilteredCatalogProvider struct {
	pool     *filter.Pool
	params   filter.Params
	fallback *catalog.Dataset
	log      *logger.Logger
}

// NewFilteredCatalogProvider builds a FilteredCatalogProvider from
// settings.
func NewFilteredCatalogProvider(settings *config.Settings) (*FilteredCatalogProvider, error) {
	log := logger.Get(logger.ComponentProvider)

	raw := settings.GetStringMap(SettingFilteredUAType)
	params, err := filter.ParseParams(raw)
	if err != nil {
		log.Error("could not resolve filter configuration", logger.ErrorFields("parse_filters", err))
		recordError("invalid_filter", "provider")
		return nil, err
	}

	pool, err := filter.NewPool(params, PoolLimit)
	if err != nil {
		return nil, err
	}

	// Last-resort source for an exhausted pool; see RandomUA.
	fallback, err := catalog.New()
	if err != nil {
		return nil, err
	}

	return &FilteredCatalogProvider{
		pool:     pool,
		params:   params,
		fallback: fallback,
		log:      log,
	}, nil
}

// Name returns the provider name.
func (p *FilteredCatalogProvider) Name() string { return "filtered" }

// Params returns the resolved filter parameter set.
func (p *FilteredCatalogProvider) Params() filter.Params { return p.params }

// PoolSize returns the realized candidate pool size.
func (p *FilteredCatalogProvider) PoolSize() int { return p.pool.Size() }

// RandomUA picks one entry from the candidate pool. A pool smaller than
// the cap triggers an advisory warning but still returns the pick. An
// empty pool (conflicting filters such as ANDROID with COMPUTER) falls
// back to an unfiltered dataset pick so the call never fails outward.
func (p *FilteredCatalogProvider) RandomUA() string {
	ua, err := p.pool.Pick()
	if err != nil {
		p.log.Debug("no user agents matched the filters, using unfiltered dataset",
			logger.Fields(logger.FieldFilter, p.params.String()))
		recordFallback(p.Name(), "empty_pool")
		return p.fallback.Random()
	}
	if p.pool.Size() < p.pool.Limit() {
		p.log.Warn("candidate pool below limit, consider less restrictive filters",
			logger.Fields(
				logger.FieldPoolSize, p.pool.Size(),
				"limit", p.pool.Limit(),
				logger.FieldFilter, p.params.String(),
			))
	}
	return ua
}
