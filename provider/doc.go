// Package provider implements the pluggable user-agent selection layer.
//
// A Provider yields one user-agent string per call, backed by one of
// several data sources: a fixed configured string, a catalog of
// real-world user agents, a synthetic generator, or a filtered
// hardware/software inventory. Providers are built once from a Settings
// mapping and hold only immutable state afterwards, so RandomUA is safe
// for concurrent use.
//
// The package also provides a Registry for named factories, Selectors
// for choosing among configured providers per request, and a Manager
// combining both:
//
//	reg := provider.NewRegistry()
//	provider.RegisterBuiltins(reg)
//	mgr := provider.NewManager(reg, &provider.PrioritySelector{Priority: []string{"catalog", "fixed"}})
//	_ = mgr.Initialize("fixed", settings)
//	ua := mgr.RandomUA()
//
// # Middleware
//
// Middleware wraps a Provider with cross-cutting behavior. Use Chain to
// compose:
//
//	p = provider.Chain(provider.WithLogging(log))(p)
package provider
