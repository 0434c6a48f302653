package provider

import (
	"sort"
	"sync"

	"github.com/kyavuz/uakit/config"
	"github.com/kyavuz/uakit/errors"
)

// Registry manages named provider factories and cached instances.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]Provider
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]Provider),
	}
}

// RegisterFactory registers a named factory for creating providers.
func (r *Registry) RegisterFactory(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create instantiates a provider using the named factory and settings.
func (r *Registry) Create(name string, settings *config.Settings) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotRegistered(name)
	}
	return factory(settings)
}

// Get returns a cached provider instance by name.
func (r *Registry) Get(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.instances[name]
	return inst, ok
}

// Set caches a provider instance by name.
func (r *Registry) Set(name string, instance Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = instance
}

// List returns sorted names of all registered factories.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterBuiltins registers the four built-in provider factories.
func RegisterBuiltins(r *Registry) {
	r.RegisterFactory("fixed", func(s *config.Settings) (Provider, error) {
		return NewFixedProvider(s)
	})
	r.RegisterFactory("catalog", func(s *config.Settings) (Provider, error) {
		return NewCatalogProvider(s)
	})
	r.RegisterFactory("synthetic", func(s *config.Settings) (Provider, error) {
		return NewSyntheticProvider(s)
	})
	r.RegisterFactory("filtered", func(s *config.Settings) (Provider, error) {
		return NewFilteredCatalogProvider(s)
	})
}
