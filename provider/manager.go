package provider

import (
	"fmt"
	"sync"

	"github.com/kyavuz/uakit/config"
	"github.com/kyavuz/uakit/logger"
)

// Manager provides the main API for working with providers, combining a
// Registry for factories and a Selector for choosing among initialized
// instances.
type Manager struct {
	mu          sync.RWMutex
	registry    *Registry
	selector    Selector
	providers   map[string]Provider
	defaultName string
	log         *logger.Logger
}

// NewManager creates a Manager backed by the given registry and selector.
func NewManager(registry *Registry, selector Selector) *Manager {
	return &Manager{
		registry:  registry,
		selector:  selector,
		providers: make(map[string]Provider),
		log:       logger.Get(logger.ComponentProvider),
	}
}

// Register adds a factory to the underlying registry.
func (m *Manager) Register(name string, factory Factory) {
	m.registry.RegisterFactory(name, factory)
	m.log.Info("factory registered", logger.Fields(logger.FieldProvider, name))
}

// Initialize creates a provider from its factory and stores it for use.
func (m *Manager) Initialize(name string, settings *config.Settings) error {
	instance, err := m.registry.Create(name, settings)
	if err != nil {
		return fmt.Errorf("initialize provider %q: %w", name, err)
	}
	m.mu.Lock()
	m.providers[name] = instance
	m.mu.Unlock()
	m.registry.Set(name, instance)
	m.log.Info("provider initialized", logger.Fields(logger.FieldProvider, name))
	return nil
}

// Get returns a provider chosen by the selector, or the default if set.
func (m *Manager) Get() (Provider, error) {
	m.mu.RLock()
	defaultName := m.defaultName
	providers := m.snapshotLocked()
	m.mu.RUnlock()

	if defaultName != "" {
		if p, ok := providers[defaultName]; ok {
			return p, nil
		}
		return nil, fmt.Errorf("default provider %q not found", defaultName)
	}
	return m.selector.Select(providers)
}

// GetByName returns a specific provider by name.
func (m *Manager) GetByName(name string) (Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.providers[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("provider %q not found", name)
}

// SetDefault sets the default provider by name.
func (m *Manager) SetDefault(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("provider %q not initialized", name)
	}
	m.defaultName = name
	m.log.Info("default provider set", logger.Fields(logger.FieldProvider, name))
	return nil
}

// Available returns the names of all initialized providers.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	return names
}

// RandomUA selects a provider and returns its user agent, making the
// Manager itself usable wherever a single provider is expected. With no
// provider available it logs an error and returns the empty string, the
// same value an unconfigured FixedProvider yields.
func (m *Manager) RandomUA() string {
	p, err := m.Get()
	if err != nil {
		m.log.Error("no provider available", logger.ErrorFields("select", err))
		recordError("no_provider", "manager")
		return ""
	}
	return p.RandomUA()
}

// snapshotLocked returns a shallow copy of the providers map.
// Must be called while holding at least a read lock.
func (m *Manager) snapshotLocked() map[string]Provider {
	cp := make(map[string]Provider, len(m.providers))
	for k, v := range m.providers {
		cp[k] = v
	}
	return cp
}
