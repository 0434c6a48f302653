package logger

import (
	"sync"
)

// Component names under which uakit packages resolve their loggers.
// Provider construction, catalog loading, and transport round trips all
// call Get with one of these, so swapping a component's logger via
// Register redirects that component's output immediately. Tests use
// this to point a component at a capture writer.
const (
	ComponentProvider  = "provider"
	ComponentCatalog   = "catalog"
	ComponentTransport = "transport"
	ComponentConfig    = "config"
	ComponentUAKit     = "uakit"
)

// registry holds the named component loggers.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a logger under a component name, replacing any
// previous registration.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get returns the logger registered under a component name. An
// unregistered name resolves to the global logger tagged with that
// name, so components work without any registration step.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().WithComponent(name)
}

// RegisterDefaults seeds the registry with component-tagged loggers
// derived from the global logger; with no arguments it seeds every
// uakit component. Call after Init so the seeded loggers carry the
// configured level and format.
func RegisterDefaults(names ...string) {
	if len(names) == 0 {
		names = []string{
			ComponentProvider,
			ComponentCatalog,
			ComponentTransport,
			ComponentConfig,
			ComponentUAKit,
		}
	}
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}
