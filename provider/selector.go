package provider

import (
	"math/rand"
	"sort"
	"sync/atomic"

	"github.com/kyavuz/uakit/errors"
)

// Selector picks a provider from the initialized options. Selection is
// a pure in-memory choice; no call blocks.
type Selector interface {
	Select(providers map[string]Provider) (Provider, error)
}

// PrioritySelector tries providers in the given priority order and
// returns the first one that is initialized. This matches a provider
// list configured in order of preference.
type PrioritySelector struct {
	// Priority is the ordered list of provider names to try.
	Priority []string
}

// Select returns the first initialized provider in priority order.
func (s *PrioritySelector) Select(providers map[string]Provider) (Provider, error) {
	for _, name := range s.Priority {
		if p, ok := providers[name]; ok {
			return p, nil
		}
	}
	return nil, errors.NotFound("provider", "").WithDetail("priority", s.Priority)
}

// RandomSelector picks a provider uniformly at random.
type RandomSelector struct{}

// Select returns a uniformly random initialized provider.
func (s *RandomSelector) Select(providers map[string]Provider) (Provider, error) {
	names := sortedNames(providers)
	if len(names) == 0 {
		return nil, errors.NotFound("provider", "")
	}
	return providers[names[rand.Intn(len(names))]], nil
}

// RoundRobinSelector distributes picks across providers.
type RoundRobinSelector struct {
	counter atomic.Uint64
}

// Select picks the next provider using round-robin distribution.
func (s *RoundRobinSelector) Select(providers map[string]Provider) (Provider, error) {
	names := sortedNames(providers)
	if len(names) == 0 {
		return nil, errors.NotFound("provider", "")
	}
	idx := int(s.counter.Add(1)-1) % len(names)
	return providers[names[idx]], nil
}

func sortedNames(providers map[string]Provider) []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
