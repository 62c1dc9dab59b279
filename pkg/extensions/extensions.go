// Package extensions implements the pluggable lookup fallback chain.
//
// A Provider answers documentation lookups for subjects the store
// itself knows nothing about, typically by introspecting some object
// system. Providers are consulted in registration order and the first
// one that claims knowledge wins. Declining is a normal result, never
// an error.
package extensions

import (
	"sync"

	"github.com/arthur-debert/docket/pkg/content"
)

// Provider resolves documentation for subjects outside the store.
// Implementations must accept any subject and report ok=false rather
// than fail when the subject is not of their kind.
type Provider interface {
	Resolve(subject interface{}) (*content.Content, bool)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(subject interface{}) (*content.Content, bool)

// Resolve implements Provider.
func (f ProviderFunc) Resolve(subject interface{}) (*content.Content, bool) {
	return f(subject)
}

// Chain is an ordered list of fallback providers.
//
// Registration is append-only and does not deduplicate: registering
// the same provider twice consults it twice. Go function values have
// no usable identity, so dedup can only happen at the named-factory
// level (see Enable).
type Chain struct {
	mu        sync.RWMutex
	providers []Provider
}

// NewChain creates an empty chain.
func NewChain() *Chain {
	return &Chain{}
}

// Register appends a provider to the chain.
func (c *Chain) Register(p Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = append(c.providers, p)
}

// Resolve consults providers in registration order and returns the
// first non-declining result.
func (c *Chain) Resolve(subject interface{}) (*content.Content, bool) {
	c.mu.RLock()
	providers := make([]Provider, len(c.providers))
	copy(providers, c.providers)
	c.mu.RUnlock()

	for _, p := range providers {
		if got, ok := p.Resolve(subject); ok {
			return got, true
		}
	}
	return nil, false
}

// Len returns the number of registered providers.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.providers)
}
