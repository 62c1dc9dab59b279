package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/docket/pkg/errors"
)

// Registry is a thread-safe, name-keyed registry. It backs the named
// side of the system: extension provider factories and anything else
// that is registered once at setup time and looked up by name.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New creates an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Add registers an item under name. Duplicate names are rejected so a
// later registration cannot silently shadow an earlier one.
func (r *Registry[T]) Add(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item %q is already registered", name)
	}

	r.items[name] = item
	return nil
}

// Get retrieves the item registered under name.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item %q not found in registry", name)
	}
	return item, nil
}

// Has checks if an item is registered under name.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

// Names returns all registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered items.
func (r *Registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Clear removes all items from the registry.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[string]T)
}

// MustAdd registers an item and panics on failure. Intended for init()
// functions where a registration error is a programming error.
func MustAdd[T any](reg *Registry[T], name string, item T) {
	if err := reg.Add(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
