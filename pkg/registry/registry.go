package registry

import (
	"sort"

	"github.com/arthur-debert/argspec/pkg/errors"
)

// Registry is a generic registry for storing and retrieving items by name
type Registry[T any] interface {
	// Upsert adds a new item built by create, or passes the existing item to
	// merge. It returns the stored item and whether it was created.
	Upsert(name string, create func() T, merge func(T) T) (T, bool, error)

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Lookup retrieves an item, reporting whether it exists
	Lookup(name string) (T, bool)

	// Has checks if an item is registered
	Has(name string) bool

	// List returns all registered names
	List() []string

	// Range calls fn for every item in name order until fn returns false
	Range(fn func(name string, item T) bool)

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	items map[string]T
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

// Upsert adds or merges an item
func (r *registry[T]) Upsert(name string, create func() T, merge func(T) T) (T, bool, error) {
	if name == "" {
		var zero T
		return zero, false, errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	if item, exists := r.items[name]; exists {
		item = merge(item)
		r.items[name] = item
		return item, false, nil
	}

	item := merge(create())
	r.items[name] = item
	return item, true, nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return item, nil
}

// Lookup retrieves an item without allocating an error on a miss
func (r *registry[T]) Lookup(name string) (T, bool) {
	item, exists := r.items[name]
	return item, exists
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	_, exists := r.items[name]
	return exists
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Range iterates in sorted name order
func (r *registry[T]) Range(fn func(name string, item T) bool) {
	for _, name := range r.List() {
		if !fn(name, r.items[name]) {
			return
		}
	}
}

// Clear removes all items from the registry
func (r *registry[T]) Clear() {
	r.items = make(map[string]T)
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	return len(r.items)
}
