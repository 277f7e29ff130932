package registry

import (
	"reflect"
	"sync"

	"object-mapper/mapping"
)

// ProviderRegistry is a Provider dispatching on the requested type: one
// explicit factory per destination type, configured ahead of time, with an
// optional fallback consulted for unregistered types. Returning nil passes
// the request on to the engine's reflective construction.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]mapping.Provider
	fallback  mapping.Provider
}

var _ mapping.Provider = (*ProviderRegistry)(nil)

// NewProviderRegistry returns an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{factories: make(map[reflect.Type]mapping.Provider)}
}

// Register installs the provider for the type. Pointer types are
// normalized, so a registration covers T and *T requests alike.
func (r *ProviderRegistry) Register(t reflect.Type, p mapping.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[mapping.Deref(t)] = p
}

// RegisterFunc installs a plain factory function for the type.
func (r *ProviderRegistry) RegisterFunc(t reflect.Type, factory func() any) {
	r.Register(t, mapping.ProviderFunc(func(mapping.ProvisionRequest) any {
		return factory()
	}))
}

// SetFallback installs the provider consulted for unregistered types.
func (r *ProviderRegistry) SetFallback(p mapping.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fallback = p
}

// Get dispatches the request to the factory registered for its type, else
// the fallback, else nil.
func (r *ProviderRegistry) Get(req mapping.ProvisionRequest) any {
	t := mapping.Deref(req.RequestedType())

	r.mu.RLock()
	p := r.factories[t]
	fallback := r.fallback
	r.mu.RUnlock()

	if p != nil {
		return p.Get(req)
	}
	if fallback != nil {
		return fallback.Get(req)
	}

	return nil
}
