package registry

import (
	"reflect"
	"sync"

	"object-mapper/mapping"
)

// TypeMapRegistry is a concurrent TypeMap store. Lookups are read-locked;
// GetOrCreate is race-tolerant, concurrent creation of the same pair
// resolves to a single stored TypeMap.
type TypeMapRegistry struct {
	mu       sync.RWMutex
	typeMaps map[mapping.TypePair]*mapping.TypeMap
}

var _ mapping.TypeMapStore = (*TypeMapRegistry)(nil)

// NewTypeMapRegistry returns an empty registry.
func NewTypeMapRegistry() *TypeMapRegistry {
	return &TypeMapRegistry{
		typeMaps: make(map[mapping.TypePair]*mapping.TypeMap),
	}
}

// Get returns the TypeMap registered for the pair, or nil. Pointer types
// are normalized to their element type.
func (r *TypeMapRegistry) Get(sourceType, destinationType reflect.Type) *mapping.TypeMap {
	pair := mapping.PairOf(mapping.Deref(sourceType), mapping.Deref(destinationType))

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.typeMaps[pair]
}

// GetOrCreate returns the TypeMap for the pair, registering an empty one
// when absent. The engine reference is part of the store contract for
// implementations that build rules on creation; this explicit-only
// registry creates empty maps.
func (r *TypeMapRegistry) GetOrCreate(sourceType, destinationType reflect.Type, _ mapping.Engine) *mapping.TypeMap {
	if tm := r.Get(sourceType, destinationType); tm != nil {
		return tm
	}

	tm := mapping.NewTypeMap(sourceType, destinationType)

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another caller may have created the
	// pair in the meantime.
	if existing, ok := r.typeMaps[tm.Pair()]; ok {
		return existing
	}

	r.typeMaps[tm.Pair()] = tm

	return tm
}

// Put registers a configured TypeMap, replacing any previous registration
// for its pair.
func (r *TypeMapRegistry) Put(tm *mapping.TypeMap) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.typeMaps[tm.Pair()] = tm
}

// All returns the registered TypeMaps in unspecified order.
func (r *TypeMapRegistry) All() []*mapping.TypeMap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*mapping.TypeMap, 0, len(r.typeMaps))
	for _, tm := range r.typeMaps {
		out = append(out, tm)
	}

	return out
}
