package registry

import (
	"reflect"
	"sync"

	"object-mapper/mapping"
)

// ConditionalConverter is a converter that can report which type pairs it
// supports.
type ConditionalConverter interface {
	mapping.Converter

	// Supports reports whether the converter applies to the pair. Types
	// arrive with pointers stripped.
	Supports(sourceType, destinationType reflect.Type) bool
}

// ConverterRegistry is a concurrent, ordered converter store. Lookup
// returns the first converter that supports the pair, so registration
// order is priority order.
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters []ConditionalConverter
}

var _ mapping.ConverterStore = (*ConverterRegistry)(nil)

// NewConverterRegistry returns a registry holding the given converters in
// order.
func NewConverterRegistry(converters ...ConditionalConverter) *ConverterRegistry {
	return &ConverterRegistry{converters: converters}
}

// Add appends a converter at the lowest priority.
func (r *ConverterRegistry) Add(c ConditionalConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters = append(r.converters, c)
}

// Prepend inserts a converter at the highest priority.
func (r *ConverterRegistry) Prepend(c ConditionalConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters = append([]ConditionalConverter{c}, r.converters...)
}

// GetFirstSupported returns the first converter applicable to the pair,
// or nil.
func (r *ConverterRegistry) GetFirstSupported(sourceType, destinationType reflect.Type) mapping.Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.converters {
		if c.Supports(sourceType, destinationType) {
			return c
		}
	}

	return nil
}
