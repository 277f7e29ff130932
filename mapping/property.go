package mapping

import "reflect"

// Accessor reads one property step off a source instance.
type Accessor interface {
	// Get returns the property value, or nil when the instance or the
	// property itself is nil.
	Get(instance any) any

	// Type returns the declared property type.
	Type() reflect.Type
}

// Mutator writes one property step onto a destination instance.
//
// Mutator values are used as identity keys for the per-call intermediate
// destination cache: two destination paths that share a prefix must share
// the Mutator values for that prefix. Implementations should hand out one
// value per (owner type, property) pair; see access.FieldOf.
type Mutator interface {
	// Set writes value into the property of instance. The instance must be
	// a pointer so the write is observable.
	Set(instance, value any)

	// Type returns the declared property type.
	Type() reflect.Type
}

// Addresser is an optional Mutator capability. When an intermediate step
// of a destination path is a value struct, the engine prefers mutating it
// in place through its address over materializing a detached copy.
type Addresser interface {
	// Addr returns a pointer to the property slot inside instance, or nil
	// when the slot cannot be addressed in place.
	Addr(instance any) any
}
