// Package access provides reflection-backed property access for the
// mapping engine.
//
// Field implements both mapping.Accessor and mapping.Mutator for one
// struct field. Fields are interned per (owner type, field name) so that
// destination paths sharing a prefix share Mutator identity, which is what
// the engine's intermediate-destination cache keys on.
//
// Path resolves dotted path expressions ("Customer.Address.City") into
// Field chains, stepping through pointers transparently.
package access
