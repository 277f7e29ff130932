// Package engine implements the runtime mapping engine.
//
// An Engine maps a live source object graph onto a destination object
// graph, driven by the TypeMaps and converters supplied through its
// Config. One Engine is shared across concurrent callers: the TypeMap
// store and the converter resolution cache are the only cross-call mutable
// state, everything else is owned by a single top-level Map call.
//
// # Resolution
//
// A top-level call resolves the pair in order: a registered TypeMap, a
// converter from the store, else an empty TypeMap created on the fly.
// Nested values recurse through the same resolution, guarded against
// cyclic type graphs by a per-call set of destination types currently
// under construction. Converter resolution is memoized per type pair;
// misses are never cached, so converters registered late are picked up.
//
// # Failure model
//
// Field-level failures (converter errors, instantiation failures,
// unsupported pairs) are recorded and mapping continues best-effort with
// nil values; one aggregated MappingError reporting every recorded
// failure is returned at the end of the top-level call. Configuration
// misuse is returned immediately and never aggregated.
package engine
