// Package registry provides the concurrent rule and converter
// repositories consumed by the engine.
//
//   - TypeMapRegistry: per-pair TypeMap store with race-tolerant
//     create-or-fetch
//   - ConverterRegistry: ordered first-match lookup over conditional
//     converters
//   - ProviderRegistry: per-type destination factories with an optional
//     fallback
//   - ParseFunc: adapts plain functions shaped func(S) D,
//     func(S) (D, error) or func(S) (D, bool) into converters
//
// Builtins returns the stock conditional converters (assignable values,
// same-kind Go conversion and guarded primitive conversion) that make
// scalar fields map without explicit configuration.
package registry
