// Package mapping defines the rule model and the collaborator contracts
// consumed by the mapping engine.
//
// # Rule model
//
//   - TypePair: comparable (source type, destination type) cache key
//   - Mapping: one field-level rule, a tagged variant over property-path,
//     constant and source-type mappings
//   - TypeMap: the ordered rule set for one type pair, plus optional
//     whole-object condition, converter and provider
//
// # Collaborator contracts
//
//   - Accessor / Mutator: read and write capability for one property step
//   - Converter: transforms a value of one type into another
//   - Provider: factory for destination instances
//   - Condition: predicate gating whether a mapping or TypeMap applies
//   - TypeMapStore / ConverterStore: rule and converter repositories
//
// Types are identified by reflect.Type. A pointer type is treated as its
// element type throughout: *T maps exactly like T, and instances travel as
// pointers so destinations stay mutable.
package mapping
