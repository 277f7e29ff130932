package mapping

import "reflect"

// TypeMap is the ordered set of mapping rules for one type pair, plus an
// optional whole-object condition, converter and provider.
//
// A TypeMap is created once per pair, shared read-mostly across calls.
// Collaborators may append rules during configuration; the engine only
// reads them.
type TypeMap struct {
	sourceType      reflect.Type
	destinationType reflect.Type

	// Condition, when set, gates the whole TypeMap: an unsatisfied
	// condition skips every rule and leaves the destination unchanged.
	Condition Condition

	// Converter, when set, maps the whole object instead of per-rule
	// iteration.
	Converter Converter

	// Provider, when set, supplies destination instances for this pair.
	Provider Provider

	mappings []*Mapping
}

// NewTypeMap returns an empty TypeMap for the pair. Pointer types are
// normalized to their element type.
func NewTypeMap(sourceType, destinationType reflect.Type) *TypeMap {
	return &TypeMap{
		sourceType:      Deref(sourceType),
		destinationType: Deref(destinationType),
	}
}

// SourceType returns the pair's source type.
func (t *TypeMap) SourceType() reflect.Type { return t.sourceType }

// DestinationType returns the pair's destination type.
func (t *TypeMap) DestinationType() reflect.Type { return t.destinationType }

// Pair returns the TypePair this map is registered under.
func (t *TypeMap) Pair() TypePair { return PairOf(t.sourceType, t.destinationType) }

// Add appends a rule. Rules apply in insertion order.
func (t *TypeMap) Add(m *Mapping) { t.mappings = append(t.mappings, m) }

// Mappings returns the configured rules in order.
func (t *TypeMap) Mappings() []*Mapping { return t.mappings }

func (t *TypeMap) String() string { return "TypeMap[" + t.Pair().String() + "]" }
