package mapping

import "reflect"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind discriminates the Mapping variants.
type Kind int

const (
	// KindProperty maps a source property path onto a destination path.
	KindProperty Kind = iota
	// KindConstant maps a configured literal onto a destination path.
	KindConstant
	// KindSource maps the whole source instance onto a destination path.
	KindSource

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Mapping is one configured field-level rule. The Kind discriminator
// selects which of the variant fields are meaningful; the engine
// dispatches over kinds through a function table rather than type checks.
type Mapping struct {
	Kind Kind

	// Source is the accessor chain walked to resolve the source value.
	// Property variant only.
	Source []Accessor

	// Constant is the configured literal. Constant variant only.
	Constant any

	// SourceType is the declared source type. Source variant only.
	SourceType reflect.Type

	// Destination is the mutator chain the resolved value is written
	// through. Never empty.
	Destination []Mutator

	// Condition, when set, gates the mapping per invocation.
	Condition Condition

	// Converter, when set, produces the destination value instead of
	// recursive mapping.
	Converter Converter

	// Provider, when set, gets the first chance to materialize the
	// destination instance.
	Provider Provider

	// Skip suppresses the mapping. When a Condition is present it is
	// evaluated first, and a satisfied condition on a skipped mapping
	// still maps nothing.
	Skip bool
}

// NewPropertyMapping returns a property-path mapping rule.
func NewPropertyMapping(source []Accessor, destination []Mutator) *Mapping {
	return &Mapping{Kind: KindProperty, Source: source, Destination: destination}
}

// NewConstantMapping returns a constant-value mapping rule.
func NewConstantMapping(constant any, destination []Mutator) *Mapping {
	return &Mapping{Kind: KindConstant, Constant: constant, Destination: destination}
}

// NewSourceMapping returns a source-type mapping rule.
func NewSourceMapping(sourceType reflect.Type, destination []Mutator) *Mapping {
	return &Mapping{Kind: KindSource, SourceType: sourceType, Destination: destination}
}

// LastSource returns the final accessor of the source path, nil when the
// mapping carries none.
func (m *Mapping) LastSource() Accessor {
	if len(m.Source) == 0 {
		return nil
	}

	return m.Source[len(m.Source)-1]
}

// LastDestination returns the final mutator of the destination path.
func (m *Mapping) LastDestination() Mutator {
	return m.Destination[len(m.Destination)-1]
}
