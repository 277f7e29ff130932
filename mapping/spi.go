package mapping

import "reflect"

// Context is the state of one mapping invocation. Contexts form a
// parent-linked chain, one node per nested mapping within a top-level
// call. Custom converters receive a Context and may hand it back to
// Engine.MapContext to map nested values.
type Context interface {
	// Source returns the source instance, possibly nil.
	Source() any

	// SourceType returns the source type, pointers stripped.
	SourceType() reflect.Type

	// Destination returns the destination instance, nil until one has
	// been provided or created.
	Destination() any

	// SetDestination installs a destination instance into the context.
	SetDestination(destination any)

	// DestinationType returns the destination type, pointers stripped.
	DestinationType() reflect.Type

	// Parent returns the enclosing context, nil at the root.
	Parent() Context

	// Mapping returns the rule that produced this context, nil at the
	// root and for re-entrant converter calls.
	Mapping() *Mapping

	// TypeMap returns the TypeMap bound to this context, if any.
	TypeMap() *TypeMap

	// Engine returns the engine executing this call.
	Engine() Engine
}

// Engine is the re-entrant surface of the mapping engine, exposed to
// converters and providers that need to recurse.
type Engine interface {
	// MapContext maps the context's source value onto a destination value.
	MapContext(ctx Context) (any, error)

	// CreateDestination materializes a destination instance for the
	// context, via providers or default construction. Returns nil when no
	// instance could be produced; the failure is recorded on the call.
	CreateDestination(ctx Context) any
}

// Converter transforms the context's source value into a destination
// value. A returned error is recorded against the current call and the
// enclosing mapping continues with a nil value.
type Converter interface {
	Convert(ctx Context) (any, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(ctx Context) (any, error)

func (f ConverterFunc) Convert(ctx Context) (any, error) { return f(ctx) }

// Condition gates whether a Mapping or TypeMap applies to a context.
type Condition interface {
	Applies(ctx Context) bool
}

// ConditionFunc adapts a function to the Condition interface.
type ConditionFunc func(ctx Context) bool

func (f ConditionFunc) Applies(ctx Context) bool { return f(ctx) }

// ProvisionRequest describes a destination instance request. A request
// raised by a mapping is its Context; a request for an intermediate path
// object carries the requested type only.
type ProvisionRequest interface {
	RequestedType() reflect.Type
}

// Provider supplies destination instances. Returning nil passes the
// request on to the next provider in the fallback chain.
type Provider interface {
	Get(req ProvisionRequest) any
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(req ProvisionRequest) any

func (f ProviderFunc) Get(req ProvisionRequest) any { return f(req) }

// TypeMapStore is the TypeMap repository consumed by the engine. It must
// be safe for concurrent use.
type TypeMapStore interface {
	// Get returns the TypeMap registered for the pair, or nil.
	Get(sourceType, destinationType reflect.Type) *TypeMap

	// GetOrCreate returns the TypeMap for the pair, creating and
	// registering an empty one when absent. Concurrent creation of the
	// same pair must resolve to a single stored TypeMap; the engine is
	// passed along for stores that build rules on creation.
	GetOrCreate(sourceType, destinationType reflect.Type, engine Engine) *TypeMap
}

// ConverterStore is the converter repository consumed by the engine. It
// must be safe for concurrent use.
type ConverterStore interface {
	// GetFirstSupported returns the first converter applicable to the
	// pair, or nil.
	GetFirstSupported(sourceType, destinationType reflect.Type) Converter
}
