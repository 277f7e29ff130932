package engine

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"object-mapper/mapping"
)

// Config supplies the collaborators shared by every call on an Engine.
type Config struct {
	// TypeMaps is the rule repository. Required.
	TypeMaps mapping.TypeMapStore

	// Converters is the converter repository. Required.
	Converters mapping.ConverterStore

	// Provider, when set, is the global destination provider, consulted
	// after mapping- and TypeMap-level providers and before reflective
	// construction.
	Provider mapping.Provider
}

// Engine maps source object graphs onto destination object graphs. One
// Engine is safe for concurrent use; converter resolution is memoized per
// type pair across calls.
type Engine struct {
	typeMaps   mapping.TypeMapStore
	converters mapping.ConverterStore
	provider   mapping.Provider

	converterCache sync.Map // mapping.TypePair -> mapping.Converter
}

var _ mapping.Engine = (*Engine)(nil)

// New returns an Engine backed by the given collaborators.
func New(cfg Config) *Engine {
	return &Engine{
		typeMaps:   cfg.TypeMaps,
		converters: cfg.Converters,
		provider:   cfg.Provider,
	}
}

// Map is the top-level entry point. It maps source onto destination (a
// fresh destination is created when nil) and returns the resulting
// destination instance, or one aggregated MappingError enumerating every
// failure recorded during the call. Pointer types are normalized to their
// element type; destination instances are pointers.
func (e *Engine) Map(source any, sourceType reflect.Type, destination any, destinationType reflect.Type) (any, error) {
	if err := e.checkConfig(sourceType, destinationType); err != nil {
		return nil, err
	}

	sourceType = mapping.Deref(sourceType)
	destinationType = mapping.Deref(destinationType)

	ctx := newRootContext(e, source, sourceType, destination, destinationType)

	// Container destinations revisit the same element type repeatedly and
	// must not trip the cycle guard.
	if !isContainer(destinationType) {
		ctx.currentlyMapping(destinationType)
	}

	result, err := e.mapInitial(ctx)
	if err != nil {
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}

		var abort *abortError
		if !errors.As(err, &abort) {
			ctx.root.errors.add(Record{
				Kind:            ErrorMapping,
				SourceType:      sourceType,
				DestinationType: destinationType,
				Err:             err,
			})
		}
	}

	if agg := ctx.root.errors.asError(); agg != nil {
		return nil, agg
	}

	return result, nil
}

// To maps source onto a freshly created destination of type D.
func To[D, S any](e *Engine, source *S) (*D, error) {
	sourceType := reflect.TypeOf((*S)(nil)).Elem()
	destinationType := reflect.TypeOf((*D)(nil)).Elem()

	result, err := e.Map(source, sourceType, nil, destinationType)
	if err != nil {
		return nil, err
	}

	d, _ := result.(*D)

	return d, nil
}

// mapInitial performs mapping using a registered TypeMap if one exists,
// else a converter if one applies, else a newly created TypeMap.
func (e *Engine) mapInitial(ctx *Context) (any, error) {
	if tm := e.typeMaps.Get(ctx.sourceType, ctx.destinationType); tm != nil {
		return e.applyTypeMap(ctx, tm)
	}

	if conv := e.converterFor(ctx.sourceType, ctx.destinationType); conv != nil {
		return e.convert(ctx, conv), nil
	}

	// GetOrCreate tolerates the pair being created concurrently.
	tm := e.typeMaps.GetOrCreate(ctx.sourceType, ctx.destinationType, e)

	return e.applyTypeMap(ctx, tm)
}

// MapContext is the recursive entry point, used for every nested property
// and available to re-entrant converter calls.
func (e *Engine) MapContext(mctx mapping.Context) (any, error) {
	ctx, ok := mctx.(*Context)
	if !ok {
		return nil, fmt.Errorf("%w: foreign context %T", ErrConfiguration, mctx)
	}

	destinationType := ctx.destinationType

	if !isContainer(destinationType) {
		if ctx.currentlyMapping(destinationType) {
			rec := Record{
				Kind:            ErrorCircularMapping,
				SourceType:      ctx.sourceType,
				DestinationType: destinationType,
			}
			ctx.root.errors.add(rec)

			return nil, &abortError{rec: rec}
		}
		// The mark must come off on every exit path, error exits included.
		defer ctx.finishedMapping(destinationType)
	}

	var destination any

	if tm := e.typeMaps.Get(ctx.sourceType, destinationType); tm != nil {
		d, err := e.applyTypeMap(ctx, tm)
		if err != nil {
			return nil, err
		}
		destination = d
	} else if conv := e.converterFor(ctx.sourceType, destinationType); conv != nil {
		destination = e.convert(ctx, conv)
	} else if ctx.source != nil {
		if ctx.destination == nil {
			ctx.root.errors.add(Record{
				Kind:            ErrorUnsupportedMapping,
				SourceType:      ctx.sourceType,
				DestinationType: destinationType,
			})
		} else {
			// Best-effort partial mapping: pass the existing destination
			// through untouched.
			destination = ctx.destination
		}
	}

	return destination, nil
}

// applyTypeMap binds tm onto the context and applies it: whole-object
// condition, whole-object converter, or per-rule iteration in configured
// order.
func (e *Engine) applyTypeMap(ctx *Context, tm *mapping.TypeMap) (any, error) {
	ctx.typeMap = tm

	if ctx.destination == nil {
		if e.CreateDestination(ctx) == nil {
			return nil, nil
		}
	}

	if tm.Condition == nil || tm.Condition.Applies(ctx) {
		if tm.Converter != nil {
			return e.convert(ctx, tm.Converter), nil
		}

		for _, m := range tm.Mappings() {
			if err := e.propertyMap(ctx, m); err != nil {
				return nil, err
			}
		}
	}

	return ctx.destination, nil
}

// mappingOp resolves the source value and source type for one Mapping
// kind. Kinds dispatch through this table rather than type checks.
type mappingOp struct {
	resolve    func(source any, m *mapping.Mapping) any
	sourceType func(source any, m *mapping.Mapping) reflect.Type
}

var mappingOps = [mapping.KindTotal]mappingOp{
	mapping.KindProperty: {
		resolve: func(source any, m *mapping.Mapping) any {
			// Walk the accessor chain, short-circuiting the moment any
			// step yields nil.
			for _, accessor := range m.Source {
				if source == nil {
					return nil
				}
				source = accessor.Get(source)
			}

			return source
		},
		sourceType: func(_ any, m *mapping.Mapping) reflect.Type {
			return m.LastSource().Type()
		},
	},

	mapping.KindConstant: {
		resolve: func(_ any, m *mapping.Mapping) any {
			return m.Constant
		},
		sourceType: func(_ any, m *mapping.Mapping) reflect.Type {
			return reflect.TypeOf(m.Constant)
		},
	},

	mapping.KindSource: {
		resolve: func(source any, m *mapping.Mapping) any {
			return source
		},
		sourceType: func(_ any, m *mapping.Mapping) reflect.Type {
			return m.SourceType
		},
	},
}

// propertyMap applies one rule within the bound TypeMap. Skip suppresses
// the rule only in the absence of a condition; a present condition is
// evaluated first and governs.
func (e *Engine) propertyMap(ctx *Context, m *mapping.Mapping) error {
	if m.Condition == nil && m.Skip {
		return nil
	}

	source := mappingOps[m.Kind].resolve(ctx.source, m)
	propCtx := e.propertyContextFor(ctx, source, m)

	if m.Condition != nil {
		if !m.Condition.Applies(propCtx) {
			return nil
		}
		if m.Skip {
			return nil
		}
	}

	// A provider gets the first chance at the destination instance,
	// before any conversion or recursion.
	e.createDestinationViaProvider(propCtx)

	var value any
	if source != nil {
		if m.Converter != nil {
			value = e.convert(propCtx, m.Converter)
		} else {
			v, err := e.MapContext(propCtx)
			if err != nil {
				return err
			}
			value = v
		}
	}

	e.setDestinationValue(ctx.destination, value, propCtx, m)

	return nil
}

func (e *Engine) propertyContextFor(ctx *Context, source any, m *mapping.Mapping) *Context {
	sourceType := mappingOps[m.Kind].sourceType(source, m)
	destinationType := m.LastDestination().Type()

	return ctx.child(source, mapping.Deref(sourceType), mapping.Deref(destinationType), m)
}

// setDestinationValue writes value through the rule's mutator chain,
// materializing intermediate objects as needed. No mutator is invoked
// with a partially built chain: a failed intermediate aborts the write.
func (e *Engine) setDestinationValue(destination, value any, ctx *Context, m *mapping.Mapping) {
	chain := m.Destination

	for i, mutator := range chain {
		if i == len(chain)-1 {
			ctx.root.destCache[mutator] = value

			// Destination slots may be non-nilable; a nil computed value
			// writes the slot's zero value.
			if value == nil {
				value = reflect.Zero(mutator.Type()).Interface()
			}
			mutator.Set(destination, value)

			return
		}

		intermediate := ctx.root.destCache[mutator]
		if intermediate == nil {
			intermediate = e.intermediateFor(mutator, destination, &ctx.root.errors)
			if intermediate == nil {
				return
			}
			ctx.root.destCache[mutator] = intermediate
		}

		destination = intermediate
	}
}

// intermediateFor materializes one intermediate destination-path object.
// Value-struct slots are addressed in place; pointer slots come from the
// global provider when one is configured, else reflective construction,
// and are written into the parent. A configured provider is exclusive: a
// nil result aborts the write instead of falling through to construction.
func (e *Engine) intermediateFor(mutator mapping.Mutator, destination any, errs *errorList) any {
	if mutator.Type().Kind() == reflect.Struct {
		if addresser, ok := mutator.(mapping.Addresser); ok {
			if slot := addresser.Addr(destination); slot != nil {
				return slot
			}
		}
	}

	var intermediate any
	if e.provider != nil {
		intermediate = e.provider.Get(provisionRequest{typ: mutator.Type()})
	} else {
		intermediate = e.instantiate(mutator.Type(), errs)
	}
	if intermediate == nil {
		return nil
	}

	mutator.Set(destination, intermediate)

	return intermediate
}

// convert invokes conv on the context. A converter error is recorded and
// yields nil, so the enclosing mapping continues.
func (e *Engine) convert(ctx *Context, conv mapping.Converter) any {
	value, err := conv.Convert(ctx)
	if err != nil {
		ctx.root.errors.add(Record{
			Kind:            ErrorConverting,
			SourceType:      ctx.sourceType,
			DestinationType: ctx.destinationType,
			Converter:       conv,
			Err:             err,
		})

		return nil
	}

	return value
}

// converterFor resolves a converter for the pair through the memo cache.
// Hits are cached for the Engine's lifetime; misses re-query the store so
// late registration stays observable.
func (e *Engine) converterFor(sourceType, destinationType reflect.Type) mapping.Converter {
	pair := mapping.PairOf(sourceType, destinationType)

	if cached, ok := e.converterCache.Load(pair); ok {
		return cached.(mapping.Converter)
	}

	conv := e.converters.GetFirstSupported(sourceType, destinationType)
	if conv != nil {
		e.converterCache.Store(pair, conv)
	}

	return conv
}

// CreateDestination materializes a destination instance for the context:
// providers first, then reflective construction. A construction failure is
// recorded and yields nil, aborting that branch of the mapping.
func (e *Engine) CreateDestination(mctx mapping.Context) any {
	ctx, ok := mctx.(*Context)
	if !ok {
		return nil
	}

	if destination := e.createDestinationViaProvider(ctx); destination != nil {
		return destination
	}

	destination := e.instantiate(ctx.destinationType, &ctx.root.errors)
	ctx.destination = destination

	return destination
}

// createDestinationViaProvider consults the provider chain: the active
// mapping's provider, the bound TypeMap's, then the global one. The first
// configured provider wins, and its result is installed even when nil.
func (e *Engine) createDestinationViaProvider(ctx *Context) any {
	var provider mapping.Provider

	if ctx.mapping != nil {
		provider = ctx.mapping.Provider
	}
	if provider == nil && ctx.typeMap != nil {
		provider = ctx.typeMap.Provider
	}
	if provider == nil {
		provider = e.provider
	}
	if provider == nil {
		return nil
	}

	destination := provider.Get(ctx)
	ctx.destination = destination

	return destination
}

// instantiate reflectively constructs an instance of t. Struct types come
// back as pointers so they stay mutable.
func (e *Engine) instantiate(t reflect.Type, errs *errorList) any {
	instance, err := newInstance(t)
	if err != nil {
		errs.add(Record{
			Kind:            ErrorInstantiatingDestination,
			DestinationType: t,
			Err:             err,
		})

		return nil
	}

	return instance
}

func newInstance(t reflect.Type) (any, error) {
	if t == nil {
		return nil, errors.New("no destination type")
	}

	switch t.Kind() {
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface(), nil
	case reflect.Struct:
		return reflect.New(t).Interface(), nil
	case reflect.Map:
		return reflect.MakeMap(t).Interface(), nil
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface(), nil
	default:
		return nil, fmt.Errorf("cannot instantiate %s", t)
	}
}

func (e *Engine) checkConfig(sourceType, destinationType reflect.Type) error {
	switch {
	case e.typeMaps == nil:
		return fmt.Errorf("%w: no TypeMap store", ErrConfiguration)
	case e.converters == nil:
		return fmt.Errorf("%w: no converter store", ErrConfiguration)
	case sourceType == nil:
		return fmt.Errorf("%w: no source type", ErrConfiguration)
	case destinationType == nil:
		return fmt.Errorf("%w: no destination type", ErrConfiguration)
	}

	return nil
}

// isContainer reports whether t is a multi-element destination type.
func isContainer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// provisionRequest is the request raised for intermediate destination-path
// objects, carrying the requested type only.
type provisionRequest struct {
	typ reflect.Type
}

func (r provisionRequest) RequestedType() reflect.Type { return r.typ }
