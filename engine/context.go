package engine

import (
	"reflect"

	"object-mapper/mapping"
)

// Context is the state of one mapping invocation. Contexts form a
// parent-linked chain, one node per nested mapping within a top-level
// call; the root node owns the call-wide state.
type Context struct {
	engine *Engine
	parent *Context

	source     any
	sourceType reflect.Type

	destination     any
	destinationType reflect.Type

	typeMap *mapping.TypeMap
	mapping *mapping.Mapping

	root *rootState
}

// rootState is the per-top-level-call state shared by every node of one
// context chain. A chain is single-threaded, so none of it is
// synchronized.
type rootState struct {
	errors errorList

	// inFlight is the cycle guard: destination types currently under
	// construction in the ancestor chain.
	inFlight map[reflect.Type]struct{}

	// destCache holds at most one materialized intermediate destination
	// per distinct destination-path prefix, keyed by mutator identity.
	destCache map[mapping.Mutator]any
}

var (
	_ mapping.Context          = (*Context)(nil)
	_ mapping.ProvisionRequest = (*Context)(nil)
)

func newRootContext(e *Engine, source any, sourceType reflect.Type, destination any, destinationType reflect.Type) *Context {
	return &Context{
		engine:          e,
		source:          source,
		sourceType:      sourceType,
		destination:     destination,
		destinationType: destinationType,
		root: &rootState{
			inFlight:  make(map[reflect.Type]struct{}),
			destCache: make(map[mapping.Mutator]any),
		},
	}
}

// child returns the context for one nested mapping invocation. The
// destination starts nil and may be filled in by a provider or by
// destination creation.
func (c *Context) child(source any, sourceType, destinationType reflect.Type, m *mapping.Mapping) *Context {
	return &Context{
		engine:          c.engine,
		parent:          c,
		source:          source,
		sourceType:      sourceType,
		destinationType: destinationType,
		mapping:         m,
		root:            c.root,
	}
}

func (c *Context) Source() any { return c.source }

func (c *Context) SourceType() reflect.Type { return c.sourceType }

func (c *Context) Destination() any { return c.destination }

func (c *Context) SetDestination(destination any) { c.destination = destination }

func (c *Context) DestinationType() reflect.Type { return c.destinationType }

// Parent returns the enclosing context, nil at the root.
func (c *Context) Parent() mapping.Context {
	if c.parent == nil {
		return nil
	}

	return c.parent
}

func (c *Context) Mapping() *mapping.Mapping { return c.mapping }

func (c *Context) TypeMap() *mapping.TypeMap { return c.typeMap }

func (c *Context) Engine() mapping.Engine { return c.engine }

// RequestedType makes a mapping-triggered Context usable as a
// ProvisionRequest.
func (c *Context) RequestedType() reflect.Type { return c.destinationType }

// currentlyMapping marks t as under construction and reports whether it
// already was. Balanced by finishedMapping on every exit path except the
// circular abort, which must leave the ancestor's marks untouched.
func (c *Context) currentlyMapping(t reflect.Type) bool {
	if _, ok := c.root.inFlight[t]; ok {
		return true
	}

	c.root.inFlight[t] = struct{}{}

	return false
}

func (c *Context) finishedMapping(t reflect.Type) {
	delete(c.root.inFlight, t)
}
