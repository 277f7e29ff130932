package registry_test

import (
	"reflect"
	"testing"

	"object-mapper/mapping"
	"object-mapper/registry"

	"github.com/stretchr/testify/assert"
)

// testContext is a minimal mapping.Context carrying just the parts
// converters read.
type testContext struct {
	source          any
	sourceType      reflect.Type
	destinationType reflect.Type
}

func (c *testContext) Source() any { return c.source }

func (c *testContext) SourceType() reflect.Type {
	if c.sourceType == nil {
		return mapping.Deref(reflect.TypeOf(c.source))
	}

	return c.sourceType
}

func (c *testContext) Destination() any              { return nil }
func (c *testContext) SetDestination(any)            {}
func (c *testContext) DestinationType() reflect.Type { return c.destinationType }
func (c *testContext) Parent() mapping.Context       { return nil }
func (c *testContext) Mapping() *mapping.Mapping     { return nil }
func (c *testContext) TypeMap() *mapping.TypeMap     { return nil }
func (c *testContext) Engine() mapping.Engine        { return nil }

// namedConverter supports a single pair and reports its tag, so lookup
// order is observable.
type namedConverter struct {
	tag      string
	src, dst reflect.Type
}

func (c namedConverter) Supports(sourceType, destinationType reflect.Type) bool {
	return sourceType == c.src && destinationType == c.dst
}

func (c namedConverter) Convert(mapping.Context) (any, error) { return c.tag, nil }

func TestConverterRegistryOrder(t *testing.T) {
	intType := reflect.TypeOf(0)
	stringType := reflect.TypeOf("")

	first := namedConverter{tag: "first", src: intType, dst: stringType}
	second := namedConverter{tag: "second", src: intType, dst: stringType}
	other := namedConverter{tag: "other", src: stringType, dst: intType}

	reg := registry.NewConverterRegistry(first, second, other)

	got := reg.GetFirstSupported(intType, stringType)
	assert.Equal(t, first, got)

	assert.Equal(t, other, reg.GetFirstSupported(stringType, intType))
	assert.Nil(t, reg.GetFirstSupported(stringType, stringType))
}

func TestConverterRegistryAddPrepend(t *testing.T) {
	intType := reflect.TypeOf(0)
	stringType := reflect.TypeOf("")

	reg := registry.NewConverterRegistry()
	assert.Nil(t, reg.GetFirstSupported(intType, stringType))

	appended := namedConverter{tag: "appended", src: intType, dst: stringType}
	reg.Add(appended)
	assert.Equal(t, appended, reg.GetFirstSupported(intType, stringType))

	prepended := namedConverter{tag: "prepended", src: intType, dst: stringType}
	reg.Prepend(prepended)
	assert.Equal(t, prepended, reg.GetFirstSupported(intType, stringType))
}
