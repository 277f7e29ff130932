package access_test

import (
	"reflect"
	"testing"

	"object-mapper/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Label string
}

type outer struct {
	Name    string
	Count   int
	Ptr     *inner
	Value   inner
	OptMsg  *string
	Seconds int64
}

var (
	outerType = reflect.TypeOf(outer{})
	innerType = reflect.TypeOf(inner{})
)

func TestFieldOfInterning(t *testing.T) {
	a, err := access.FieldOf(outerType, "Name")
	require.NoError(t, err)

	b, err := access.FieldOf(reflect.PointerTo(outerType), "Name")
	require.NoError(t, err)

	// Same (owner, name) pair must resolve to the same instance, pointer
	// owners included; Fields act as identity keys.
	assert.Same(t, a, b)

	other, err := access.FieldOf(outerType, "Count")
	require.NoError(t, err)
	assert.NotSame(t, a, other)
}

func TestFieldOfErrors(t *testing.T) {
	_, err := access.FieldOf(outerType, "Missing")
	assert.Error(t, err)

	_, err = access.FieldOf(reflect.TypeOf(0), "Name")
	assert.ErrorIs(t, err, access.ErrNotAStruct)

	_, err = access.FieldOf(nil, "Name")
	assert.ErrorIs(t, err, access.ErrNotAStruct)
}

func TestFieldGet(t *testing.T) {
	name, err := access.FieldOf(outerType, "Name")
	require.NoError(t, err)
	ptr, err := access.FieldOf(outerType, "Ptr")
	require.NoError(t, err)
	label, err := access.FieldOf(innerType, "Label")
	require.NoError(t, err)

	instance := &outer{Name: "a", Ptr: &inner{Label: "deep"}}

	assert.Equal(t, "a", name.Get(instance))
	assert.Equal(t, "a", name.Get(*instance))

	got := ptr.Get(instance)
	require.NotNil(t, got)
	assert.Equal(t, "deep", label.Get(got))

	// Nil on the way in short-circuits to nil.
	assert.Nil(t, name.Get(nil))
	assert.Nil(t, name.Get((*outer)(nil)))
	assert.Nil(t, ptr.Get(&outer{}))

	// Foreign instances read as nil rather than panicking.
	assert.Nil(t, name.Get(inner{}))
}

func TestFieldSet(t *testing.T) {
	name, err := access.FieldOf(outerType, "Name")
	require.NoError(t, err)
	optMsg, err := access.FieldOf(outerType, "OptMsg")
	require.NoError(t, err)
	seconds, err := access.FieldOf(outerType, "Seconds")
	require.NoError(t, err)

	instance := &outer{}

	name.Set(instance, "hello")
	assert.Equal(t, "hello", instance.Name)

	// Nil writes the zero value.
	name.Set(instance, nil)
	assert.Equal(t, "", instance.Name)

	// T value into *T field is lifted.
	optMsg.Set(instance, "msg")
	require.NotNil(t, instance.OptMsg)
	assert.Equal(t, "msg", *instance.OptMsg)

	// *T value into T field is dereferenced.
	v := "other"
	name.Set(instance, &v)
	assert.Equal(t, "other", instance.Name)

	// Go-convertible values are converted.
	seconds.Set(instance, int(7))
	assert.Equal(t, int64(7), instance.Seconds)
}

func TestFieldSetPanics(t *testing.T) {
	name, err := access.FieldOf(outerType, "Name")
	require.NoError(t, err)

	assert.Panics(t, func() { name.Set((*outer)(nil), "x") })
	assert.Panics(t, func() { name.Set(&inner{}, "x") })
	assert.Panics(t, func() { name.Set(&outer{}, struct{ X int }{}) })
}

func TestFieldAddr(t *testing.T) {
	value, err := access.FieldOf(outerType, "Value")
	require.NoError(t, err)
	ptr, err := access.FieldOf(outerType, "Ptr")
	require.NoError(t, err)

	instance := &outer{}

	slot := value.Addr(instance)
	require.NotNil(t, slot)

	slot.(*inner).Label = "through slot"
	assert.Equal(t, "through slot", instance.Value.Label)

	// Only addressable struct slots can be addressed.
	assert.Nil(t, ptr.Addr(instance))
	assert.Nil(t, value.Addr(outer{}))
	assert.Nil(t, value.Addr((*outer)(nil)))
}
