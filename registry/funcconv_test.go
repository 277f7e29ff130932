package registry_test

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"object-mapper/registry"
	"object-mapper/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func full(string) (int, bool, error)  { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }
func nullary() int                    { panic("not implemented") }

func ExampleParseFunc() {
	conv, err := registry.ParseFunc(full)
	fmt.Println(err, conv.Name())

	conv, err = registry.ParseFunc(strconv.Itoa)
	fmt.Println(err, conv.Name())

	_, err = registry.ParseFunc(42)
	fmt.Println(err)

	_, err = registry.ParseFunc(nullary)
	fmt.Println(err)

	_, err = registry.ParseFunc(wrong)
	fmt.Println(err)

	// Output:
	// <nil> registry_test.full
	// <nil> strconv.Itoa
	// provided converter is not a function
	// provided function is not a recognizable converter
	// provided function is not a recognizable converter
}

func TestParseFuncShapes(t *testing.T) {
	_, err := registry.ParseFunc(func(int) string { return "" })
	assert.NoError(t, err)

	_, err = registry.ParseFunc(func(int) (string, bool) { return "", false })
	assert.NoError(t, err)

	_, err = registry.ParseFunc(strconv.Atoi)
	assert.NoError(t, err)

	_, err = registry.ParseFunc(func(int) (string, bool, error) { return "", false, nil })
	assert.NoError(t, err)

	_, err = registry.ParseFunc(func(**int) string { return "" })
	assert.ErrorIs(t, err, registry.ErrDoublePointer)

	_, err = registry.ParseFunc(func(int) **string { return nil })
	assert.ErrorIs(t, err, registry.ErrDoublePointer)

	_, err = registry.ParseFunc(func(int, int) string { return "" })
	assert.ErrorIs(t, err, registry.ErrNotAConverter)
}

func TestFuncConverterSupports(t *testing.T) {
	conv := registry.MustParseFunc(func(c *store.Customer) string { return c.FullName })

	customerType := reflect.TypeOf(store.Customer{})
	stringType := reflect.TypeOf("")

	// Pointer layers are stripped on both sides.
	assert.True(t, conv.Supports(customerType, stringType))
	assert.False(t, conv.Supports(stringType, customerType))
	assert.False(t, conv.Supports(customerType, reflect.TypeOf(0)))
}

func TestFuncConverterConvert(t *testing.T) {
	itoa := registry.MustParseFunc(strconv.Itoa)

	got, err := itoa.Convert(&testContext{source: 42})
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	// Nil sources convert to nil without invoking the function.
	got, err = itoa.Convert(&testContext{source: nil})
	require.NoError(t, err)
	assert.Nil(t, got)

	atoi := registry.MustParseFunc(strconv.Atoi)

	got, err = atoi.Convert(&testContext{source: "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = atoi.Convert(&testContext{source: "seven"})
	assert.Error(t, err)
}

func TestFuncConverterBoolResult(t *testing.T) {
	lookup := registry.MustParseFunc(func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})

	got, err := lookup.Convert(&testContext{source: "5"})
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	// A false bool result means "no value", not an error.
	got, err = lookup.Convert(&testContext{source: "five"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFuncConverterInputAdaptation(t *testing.T) {
	byPointer := registry.MustParseFunc(func(c *store.Customer) string { return c.FullName })

	// Value source lifted into the pointer parameter.
	got, err := byPointer.Convert(&testContext{source: store.Customer{FullName: "Avery"}})
	require.NoError(t, err)
	assert.Equal(t, "Avery", got)

	// Pointer source into a value parameter is dereferenced.
	byValue := registry.MustParseFunc(func(c store.Customer) string { return c.FullName })
	name := &store.Customer{FullName: "Quinn"}

	got, err = byValue.Convert(&testContext{source: name})
	require.NoError(t, err)
	assert.Equal(t, "Quinn", got)

	// Convertible named types are converted.
	lower := registry.MustParseFunc(func(s string) string { return strings.ToLower(s) })

	got, err = lower.Convert(&testContext{source: store.StatusPaid})
	require.NoError(t, err)
	assert.Equal(t, "paid", got)
}
