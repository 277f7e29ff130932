package registry

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"object-mapper/mapping"
	"object-mapper/utils"
)

var (
	ErrNotAFunction  = errors.New("provided converter is not a function")
	ErrNotAConverter = errors.New("provided function is not a recognizable converter")
	ErrDoublePointer = errors.New("converter functions do not support double pointers")
)

// FuncConverter wraps a plain Go function as a conditional converter.
type FuncConverter struct {
	src, dst reflect.Type
	fn       reflect.Value
	name     string

	hasBool bool
	hasErr  bool
}

var _ ConditionalConverter = (*FuncConverter)(nil)

// ParseFunc inspects fn and wraps it as a FuncConverter.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
//
// A false bool result means "no value" and maps to nil without error.
func ParseFunc(fn any) (*FuncConverter, error) {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return nil, ErrNotAConverter
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Pointer && src.Elem().Kind() == reflect.Pointer {
		return nil, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Pointer && dst.Elem().Kind() == reflect.Pointer {
		return nil, ErrDoublePointer
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	conv := &FuncConverter{
		src:  src,
		dst:  dst,
		fn:   fnVal,
		name: utils.Second(path.Split(alias)) + "." + name,
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrNotAConverter

	case 1:
		return conv, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return nil, ErrNotAConverter
		case last.Kind() == reflect.Bool:
			conv.hasBool = true
		case isError(last):
			conv.hasErr = true
		}
		return conv, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return nil, ErrNotAConverter
		}

		conv.hasBool = true
		conv.hasErr = true
		return conv, nil
	}
}

// MustParseFunc is ParseFunc panicking on invalid functions. Intended for
// configuration code.
func MustParseFunc(fn any) *FuncConverter {
	conv, err := ParseFunc(fn)
	if err != nil {
		panic(err)
	}

	return conv
}

// Name returns the package-qualified name of the wrapped function.
func (c *FuncConverter) Name() string { return c.name }

func (c *FuncConverter) String() string { return "FuncConverter[" + c.name + "]" }

func (c *FuncConverter) Supports(sourceType, destinationType reflect.Type) bool {
	return mapping.Deref(c.src) == sourceType && mapping.Deref(c.dst) == destinationType
}

func (c *FuncConverter) Convert(ctx mapping.Context) (any, error) {
	source := ctx.Source()
	if source == nil {
		return nil, nil
	}

	in, ok := c.inputFor(source)
	if !ok {
		return nil, fmt.Errorf("converter %s cannot accept %T", c.name, source)
	}

	outs := c.fn.Call([]reflect.Value{in})

	if c.hasBool && !outs[1].Bool() {
		return nil, nil
	}
	if c.hasErr {
		if errVal := outs[len(outs)-1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}

	return outs[0].Interface(), nil
}

// inputFor adapts the source value to the function's input type, lifting
// or dereferencing one pointer layer when needed.
func (c *FuncConverter) inputFor(source any) (reflect.Value, bool) {
	rv := reflect.ValueOf(source)

	switch {
	case rv.Type() == c.src:
		return rv, true

	case rv.Kind() == reflect.Pointer && rv.Type().Elem() == c.src:
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		return rv.Elem(), true

	case c.src.Kind() == reflect.Pointer && rv.Type() == c.src.Elem():
		p := reflect.New(c.src.Elem())
		p.Elem().Set(rv)
		return p, true

	case rv.Type().ConvertibleTo(c.src):
		return rv.Convert(c.src), true
	}

	return reflect.Value{}, false
}

func isError(t reflect.Type) bool {
	return t.Implements(reflect.TypeOf((*error)(nil)).Elem())
}
