package access

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"object-mapper/mapping"
)

var ErrNotAStruct = errors.New("owner type is not a struct")

type fieldKey struct {
	owner reflect.Type
	name  string
}

// Interned fields, one per (owner type, field name).
var fields sync.Map // fieldKey -> *Field

// Field is the read/write capability for one struct field. The same
// (owner, name) pair always resolves to the same *Field, so Fields are
// usable as identity keys.
type Field struct {
	owner reflect.Type
	name  string
	index []int
	typ   reflect.Type
}

var (
	_ mapping.Accessor  = (*Field)(nil)
	_ mapping.Mutator   = (*Field)(nil)
	_ mapping.Addresser = (*Field)(nil)
)

// FieldOf returns the shared Field for the named field of owner. Pointer
// owners are normalized to their element type.
func FieldOf(owner reflect.Type, name string) (*Field, error) {
	owner = mapping.Deref(owner)
	if owner == nil || owner.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotAStruct, typeName(owner))
	}

	key := fieldKey{owner: owner, name: name}
	if cached, ok := fields.Load(key); ok {
		return cached.(*Field), nil
	}

	sf, ok := owner.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("type %s has no field %q", owner, name)
	}

	f := &Field{owner: owner, name: name, index: sf.Index, typ: sf.Type}
	actual, _ := fields.LoadOrStore(key, f)

	return actual.(*Field), nil
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Type returns the declared field type.
func (f *Field) Type() reflect.Type { return f.typ }

func (f *Field) String() string { return f.owner.String() + "." + f.name }

// Get reads the field off instance. It returns nil when the instance, any
// pointer on the way in, or a nilable field value is nil.
func (f *Field) Get(instance any) any {
	rv := reflect.ValueOf(instance)

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct || rv.Type() != f.owner {
		return nil
	}

	fv := rv.FieldByIndex(f.index)

	switch fv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if fv.IsNil() {
			return nil
		}
	}

	return fv.Interface()
}

// Set writes value into the field of instance. The instance must be a
// pointer to the owner struct. A nil value writes the field's zero value;
// pointer mismatches between value and field are lifted or dereferenced,
// and Go-convertible values are converted. Incompatible values panic, as
// reflect itself would.
func (f *Field) Set(instance, value any) {
	rv := reflect.ValueOf(instance)

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			panic("access: Set on nil " + typeName(rv.Type()))
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct || rv.Type() != f.owner {
		panic(fmt.Sprintf("access: Set of %s on instance of %s", f, typeName(reflect.TypeOf(instance))))
	}

	f.assign(rv.FieldByIndex(f.index), value)
}

// Addr returns a pointer to the field slot inside instance, or nil when
// the slot is not an addressable struct.
func (f *Field) Addr(instance any) any {
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct || rv.Type() != f.owner {
		return nil
	}

	fv := rv.FieldByIndex(f.index)
	if fv.Kind() != reflect.Struct || !fv.CanAddr() {
		return nil
	}

	return fv.Addr().Interface()
}

func (f *Field) assign(fv reflect.Value, value any) {
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return
	}

	v := reflect.ValueOf(value)

	switch {
	case v.Type().AssignableTo(fv.Type()):
		fv.Set(v)

	case v.Kind() == reflect.Pointer && v.Type().Elem().AssignableTo(fv.Type()):
		// Deref: *T value into T field.
		if v.IsNil() {
			fv.Set(reflect.Zero(fv.Type()))
		} else {
			fv.Set(v.Elem())
		}

	case fv.Kind() == reflect.Pointer && v.Type().AssignableTo(fv.Type().Elem()):
		// Lift: T value into *T field.
		p := reflect.New(fv.Type().Elem())
		p.Elem().Set(v)
		fv.Set(p)

	case v.Type().ConvertibleTo(fv.Type()):
		fv.Set(v.Convert(fv.Type()))

	default:
		panic(fmt.Sprintf("access: cannot assign %s to %s", v.Type(), f))
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
