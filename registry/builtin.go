package registry

import (
	"reflect"

	"object-mapper/mapping"
	"object-mapper/primitive"
)

// Builtins returns the stock conditional converters in priority order:
// directly assignable values, same-kind Go conversion, then guarded
// primitive conversion for the default categories.
func Builtins() []ConditionalConverter {
	return []ConditionalConverter{
		AssignableConverter(),
		ConvertibleConverter(),
		PrimitiveConverter(primitive.CategoryDefault),
	}
}

// AssignableConverter returns a converter for pairs whose source value is
// directly assignable to the destination type.
func AssignableConverter() ConditionalConverter {
	return assignableConverter{}
}

type assignableConverter struct{}

func (assignableConverter) Supports(sourceType, destinationType reflect.Type) bool {
	return sourceType != nil && destinationType != nil && sourceType.AssignableTo(destinationType)
}

func (assignableConverter) Convert(ctx mapping.Context) (any, error) {
	source := ctx.Source()
	if source == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(source)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	return rv.Interface(), nil
}

// ConvertibleConverter returns a converter for pairs Go converts directly
// within the same kind: named scalars to their underlying type and back,
// and structurally identical structs. Cross-kind conversion is left to
// PrimitiveConverter, so int never converts to string as a rune.
func ConvertibleConverter() ConditionalConverter {
	return convertibleConverter{}
}

type convertibleConverter struct{}

func (convertibleConverter) Supports(sourceType, destinationType reflect.Type) bool {
	return sourceType != nil && destinationType != nil &&
		sourceType.Kind() == destinationType.Kind() &&
		sourceType.ConvertibleTo(destinationType)
}

func (convertibleConverter) Convert(ctx mapping.Context) (any, error) {
	source := ctx.Source()
	if source == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(source)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	return rv.Convert(ctx.DestinationType()).Interface(), nil
}

// PrimitiveConverter returns a converter performing guarded scalar
// conversion for the pairs enabled by categories.
func PrimitiveConverter(categories primitive.CategoryEnum) ConditionalConverter {
	return primitiveConverter{categories: categories}
}

type primitiveConverter struct {
	categories primitive.CategoryEnum
}

func (c primitiveConverter) Supports(sourceType, destinationType reflect.Type) bool {
	from := primitive.FromReflectType(sourceType)
	to := primitive.FromReflectType(destinationType)

	return primitive.CanConvert(from, to, c.categories)
}

func (c primitiveConverter) Convert(ctx mapping.Context) (any, error) {
	source := ctx.Source()
	if source == nil {
		return nil, nil
	}

	return primitive.Convert(source, ctx.DestinationType())
}
