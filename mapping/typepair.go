package mapping

import "reflect"

// TypePair identifies a (source type, destination type) pair. It is
// comparable and immutable, suitable as a cache key.
type TypePair struct {
	Source      reflect.Type
	Destination reflect.Type
}

// PairOf returns the TypePair for the given source and destination types.
func PairOf(source, destination reflect.Type) TypePair {
	return TypePair{Source: source, Destination: destination}
}

func (p TypePair) String() string {
	return typeName(p.Source) + " -> " + typeName(p.Destination)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}

// Deref strips any pointer layers off t. A nil t is returned unchanged.
func Deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
