package engine

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"object-mapper/mapping"
)

//go:generate go tool stringer -type=ErrorKind -output=kind_string.go

// ErrorKind classifies the failures recorded during a mapping call.
type ErrorKind int

const (
	_ ErrorKind = iota // skip zero value, use it as a default (invalid) value for ErrorKind

	// ErrorMapping is a general failure that unwound the top-level call.
	ErrorMapping
	// ErrorCircularMapping reports a destination type revisited while
	// already under construction.
	ErrorCircularMapping
	// ErrorUnsupportedMapping reports a pair with no TypeMap, no converter
	// and no existing destination to fall back on.
	ErrorUnsupportedMapping
	// ErrorConverting reports a converter that returned an error.
	ErrorConverting
	// ErrorInstantiatingDestination reports a failed default construction.
	ErrorInstantiatingDestination

	// ErrorKindTotal is a constant that represents the total number of kinds defined
	ErrorKindTotal = int(iota)
)

// ErrConfiguration marks caller misuse. Errors wrapping it are returned
// immediately from Map and never aggregated.
var ErrConfiguration = errors.New("invalid mapping configuration")

// Record is one failure captured during a mapping call.
type Record struct {
	Kind            ErrorKind
	SourceType      reflect.Type
	DestinationType reflect.Type

	// Converter is set for ErrorConverting records.
	Converter mapping.Converter

	// Err is the underlying cause, may be nil.
	Err error
}

func (r Record) Error() string {
	pair := mapping.PairOf(r.SourceType, r.DestinationType)

	var msg string
	switch r.Kind {
	case ErrorCircularMapping:
		msg = fmt.Sprintf("circular mapping detected for %s", pair)
	case ErrorUnsupportedMapping:
		msg = fmt.Sprintf("unsupported mapping %s", pair)
	case ErrorConverting:
		msg = fmt.Sprintf("converter %T failed for %s", r.Converter, pair)
	case ErrorInstantiatingDestination:
		msg = fmt.Sprintf("failed to instantiate destination %s", typeName(r.DestinationType))
	default:
		msg = fmt.Sprintf("error mapping %s", pair)
	}

	if r.Err != nil {
		msg += ": " + r.Err.Error()
	}

	return msg
}

func (r Record) Unwrap() error { return r.Err }

// MappingError is the aggregated failure returned by Engine.Map when any
// Record was captured during the call.
type MappingError struct {
	Records []Record
}

func (e *MappingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mapping failed with %d error(s):", len(e.Records))

	for _, r := range e.Records {
		b.WriteString("\n\t")
		b.WriteString(r.Error())
	}

	return b.String()
}

// Unwrap exposes the individual records to errors.Is and errors.As.
func (e *MappingError) Unwrap() []error {
	out := make([]error, len(e.Records))
	for i, r := range e.Records {
		out[i] = r
	}

	return out
}

// errorList accumulates Records for one top-level call. It is owned by the
// root context and shared by reference down the chain, so it needs no
// synchronization.
type errorList struct {
	records []Record
}

func (l *errorList) add(r Record) { l.records = append(l.records, r) }

func (l *errorList) asError() error {
	if len(l.records) == 0 {
		return nil
	}

	return &MappingError{Records: l.records}
}

// abortError wraps a Record that is already in the accumulator and only
// unwinds the call, so Map does not record it twice.
type abortError struct {
	rec Record
}

func (e *abortError) Error() string { return e.rec.Error() }

func (e *abortError) Unwrap() error { return e.rec }

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
