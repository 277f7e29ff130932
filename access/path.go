package access

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"object-mapper/mapping"
)

var ErrEmptyPath = errors.New("empty path")

// Path resolves a dotted field path against the root type and returns the
// shared Field chain. Supports "Field" and "Nested.Field"; every
// non-terminal step must resolve to a struct (pointers are stepped
// through).
func Path(root reflect.Type, path string) ([]*Field, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var chain []*Field
	owner := root

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !isValidIdent(part) {
			return nil, fmt.Errorf("invalid path %q: invalid identifier %q", path, part)
		}

		f, err := FieldOf(owner, part)
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", path, err)
		}

		chain = append(chain, f)
		owner = mapping.Deref(f.Type())
	}

	return chain, nil
}

// Accessors widens a Field chain to a source accessor chain.
func Accessors(chain []*Field) []mapping.Accessor {
	out := make([]mapping.Accessor, len(chain))
	for i, f := range chain {
		out[i] = f
	}

	return out
}

// Mutators widens a Field chain to a destination mutator chain.
func Mutators(chain []*Field) []mapping.Mutator {
	out := make([]mapping.Mutator, len(chain))
	for i, f := range chain {
		out[i] = f
	}

	return out
}

// MustAccessors resolves path against root as an accessor chain, panicking
// on invalid paths. Intended for configuration code where the path is a
// literal.
func MustAccessors(root reflect.Type, path string) []mapping.Accessor {
	chain, err := Path(root, path)
	if err != nil {
		panic(err)
	}

	return Accessors(chain)
}

// MustMutators resolves path against root as a mutator chain, panicking on
// invalid paths.
func MustMutators(root reflect.Type, path string) []mapping.Mutator {
	chain, err := Path(root, path)
	if err != nil {
		panic(err)
	}

	return Mutators(chain)
}

// isValidIdent checks that name is a plausible Go identifier.
func isValidIdent(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'

		if i == 0 && !isLetter {
			return false
		}
		if !isLetter && !isDigit {
			return false
		}
	}

	return true
}
