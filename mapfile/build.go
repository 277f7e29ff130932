package mapfile

import (
	"fmt"
	"reflect"

	"object-mapper/access"
	"object-mapper/mapping"
	"object-mapper/registry"
)

// Registry resolves the symbolic names a mapping file refers to. Types
// must be registered explicitly; converter, condition and provider maps
// may be nil when the file names none.
type Registry struct {
	Types      map[string]reflect.Type
	Converters map[string]mapping.Converter
	Conditions map[string]mapping.Condition
	Providers  map[string]mapping.Provider
}

// Build resolves mf against reg into TypeMaps. Resolution problems are
// collected per entry and reported together; entries that resolve cleanly
// are still returned.
func Build(mf *MappingFile, reg Registry) ([]*mapping.TypeMap, []error) {
	var (
		out  []*mapping.TypeMap
		errs []error
	)

	for i := range mf.TypeMappings {
		tm, tmErrs := buildTypeMap(&mf.TypeMappings[i], reg)
		errs = append(errs, tmErrs...)

		if tm != nil && len(tmErrs) == 0 {
			out = append(out, tm)
		}
	}

	return out, errs
}

// Register builds mf and registers the cleanly resolved TypeMaps on the
// store.
func Register(mf *MappingFile, reg Registry, store *registry.TypeMapRegistry) []error {
	typeMaps, errs := Build(mf, reg)

	for _, tm := range typeMaps {
		store.Put(tm)
	}

	return errs
}

func buildTypeMap(def *TypeMapping, reg Registry) (*mapping.TypeMap, []error) {
	var errs []error

	sourceType, ok := reg.Types[def.Source]
	if !ok {
		errs = append(errs, fmt.Errorf("mapping %q -> %q: unknown source type %q", def.Source, def.Target, def.Source))
	}

	targetType, ok := reg.Types[def.Target]
	if !ok {
		errs = append(errs, fmt.Errorf("mapping %q -> %q: unknown target type %q", def.Source, def.Target, def.Target))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	tm := mapping.NewTypeMap(sourceType, targetType)

	if def.Condition != "" {
		if cond, ok := reg.Conditions[def.Condition]; ok {
			tm.Condition = cond
		} else {
			errs = append(errs, fmt.Errorf("mapping %q -> %q: unknown condition %q", def.Source, def.Target, def.Condition))
		}
	}

	if def.Converter != "" {
		if conv, ok := reg.Converters[def.Converter]; ok {
			tm.Converter = conv
		} else {
			errs = append(errs, fmt.Errorf("mapping %q -> %q: unknown converter %q", def.Source, def.Target, def.Converter))
		}
	}

	if def.Provider != "" {
		if prov, ok := reg.Providers[def.Provider]; ok {
			tm.Provider = prov
		} else {
			errs = append(errs, fmt.Errorf("mapping %q -> %q: unknown provider %q", def.Source, def.Target, def.Provider))
		}
	}

	for i := range def.Fields {
		m, err := buildField(def, &def.Fields[i], sourceType, targetType, reg)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		tm.Add(m)
	}

	return tm, errs
}

func buildField(def *TypeMapping, f *FieldMapping, sourceType, targetType reflect.Type, reg Registry) (*mapping.Mapping, error) {
	fail := func(format string, args ...any) error {
		prefix := fmt.Sprintf("mapping %q -> %q, field %q: ", def.Source, def.Target, f.Target)
		return fmt.Errorf(prefix+format, args...)
	}

	if f.Target == "" {
		return nil, fail("missing target path")
	}

	targetChain, err := access.Path(targetType, f.Target)
	if err != nil {
		return nil, fail("%v", err)
	}
	mutators := access.Mutators(targetChain)

	variants := 0
	for _, set := range []bool{f.Source != "", f.Constant != nil, f.FromSource} {
		if set {
			variants++
		}
	}
	if variants > 1 {
		return nil, fail("source, constant and from_source are mutually exclusive")
	}

	var m *mapping.Mapping

	switch {
	case f.Source != "":
		sourceChain, err := access.Path(sourceType, f.Source)
		if err != nil {
			return nil, fail("%v", err)
		}
		m = mapping.NewPropertyMapping(access.Accessors(sourceChain), mutators)

	case f.Constant != nil:
		m = mapping.NewConstantMapping(f.Constant, mutators)

	case f.FromSource:
		m = mapping.NewSourceMapping(sourceType, mutators)

	case f.Skip && f.Condition == "":
		// A bare skip never resolves a source value.
		m = mapping.NewPropertyMapping(nil, mutators)

	default:
		return nil, fail("needs one of source, constant or from_source")
	}

	m.Skip = f.Skip

	if f.Converter != "" {
		conv, ok := reg.Converters[f.Converter]
		if !ok {
			return nil, fail("unknown converter %q", f.Converter)
		}
		m.Converter = conv
	}

	if f.Condition != "" {
		cond, ok := reg.Conditions[f.Condition]
		if !ok {
			return nil, fail("unknown condition %q", f.Condition)
		}
		m.Condition = cond
	}

	if f.Provider != "" {
		prov, ok := reg.Providers[f.Provider]
		if !ok {
			return nil, fail("unknown provider %q", f.Provider)
		}
		m.Provider = prov
	}

	return m, nil
}
