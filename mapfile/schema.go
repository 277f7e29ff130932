package mapfile

// MappingFile represents the root of a YAML mapping definition file.
// This is the authoritative, human-reviewed mapping configuration.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// TypeMappings is a list of type pair mappings.
	TypeMappings []TypeMapping `yaml:"mappings"`
}

// TypeMapping defines how to map one source type to one target type.
type TypeMapping struct {
	// Source type name, resolved against the Registry (e.g. "store.Order").
	Source string `yaml:"source"`

	// Target type name, resolved against the Registry.
	Target string `yaml:"target"`

	// Condition names a whole-object condition: when unsatisfied, every
	// field rule is skipped.
	Condition string `yaml:"condition,omitempty"`

	// Converter names a whole-object converter applied instead of field
	// rules.
	Converter string `yaml:"converter,omitempty"`

	// Provider names the destination instance provider for this pair.
	Provider string `yaml:"provider,omitempty"`

	// Fields defines the field-level rules, applied in listed order.
	Fields []FieldMapping `yaml:"fields,omitempty"`
}

// FieldMapping defines one field-level rule.
type FieldMapping struct {
	// Target is the destination field path, dotted for nested shapes.
	Target string `yaml:"target"`

	// Source is the source field path. Mutually exclusive with Constant
	// and FromSource.
	Source string `yaml:"source,omitempty"`

	// Constant is a literal destination value.
	Constant any `yaml:"constant,omitempty"`

	// FromSource maps the whole source object onto the target path,
	// usually combined with a converter.
	FromSource bool `yaml:"from_source,omitempty"`

	// Converter names the converter producing the destination value.
	Converter string `yaml:"converter,omitempty"`

	// Condition names the condition gating this rule.
	Condition string `yaml:"condition,omitempty"`

	// Provider names the provider for the rule's destination instance.
	Provider string `yaml:"provider,omitempty"`

	// Skip suppresses the rule; with a condition present, the condition
	// is still evaluated first.
	Skip bool `yaml:"skip,omitempty"`
}
