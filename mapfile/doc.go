// Package mapfile provides YAML schema definitions, parsing, validation,
// and TypeMap construction for explicit mapping definitions.
//
// A mapping file pins field-level rules for source/target type pairs and
// refers to types, converters, conditions and providers by name; the
// names are resolved against a Registry supplied by the caller. No
// name-matching heuristics are involved: only the listed rules are built.
//
// # Schema Overview
//
//	version: "1"
//	mappings:
//	  - source: store.Order
//	    target: warehouse.Order
//	    fields:
//	      - target: OrderNumber
//	        source: Reference
//	      - target: Customer.Email        # nested destination path
//	        source: Client.Contact.Email
//	      - target: Status                # constant value
//	        constant: "pending"
//	      - target: Origin                # whole source object
//	        from_source: true
//	        converter: OrderOrigin        # named converter
//	      - target: Internal
//	        skip: true
//
// Field paths are dotted ("Customer.Email") and resolve through pointers.
// A field entry carries exactly one of source, constant or from_source,
// unless it only skips its target.
package mapfile
