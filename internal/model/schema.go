package model

// SchemaKind discriminates the shape of a SchemaDef. The kind is decided
// once, when a document is transformed, so consumers switch on it instead of
// re-probing raw schema fields.
type SchemaKind string

const (
	KindReference   SchemaKind = "reference"
	KindPrimitive   SchemaKind = "primitive"
	KindEnum        SchemaKind = "enum"
	KindArray       SchemaKind = "array"
	KindComposition SchemaKind = "composition"
	KindObject      SchemaKind = "object"
	KindAny         SchemaKind = "any"
)

// SchemaDef is a schema node. References stay opaque: a node pointing at a
// named definition carries the bare name in Ref and nothing else, so trees
// never embed their targets and cyclic documents stay finite.
type SchemaDef struct {
	Name        string
	Description string
	Kind        SchemaKind

	// Reference target (bare definition name, e.g. "Pet")
	Ref string

	// Primitive type and optional format; Type also records the declared
	// base type of enum nodes
	Type   string
	Format string

	// Enum literal values as written
	Enum []string

	// Array items
	Items *SchemaDef

	// Composition members (allOf/oneOf/anyOf, declared order)
	Members []*SchemaDef

	// Object properties
	Properties []Property
	Required   []string

	// Schema-valued additionalProperties
	AdditionalProps *SchemaDef
}

type Property struct {
	Name   string
	Schema *SchemaDef
}
