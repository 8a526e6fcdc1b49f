package protoreg

// FieldKind classifies a serializer field for type resolution. The set is
// closed: the external serializer layer classifies each field into one of
// these kinds before registration.
type FieldKind int

const (
	// KindPrimitive is a concrete field carrying a FieldType identifier.
	KindPrimitive FieldKind = iota

	// KindListSerializer is a repeated nested message backed by a child
	// serializer.
	KindListSerializer

	// KindNestedSerializer is a singular nested message backed by a child
	// serializer.
	KindNestedSerializer

	// KindSlugRelation addresses a related entity by a named attribute on
	// it rather than by primary key.
	KindSlugRelation

	// KindManyRelation wraps a child relation field to produce a set of
	// values.
	KindManyRelation

	// KindRelation references a single related entity by primary key.
	KindRelation

	// KindListStruct is a list serializer without a dedicated message.
	KindListStruct

	// KindModelField wraps a model field type identifier directly.
	KindModelField

	// KindList is a repeated wrapper around a child field.
	KindList

	// KindDict is a free-form mapping.
	KindDict

	// KindStruct is a serializer base with no specialized handling.
	KindStruct

	// KindMethod is a value computed by an accessor with a declared
	// return type.
	KindMethod
)

// String returns the kind name for debugging.
func (k FieldKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindListSerializer:
		return "list_serializer"
	case KindNestedSerializer:
		return "nested_serializer"
	case KindSlugRelation:
		return "slug_relation"
	case KindManyRelation:
		return "many_relation"
	case KindRelation:
		return "relation"
	case KindListStruct:
		return "list_struct"
	case KindModelField:
		return "model_field"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindStruct:
		return "struct"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// FieldDescriptor describes one declared serializer field. Only the
// fields relevant to its Kind are set.
type FieldDescriptor struct {
	Name string
	Kind FieldKind

	// FieldType is the host type identifier for KindPrimitive and
	// KindModelField.
	FieldType FieldType

	// ReadOnly fields are dropped from request messages, WriteOnly
	// fields from response messages, when separate request/response
	// generation is enabled. Hidden fields never appear at all.
	ReadOnly  bool
	WriteOnly bool
	Hidden    bool

	// Child is the wrapped field for KindManyRelation and KindList.
	Child *FieldDescriptor

	// Nested is the child serializer for KindNestedSerializer and
	// KindListSerializer.
	Nested Serializer

	// SlugField names the target attribute on the related entity for
	// KindSlugRelation.
	SlugField string

	// RelatedModel is the target entity for KindRelation.
	RelatedModel *ModelDescriptor

	// PKFieldType overrides the related entity's primary-key type for
	// KindRelation.
	PKFieldType FieldType

	// Returns is the declared accessor return type for KindMethod, as a
	// Go type literal such as "int64" or "[]string".
	Returns string
}
