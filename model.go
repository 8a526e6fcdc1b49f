package protoreg

// ModelField describes one concrete field on a host model.
type ModelField struct {
	Name string
	Type FieldType
}

// Relationship describes one relation declared on a host model, keyed in
// ModelDescriptor.Relationships by the name of the declaring field.
type Relationship struct {
	// Field is the model field that declares the relation.
	Field ModelField

	// RelatedModel is the entity the relation points at.
	RelatedModel *ModelDescriptor

	// ToMany is true for relations producing a set of values. Slug
	// relations over a to-many relationship resolve to a repeated type.
	ToMany bool

	// ToField is the attribute the relation targets on the related
	// entity, when it is not the primary key.
	ToField string

	// HasThrough is true when the relation goes through an intermediate
	// entity.
	HasThrough bool

	// Reverse is true for relations declared on the other side.
	Reverse bool
}

// ModelDescriptor is the engine's view of a host model: its primary key,
// concrete fields, and relationships. It is supplied by the external
// model layer and only ever read here.
type ModelDescriptor struct {
	Name          string
	PrimaryKey    ModelField
	Fields        []ModelField
	Relationships map[string]Relationship
}

// FieldByName looks up a field by name, including the primary key.
func (m *ModelDescriptor) FieldByName(name string) (ModelField, bool) {
	if m.PrimaryKey.Name == name {
		return m.PrimaryKey, true
	}
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ModelField{}, false
}
