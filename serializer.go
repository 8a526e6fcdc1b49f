package protoreg

// Serializer is the engine's view of one serializer: an ordered set of
// classified fields, optionally backed by a host model. Implementations
// come from the external serializer layer; SerializerDescriptor is a
// ready-made one.
type Serializer interface {
	// Name returns the serializer's class-style name, e.g.
	// "PostProtoSerializer". Message names derive from it.
	Name() string

	// Fields returns the declared fields in declaration order. Generated
	// message field order follows it.
	Fields() []FieldDescriptor

	// Model returns the backing model, or nil. Slug relations and
	// primary-key retention need it.
	Model() *ModelDescriptor

	// ListFieldName returns the declared name for the repeated field of
	// generated list messages, or "" for the configured default.
	ListFieldName() string
}

// SerializerDescriptor is a plain-data Serializer implementation.
type SerializerDescriptor struct {
	ClassName string
	FieldList []FieldDescriptor
	ModelRef  *ModelDescriptor
	ListAttr  string
}

func (s *SerializerDescriptor) Name() string { return s.ClassName }

func (s *SerializerDescriptor) Fields() []FieldDescriptor { return s.FieldList }

func (s *SerializerDescriptor) Model() *ModelDescriptor { return s.ModelRef }

func (s *SerializerDescriptor) ListFieldName() string { return s.ListAttr }

// findField looks up a declared field by name.
func findField(s Serializer, name string) (FieldDescriptor, bool) {
	for _, f := range s.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}
