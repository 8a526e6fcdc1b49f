// Package testfixtures provides model, serializer, and service fixtures
// used for testing the protoreg package.
package testfixtures

import (
	"fmt"

	"github.com/broady/protoreg"
	"github.com/broady/protoreg/pagination"
)

// PublisherModel is a test fixture for registration tests.
func PublisherModel() *protoreg.ModelDescriptor {
	return &protoreg.ModelDescriptor{
		Name:       "Publisher",
		PrimaryKey: protoreg.ModelField{Name: "id", Type: protoreg.AutoField},
		Fields: []protoreg.ModelField{
			{Name: "name", Type: protoreg.CharField},
			{Name: "code", Type: protoreg.SlugFieldType},
		},
	}
}

// TagModel is a test fixture for registration tests.
func TagModel() *protoreg.ModelDescriptor {
	return &protoreg.ModelDescriptor{
		Name:       "Tag",
		PrimaryKey: protoreg.ModelField{Name: "id", Type: protoreg.BigAutoField},
		Fields: []protoreg.ModelField{
			{Name: "label", Type: protoreg.CharField},
			{Name: "weight", Type: protoreg.IntegerField},
		},
	}
}

// AuthorModel is a test fixture for registration tests.
func AuthorModel() *protoreg.ModelDescriptor {
	m := &protoreg.ModelDescriptor{
		Name:       "Author",
		PrimaryKey: protoreg.ModelField{Name: "id", Type: protoreg.AutoField},
		Fields: []protoreg.ModelField{
			{Name: "name", Type: protoreg.CharField},
			{Name: "email", Type: protoreg.EmailField},
			{Name: "rating", Type: protoreg.FloatField},
		},
	}
	m.Relationships = map[string]protoreg.Relationship{
		"publisher": {
			Field:        protoreg.ModelField{Name: "publisher", Type: protoreg.IntegerField},
			RelatedModel: PublisherModel(),
		},
	}
	return m
}

// PostModel is a test fixture for registration tests.
func PostModel() *protoreg.ModelDescriptor {
	m := &protoreg.ModelDescriptor{
		Name:       "Post",
		PrimaryKey: protoreg.ModelField{Name: "id", Type: protoreg.AutoField},
		Fields: []protoreg.ModelField{
			{Name: "title", Type: protoreg.CharField},
			{Name: "body", Type: protoreg.TextField},
			{Name: "published", Type: protoreg.BooleanField},
			{Name: "metadata", Type: protoreg.JSONField},
			{Name: "created_at", Type: protoreg.DateTimeField},
		},
	}
	m.Relationships = map[string]protoreg.Relationship{
		"author": {
			Field:        protoreg.ModelField{Name: "author", Type: protoreg.IntegerField},
			RelatedModel: AuthorModel(),
		},
		"tags": {
			Field:        protoreg.ModelField{Name: "tags", Type: protoreg.IntegerField},
			RelatedModel: TagModel(),
			ToMany:       true,
		},
	}
	return m
}

// AuthorSerializer is a test fixture covering primitive fields and
// read/write visibility, with a read-only primary key.
func AuthorSerializer() *protoreg.SerializerDescriptor {
	return &protoreg.SerializerDescriptor{
		ClassName: "AuthorProtoSerializer",
		ModelRef:  AuthorModel(),
		FieldList: []protoreg.FieldDescriptor{
			{Name: "id", Kind: protoreg.KindPrimitive, FieldType: protoreg.AutoField, ReadOnly: true},
			{Name: "name", Kind: protoreg.KindPrimitive, FieldType: protoreg.CharField},
			{Name: "email", Kind: protoreg.KindPrimitive, FieldType: protoreg.EmailField},
			{Name: "password", Kind: protoreg.KindPrimitive, FieldType: protoreg.CharField, WriteOnly: true},
			{Name: "created_at", Kind: protoreg.KindPrimitive, FieldType: protoreg.DateTimeField, ReadOnly: true},
		},
	}
}

// CommentSerializer is a test fixture used as a nested child.
func CommentSerializer() *protoreg.SerializerDescriptor {
	return &protoreg.SerializerDescriptor{
		ClassName: "CommentProtoSerializer",
		FieldList: []protoreg.FieldDescriptor{
			{Name: "id", Kind: protoreg.KindPrimitive, FieldType: protoreg.AutoField},
			{Name: "text", Kind: protoreg.KindPrimitive, FieldType: protoreg.TextField},
		},
	}
}

// PostSerializer is a test fixture covering relations: a plain relation
// on author, a many slug relation on tags, and a struct-typed metadata
// field.
func PostSerializer() *protoreg.SerializerDescriptor {
	return &protoreg.SerializerDescriptor{
		ClassName: "PostProtoSerializer",
		ModelRef:  PostModel(),
		FieldList: []protoreg.FieldDescriptor{
			{Name: "id", Kind: protoreg.KindPrimitive, FieldType: protoreg.AutoField, ReadOnly: true},
			{Name: "title", Kind: protoreg.KindPrimitive, FieldType: protoreg.CharField},
			{Name: "metadata", Kind: protoreg.KindPrimitive, FieldType: protoreg.JSONField},
			{Name: "author", Kind: protoreg.KindRelation, RelatedModel: AuthorModel()},
			{
				Name: "tags",
				Kind: protoreg.KindManyRelation,
				Child: &protoreg.FieldDescriptor{
					Name:      "tags",
					Kind:      protoreg.KindSlugRelation,
					SlugField: "label",
				},
			},
		},
	}
}

// PostDetailSerializer is a test fixture with a repeated nested child.
func PostDetailSerializer() *protoreg.SerializerDescriptor {
	return &protoreg.SerializerDescriptor{
		ClassName: "PostDetailProtoSerializer",
		ModelRef:  PostModel(),
		ListAttr:  "items",
		FieldList: []protoreg.FieldDescriptor{
			{Name: "id", Kind: protoreg.KindPrimitive, FieldType: protoreg.AutoField, ReadOnly: true},
			{Name: "title", Kind: protoreg.KindPrimitive, FieldType: protoreg.CharField},
			{Name: "comments", Kind: protoreg.KindListSerializer, Nested: CommentSerializer(), ReadOnly: true},
		},
	}
}

// CategorySerializer is a test fixture with a self-referential nested
// field.
func CategorySerializer() *protoreg.SerializerDescriptor {
	s := &protoreg.SerializerDescriptor{
		ClassName: "CategoryProtoSerializer",
		FieldList: []protoreg.FieldDescriptor{
			{Name: "id", Kind: protoreg.KindPrimitive, FieldType: protoreg.AutoField},
			{Name: "label", Kind: protoreg.KindPrimitive, FieldType: protoreg.CharField},
		},
	}
	s.FieldList = append(s.FieldList, protoreg.FieldDescriptor{
		Name:   "parent",
		Kind:   protoreg.KindNestedSerializer,
		Nested: s,
	})
	return s
}

// StatsSerializer is a test fixture with method-computed fields carrying
// declared return types.
func StatsSerializer() *protoreg.SerializerDescriptor {
	return &protoreg.SerializerDescriptor{
		ClassName: "StatsProtoSerializer",
		FieldList: []protoreg.FieldDescriptor{
			{Name: "total", Kind: protoreg.KindMethod, Returns: "int64"},
			{Name: "breakdown", Kind: protoreg.KindMethod, Returns: "map[string]any"},
		},
	}
}

// BrokenStatsSerializer is a test fixture whose method field declares no
// return type, which is a registration error.
func BrokenStatsSerializer() *protoreg.SerializerDescriptor {
	return &protoreg.SerializerDescriptor{
		ClassName: "BrokenStatsProtoSerializer",
		FieldList: []protoreg.FieldDescriptor{
			{Name: "total", Kind: protoreg.KindMethod},
		},
	}
}

// FakeService implements protoreg.Service with canned data.
type FakeService struct {
	Name        string
	Serializers map[string]protoreg.Serializer
	Default     protoreg.Serializer
	Lookup      string
	Kinds       []protoreg.MethodKind
	Pagination  *pagination.Config
}

func (s *FakeService) ServiceName() string { return s.Name }

func (s *FakeService) Serializer(action string) (protoreg.Serializer, error) {
	if ser, ok := s.Serializers[action]; ok {
		return ser, nil
	}
	if s.Default != nil {
		return s.Default, nil
	}
	return nil, fmt.Errorf("no serializer configured for action %s", action)
}

func (s *FakeService) LookupField() string { return s.Lookup }

func (s *FakeService) Methods() []protoreg.MethodKind { return s.Kinds }

func (s *FakeService) Paginated() bool { return s.Pagination != nil }

// AuthorService is a full CRUD service over AuthorSerializer.
func AuthorService() *FakeService {
	return &FakeService{
		Name:    "Author",
		Default: AuthorSerializer(),
		Lookup:  "id",
		Kinds: []protoreg.MethodKind{
			protoreg.MethodList,
			protoreg.MethodCreate,
			protoreg.MethodRetrieve,
			protoreg.MethodUpdate,
			protoreg.MethodPartialUpdate,
			protoreg.MethodDestroy,
		},
	}
}

// PostService is a paginated list/retrieve/stream service over
// PostSerializer.
func PostService() *FakeService {
	return &FakeService{
		Name:    "Post",
		Default: PostSerializer(),
		Lookup:  "id",
		Kinds: []protoreg.MethodKind{
			protoreg.MethodList,
			protoreg.MethodRetrieve,
			protoreg.MethodStream,
		},
		Pagination: &pagination.Config{PageSize: 20, MaxPageSize: 100},
	}
}
