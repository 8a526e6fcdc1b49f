package protoreg

import (
	"log/slog"
	"strings"
)

// methodReturnTypes maps declared accessor return types, written as Go
// type literals, to target types. A method-computed field whose declared
// type is absent from this table is a registration error, unlike the
// open field-type table.
var methodReturnTypes = map[string]string{
	"int":     "int32",
	"int8":    "int32",
	"int16":   "int32",
	"int32":   "int32",
	"int64":   "int64",
	"uint":    "uint32",
	"uint32":  "uint32",
	"uint64":  "uint64",
	"string":  "string",
	"bool":    "bool",
	"float32": "float",
	"float64": "double",
	"[]byte":  "bytes",

	"time.Time": "string",

	"[]int":    "repeated int32",
	"[]string": "repeated string",
	"[]bool":   "repeated bool",
	"[]any":    "repeated string",

	"map[string]any":   StructType,
	"[]map[string]any": "repeated " + StructType,
}

// resolveField turns one serializer field into a type descriptor string:
// a scalar type name, a message name, or "repeated " + either. Nested and
// list-of-serializer kinds register their child serializer's message as a
// side effect. Missing relation metadata degrades to "string" with a
// warning; only a method-computed field with a missing or unsupported
// return declaration is an error.
func (r *Registry) resolveField(app *AppEntry, f FieldDescriptor, owner Serializer, isRequest bool) (string, error) {
	switch f.Kind {
	case KindListSerializer:
		if f.Nested == nil {
			return r.degrade(app, f.Name, "list serializer field has no child serializer"), nil
		}
		name, err := r.registerMessage(app, f.Nested, "", isRequest)
		if err != nil {
			return "", err
		}
		return repeatedPrefix + name, nil

	case KindNestedSerializer:
		if f.Nested == nil {
			return r.degrade(app, f.Name, "nested serializer field has no child serializer"), nil
		}
		return r.registerMessage(app, f.Nested, "", isRequest)

	case KindSlugRelation:
		return r.slugRelationType(app, f, owner), nil

	case KindManyRelation:
		if f.Child == nil {
			return r.degrade(app, f.Name, "many relation has no child relation"), nil
		}
		inner, err := r.resolveField(app, *f.Child, owner, isRequest)
		if err != nil {
			return "", err
		}
		// A to-many slug relation already resolved repeated; exactly one
		// marker must remain.
		inner = strings.TrimPrefix(inner, repeatedPrefix)
		return repeatedPrefix + inner, nil

	case KindRelation:
		return r.relationType(app, f), nil

	case KindListStruct:
		return repeatedPrefix + StructType, nil

	case KindList:
		if f.Child == nil {
			return r.degrade(app, f.Name, "list field has no child field"), nil
		}
		inner, err := r.resolveField(app, *f.Child, owner, isRequest)
		if err != nil {
			return "", err
		}
		inner = strings.TrimPrefix(inner, repeatedPrefix)
		return repeatedPrefix + inner, nil

	case KindDict, KindStruct:
		return StructType, nil

	case KindMethod:
		return r.methodReturnType(f, owner)

	default:
		// KindPrimitive, KindModelField, and anything unclassified fall
		// back to the type table.
		return r.primitiveType(app, f.FieldType, f.Name), nil
	}
}

// primitiveType resolves a field type identifier through the table,
// degrading unknown identifiers to "string".
func (r *Registry) primitiveType(app *AppEntry, ft FieldType, fieldName string) string {
	if t, ok := r.cfg.lookupType(ft); ok {
		return t
	}
	r.logf().Warn("unknown field type",
		slog.String("app", app.Name),
		slog.String("field", fieldName),
		slog.String("field_type", string(ft)))
	r.addWarning(Warning{
		Code:     WarnUnknownFieldType,
		Message:  "field type " + string(ft) + " on field " + fieldName + " is not in the type table; using string",
		App:      app.Name,
		TypeName: fieldName,
	})
	return "string"
}

// slugRelationType resolves a relation addressed by a named attribute on
// the related entity. The owning serializer must expose a backing model
// whose relationship metadata names the field; everything missing along
// that path degrades to "string".
func (r *Registry) slugRelationType(app *AppEntry, f FieldDescriptor, owner Serializer) string {
	model := owner.Model()
	if model == nil {
		return r.degrade(app, f.Name, "slug relation on serializer "+owner.Name()+" which has no model")
	}
	rel, ok := model.Relationships[f.Name]
	if !ok {
		return r.degrade(app, f.Name, "no relationship named "+f.Name+" on model "+model.Name)
	}
	if rel.RelatedModel == nil {
		return r.degrade(app, f.Name, "relationship "+f.Name+" on model "+model.Name+" has no related model")
	}
	target, ok := rel.RelatedModel.FieldByName(f.SlugField)
	if !ok {
		return r.degrade(app, f.Name, "related model "+rel.RelatedModel.Name+" has no field "+f.SlugField)
	}

	t := r.primitiveType(app, target.Type, f.Name)
	if rel.ToMany {
		t = repeatedPrefix + t
	}
	return t
}

// relationType resolves a single related object referenced by primary
// key, preferring an explicit primary-key type override on the field.
func (r *Registry) relationType(app *AppEntry, f FieldDescriptor) string {
	if f.PKFieldType != "" {
		return r.primitiveType(app, f.PKFieldType, f.Name)
	}
	if f.RelatedModel == nil {
		return r.degrade(app, f.Name, "relation "+f.Name+" has no related model and no primary-key override")
	}
	return r.primitiveType(app, f.RelatedModel.PrimaryKey.Type, f.Name)
}

// methodReturnType resolves a method-computed field from its declared
// return type. No declaration, or one outside methodReturnTypes, is a
// registration error: nothing else indicates the wire type.
func (r *Registry) methodReturnType(f FieldDescriptor, owner Serializer) (string, error) {
	if f.Returns == "" {
		err := Errorf(CodeMissingReturnType,
			"method field %s on serializer %s declares no return type", f.Name, owner.Name())
		err.Field = f.Name
		return "", err
	}
	t, ok := methodReturnTypes[f.Returns]
	if !ok {
		err := Errorf(CodeUnknownReturnType,
			"method field %s on serializer %s declares unsupported return type %q", f.Name, owner.Name(), f.Returns)
		err.Field = f.Name
		return "", err
	}
	return t, nil
}

// degrade logs and records a relation degradation and returns "string".
func (r *Registry) degrade(app *AppEntry, fieldName, reason string) string {
	r.logf().Warn("field degraded to string",
		slog.String("app", app.Name),
		slog.String("field", fieldName),
		slog.String("reason", reason))
	r.addWarning(Warning{
		Code:     WarnUnknownRelation,
		Message:  reason + "; using string",
		App:      app.Name,
		TypeName: fieldName,
	})
	return "string"
}
