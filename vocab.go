package protoreg

import "strings"

// FieldType identifies a host model field type, e.g. "IntegerField".
// The set is open: identifiers outside the builtin table resolve to
// "string" so an evolving host field catalog never breaks generation.
type FieldType string

const (
	AutoField                 FieldType = "AutoField"
	BigAutoField              FieldType = "BigAutoField"
	SmallAutoField            FieldType = "SmallAutoField"
	IntegerField              FieldType = "IntegerField"
	SmallIntegerField         FieldType = "SmallIntegerField"
	BigIntegerField           FieldType = "BigIntegerField"
	PositiveIntegerField      FieldType = "PositiveIntegerField"
	PositiveSmallIntegerField FieldType = "PositiveSmallIntegerField"
	PositiveBigIntegerField   FieldType = "PositiveBigIntegerField"
	FloatField                FieldType = "FloatField"
	DecimalField              FieldType = "DecimalField"
	BooleanField              FieldType = "BooleanField"
	NullBooleanField          FieldType = "NullBooleanField"
	DateField                 FieldType = "DateField"
	TimeField                 FieldType = "TimeField"
	DateTimeField             FieldType = "DateTimeField"
	DurationField             FieldType = "DurationField"
	CharField                 FieldType = "CharField"
	TextField                 FieldType = "TextField"
	EmailField                FieldType = "EmailField"
	SlugFieldType             FieldType = "SlugField"
	URLField                  FieldType = "URLField"
	UUIDField                 FieldType = "UUIDField"
	GenericIPAddressField     FieldType = "GenericIPAddressField"
	FilePathField             FieldType = "FilePathField"
	FileField                 FieldType = "FileField"
	BinaryField               FieldType = "BinaryField"
	JSONField                 FieldType = "JSONField"
	DictField                 FieldType = "DictField"
	HStoreField               FieldType = "HStoreField"
	StructField               FieldType = "StructField"
)

// Well-known external types. These are assumed to exist in the target
// schema already and are never stored as generated messages.
const (
	EmptyType  = "google.protobuf.Empty"
	StructType = "google.protobuf.Struct"

	wellKnownPrefix = "google.protobuf."
	repeatedPrefix  = "repeated "
)

// protoTypes maps host field types to target scalar type names.
var protoTypes = map[FieldType]string{
	AutoField:                 "int32",
	SmallAutoField:            "int32",
	IntegerField:              "int32",
	SmallIntegerField:         "int32",
	PositiveIntegerField:      "int32",
	PositiveSmallIntegerField: "int32",
	BigAutoField:              "int64",
	BigIntegerField:           "int64",
	PositiveBigIntegerField:   "int64",
	FloatField:                "float",
	DecimalField:              "double",
	BooleanField:              "bool",
	NullBooleanField:          "bool",
	BinaryField:               "bytes",
	JSONField:                 StructType,
	DictField:                 StructType,
	HStoreField:               StructType,
	StructField:               StructType,
	DateField:                 "string",
	TimeField:                 "string",
	DateTimeField:             "string",
	DurationField:             "string",
	CharField:                 "string",
	TextField:                 "string",
	EmailField:                "string",
	SlugFieldType:             "string",
	URLField:                  "string",
	UUIDField:                 "string",
	GenericIPAddressField:     "string",
	FilePathField:             "string",
	FileField:                 "string",
}

// ProtoType maps a host field type identifier to its target scalar type
// name. Unknown identifiers map to "string"; no error is ever returned.
func ProtoType(ft FieldType) string {
	if t, ok := protoTypes[ft]; ok {
		return t
	}
	return "string"
}

// IsWellKnown reports whether name refers to a well-known external type.
func IsWellKnown(name string) bool {
	return strings.HasPrefix(name, wellKnownPrefix)
}
