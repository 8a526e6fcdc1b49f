package protoreg

import "testing"

func TestFieldKind_String(t *testing.T) {
	tests := []struct {
		kind FieldKind
		want string
	}{
		{KindPrimitive, "primitive"},
		{KindListSerializer, "list_serializer"},
		{KindNestedSerializer, "nested_serializer"},
		{KindSlugRelation, "slug_relation"},
		{KindManyRelation, "many_relation"},
		{KindRelation, "relation"},
		{KindListStruct, "list_struct"},
		{KindModelField, "model_field"},
		{KindList, "list"},
		{KindDict, "dict"},
		{KindStruct, "struct"},
		{KindMethod, "method"},
		{FieldKind(999), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("FieldKind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
