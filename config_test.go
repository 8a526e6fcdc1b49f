package protoreg

import (
	"io"
	"log/slog"
	"testing"
)

func TestApplyConfigDefaults(t *testing.T) {
	cfg := applyConfigDefaults(nil)

	if cfg.SeparateRequestResponse == nil || !*cfg.SeparateRequestResponse {
		t.Error("expected separate request/response to default to true")
	}
	if cfg.DefaultListFieldName != "results" {
		t.Errorf("expected default list field name 'results', got %s", cfg.DefaultListFieldName)
	}
	if cfg.DefaultPagination {
		t.Error("expected default pagination to be off")
	}
}

func TestApplyConfigDefaults_PreservesValues(t *testing.T) {
	f := false
	in := &Config{
		SeparateRequestResponse: &f,
		DefaultPagination:       true,
		DefaultListFieldName:    "items",
	}

	cfg := applyConfigDefaults(in)

	if *cfg.SeparateRequestResponse {
		t.Error("expected explicit false to be preserved")
	}
	if !cfg.DefaultPagination {
		t.Error("expected pagination to be preserved")
	}
	if cfg.DefaultListFieldName != "items" {
		t.Errorf("expected list field name 'items', got %s", cfg.DefaultListFieldName)
	}
}

func TestApplyConfigDefaults_CopiesOverrides(t *testing.T) {
	in := &Config{TypeOverrides: map[FieldType]string{DecimalField: "string"}}

	cfg := applyConfigDefaults(in)
	in.TypeOverrides[DecimalField] = "float"

	if got, _ := cfg.lookupType(DecimalField); got != "string" {
		t.Errorf("expected override map to be copied, got %s after caller mutation", got)
	}
}

func TestConfigLookupType(t *testing.T) {
	cfg := applyConfigDefaults(&Config{TypeOverrides: map[FieldType]string{
		DecimalField:            "string",
		FieldType("MoneyField"): "int64",
	}})

	tests := []struct {
		name   string
		ft     FieldType
		want   string
		wantOK bool
	}{
		{"override beats builtin", DecimalField, "string", true},
		{"override covers unknown identifier", "MoneyField", "int64", true},
		{"builtin", IntegerField, "int32", true},
		{"unknown", "MysteryField", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cfg.lookupType(tt.ft)
			if ok != tt.wantOK {
				t.Fatalf("lookupType(%s) ok = %v, want %v", tt.ft, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("lookupType(%s) = %q, want %q", tt.ft, got, tt.want)
			}
		})
	}
}

func TestRegistry_FluentOptions(t *testing.T) {
	reg := NewRegistry().
		WithSeparateRequestResponse(false).
		WithDefaultPagination().
		WithListFieldName("items").
		WithTypeOverride(DecimalField, "string")

	if reg.separate() {
		t.Error("expected separate request/response to be off")
	}
	if !reg.cfg.DefaultPagination {
		t.Error("expected default pagination to be on")
	}
	if reg.cfg.DefaultListFieldName != "items" {
		t.Errorf("expected list field name 'items', got %s", reg.cfg.DefaultListFieldName)
	}
	if got, _ := reg.cfg.lookupType(DecimalField); got != "string" {
		t.Errorf("expected type override to apply, got %s", got)
	}
}

func TestRegistry_WithListFieldName_Empty(t *testing.T) {
	reg := NewRegistry().WithListFieldName("")
	if reg.cfg.DefaultListFieldName != "results" {
		t.Errorf("expected empty name to keep the default, got %s", reg.cfg.DefaultListFieldName)
	}
}

func TestRegistry_WithLogger(t *testing.T) {
	reg := NewRegistry()
	if reg.logf() != slog.Default() {
		t.Error("expected fallback to slog.Default")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg = reg.WithLogger(logger)
	if reg.logf() != logger {
		t.Error("expected configured logger to be used")
	}
}

func TestRegistry_ListFieldName(t *testing.T) {
	reg := NewRegistry()

	declared := &SerializerDescriptor{ClassName: "PostSerializer", ListAttr: "posts"}
	if got := reg.listFieldName(declared); got != "posts" {
		t.Errorf("expected declared list field name, got %s", got)
	}

	plain := &SerializerDescriptor{ClassName: "PostSerializer"}
	if got := reg.listFieldName(plain); got != "results" {
		t.Errorf("expected configured default, got %s", got)
	}
}
