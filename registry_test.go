package protoreg_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/broady/protoreg"
	"github.com/broady/protoreg/internal/testfixtures"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

func TestNewRegistry(t *testing.T) {
	reg := protoreg.NewRegistry()
	if reg == nil {
		t.Fatal("expected non-nil registry")
	}
	if got := reg.Export(); len(got) != 0 {
		t.Errorf("expected empty export, got %d apps", len(got))
	}
	if got := reg.Warnings(); len(got) != 0 {
		t.Errorf("expected no warnings, got %v", got)
	}
}

func TestRegistry_Reset(t *testing.T) {
	reg := protoreg.NewRegistry().WithListFieldName("items")

	if err := reg.RegisterService("library", testfixtures.AuthorService()); err != nil {
		t.Fatalf("RegisterService: %v", err)
	}
	if _, ok := reg.App("library"); !ok {
		t.Fatal("expected app 'library' before reset")
	}

	reg.Reset()

	if got := reg.Export(); len(got) != 0 {
		t.Errorf("expected empty export after reset, got %d apps", len(got))
	}
	if got := reg.Warnings(); len(got) != 0 {
		t.Errorf("expected warnings cleared after reset, got %v", got)
	}

	// Configuration survives a reset.
	if err := reg.RegisterService("library", testfixtures.PostService()); err != nil {
		t.Fatalf("RegisterService after reset: %v", err)
	}
	app, _ := reg.App("library")
	msg := app.FindMessage("PostListResponse")
	if msg == nil {
		t.Fatal("expected PostListResponse after re-registration")
	}
	if msg.Fields[0].Name != "items" {
		t.Errorf("expected configured list field 'items', got %s", msg.Fields[0].Name)
	}
}

func TestRegistry_ExportIsolation(t *testing.T) {
	reg := protoreg.NewRegistry()
	if err := reg.RegisterService("library", testfixtures.AuthorService()); err != nil {
		t.Fatalf("RegisterService: %v", err)
	}

	first := reg.Export()
	if len(first) != 1 {
		t.Fatalf("expected 1 app, got %d", len(first))
	}
	first[0].Messages[0].Fields[0].Name = "mutated"
	first[0].Controllers[0].Methods[0].Name = "Mutated"

	second := reg.Export()
	if got := second[0].Messages[0].Fields[0].Name; got == "mutated" {
		t.Error("expected message fields to be isolated from caller mutation")
	}
	if got := second[0].Controllers[0].Methods[0].Name; got == "Mutated" {
		t.Error("expected method entries to be isolated from caller mutation")
	}
}

func TestRegistry_App(t *testing.T) {
	reg := protoreg.NewRegistry()
	if err := reg.RegisterService("library", testfixtures.AuthorService()); err != nil {
		t.Fatalf("RegisterService: %v", err)
	}

	app, ok := reg.App("library")
	if !ok {
		t.Fatal("expected app 'library'")
	}
	if app.Name != "library" {
		t.Errorf("expected app name 'library', got %s", app.Name)
	}

	if _, ok := reg.App("missing"); ok {
		t.Error("expected lookup miss for unknown app")
	}
}

func TestRegistry_GoldenDump(t *testing.T) {
	reg := protoreg.NewRegistry()

	if err := reg.RegisterService("library", testfixtures.AuthorService()); err != nil {
		t.Fatalf("RegisterService(Author): %v", err)
	}
	postSvc := testfixtures.PostService()
	if err := reg.RegisterService("library", postSvc); err != nil {
		t.Fatalf("RegisterService(Post): %v", err)
	}
	if err := reg.RegisterAction("library", postSvc, protoreg.Action{
		Name:     "Archive",
		Request:  []protoreg.ActionField{{Name: "ids", Type: "repeated int32"}},
		Response: []protoreg.ActionField{},
	}); err != nil {
		t.Fatalf("RegisterAction(Archive): %v", err)
	}

	var buf bytes.Buffer
	if err := reg.DumpText(&buf); err != nil {
		t.Fatalf("DumpText: %v", err)
	}

	archive, err := txtar.ParseFile(filepath.Join("testdata", "registry.txtar"))
	if err != nil {
		t.Fatalf("reading golden archive: %v", err)
	}
	var want string
	for _, f := range archive.Files {
		if f.Name == "dump" {
			want = string(f.Data)
		}
	}
	if want == "" {
		t.Fatal("golden archive has no 'dump' entry")
	}

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("registry dump mismatch (-want +got):\n%s", diff)
	}
}
