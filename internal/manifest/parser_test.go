package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ashleyjackson/provbuild/internal/registry"
	"github.com/google/go-cmp/cmp"
)

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provbuild.yaml")
	content := `registry:
  root: out
  host: example.com
  namespace: acme
  name: widget
  version: 0.3.0
build:
  package: ./cmd/widget
  strip: true
toolchain:
  go: /usr/local/go/bin/go
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := &BuildFile{
		Registry:  registry.Layout{Root: "out", Host: "example.com", Namespace: "acme", Name: "widget", Version: "0.3.0"},
		Build:     BuildSection{Package: "./cmd/widget", Strip: true},
		Toolchain: ToolchainSection{Go: "/usr/local/go/bin/go"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Partial(t *testing.T) {
	got, err := Parse([]byte("build:\n  strip: true\n"), "inline")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.Build.Strip || got.Registry != (registry.Layout{}) {
		t.Errorf("Parse partial = %+v", got)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte("registry: [\n"), "bad.yaml"); err == nil {
		t.Error("expected error for malformed YAML")
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
