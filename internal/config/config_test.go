package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ashleyjackson/provbuild/internal/registry"
	"github.com/google/go-cmp/cmp"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "provbuild.yaml"))
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Settings{
		Layout:   registry.DefaultLayout(),
		Package:  ".",
		GoBinary: "go",
	}
	if diff := cmp.Diff(want, c.Settings()); diff != "" {
		t.Errorf("Settings mismatch (-want +got):\n%s", diff)
	}
	if c.Exists() {
		t.Error("Exists() = true for missing file")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provbuild.yaml")
	content := `registry:
  root: dist/providers
  version: 2.0.1
build:
  package: ./cmd/provider
  strip: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(path)
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := c.Settings()
	if s.Layout.Root != "dist/providers" || s.Layout.Version != "2.0.1" {
		t.Errorf("layout = %+v", s.Layout)
	}
	if s.Layout.Name != registry.DefaultName {
		t.Errorf("unset name = %q, want default", s.Layout.Name)
	}
	if s.Package != "./cmd/provider" || !s.Strip {
		t.Errorf("build settings = %q strip=%v", s.Package, s.Strip)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provbuild.yaml")
	if err := os.WriteFile(path, []byte("registry:\n  namespace: fromfile\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROVBUILD_REGISTRY_NAMESPACE", "fromenv")
	t.Setenv("PROVBUILD_TOOLCHAIN_GO", "/opt/go/bin/go")

	c := New(path)
	if err := c.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := c.Settings()
	if s.Layout.Namespace != "fromenv" {
		t.Errorf("namespace = %q, want fromenv", s.Layout.Namespace)
	}
	if s.GoBinary != "/opt/go/bin/go" {
		t.Errorf("go binary = %q", s.GoBinary)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provbuild.yaml")
	if err := os.WriteFile(path, []byte("registry: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := New(path).Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSet_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "provbuild.yaml")

	c := New(path)
	if err := c.Set(KeyVersion, "1.4.0"); err != nil {
		t.Fatalf("Set version: %v", err)
	}
	if err := c.Set(KeyStrip, "yes"); err != nil {
		t.Fatalf("Set strip: %v", err)
	}
	if err := c.Set(KeyRoot, "out"); err != nil {
		t.Fatalf("Set root: %v", err)
	}

	reloaded := New(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := reloaded.Settings()
	if s.Layout.Version != "1.4.0" || s.Layout.Root != "out" || !s.Strip {
		t.Errorf("reloaded settings = %+v", s)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "namespace") {
		t.Errorf("defaults written to file:\n%s", data)
	}
}

func TestSet_Rejects(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "provbuild.yaml"))
	if err := c.Set("registry.colour", "blue"); err == nil {
		t.Error("expected error for unknown key")
	}
	if err := c.Set(KeyStrip, "maybe"); err == nil {
		t.Error("expected error for invalid boolean")
	}
	if c.Exists() {
		t.Error("rejected Set created the file")
	}
}
