package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty file", ""},
		{"full file", `registry:
  root: examples/.terraform/providers
  host: registry.terraform.io
  namespace: ashleyjackson
  name: instatus
  version: v1.0.0
build:
  package: .
  strip: true
toolchain:
  go: go
`},
		{"prerelease version", "registry:\n  version: 1.2.0-rc.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues: %v", result.Issues)
			}
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantPath string
	}{
		{"unknown top-level key", "artifacts: {}\n", ""},
		{"unknown registry key", "registry:\n  colour: blue\n", "/registry"},
		{"non-semver version", "registry:\n  version: latest\n", "/registry/version"},
		{"numeric version", "registry:\n  version: 1.0\n", "/registry/version"},
		{"nested namespace", "registry:\n  namespace: a/b\n", "/registry/namespace"},
		{"strip not boolean", "build:\n  strip: sometimes\n", "/build/strip"},
		{"empty package", "build:\n  package: \"\"\n", "/build/package"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid result")
			}
			if len(result.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue at %q has empty message", issue.Path)
				}
			}
			if !found {
				t.Errorf("no issue at %q; got %v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("registry: [oops\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provbuild.yaml")
	if err := os.WriteFile(path, []byte("registry:\n  version: nope\n"), 0644); err != nil {
		t.Fatal(err)
	}
	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if result.Valid {
		t.Error("expected invalid result")
	}
	if s := result.Issues[0].String(); !strings.HasPrefix(s, "/registry/version: ") {
		t.Errorf("issue String() = %q", s)
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate_OneIssuePerField(t *testing.T) {
	data := []byte("registry:\n  version: latest\n  name: a/b\nbuild:\n  strip: maybe\n")

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	seen := make(map[string]int)
	for _, issue := range result.Issues {
		seen[issue.Path]++
		if issue.Keyword == "" || issue.Keyword == "$ref" {
			t.Errorf("issue at %q has container keyword %q", issue.Path, issue.Keyword)
		}
	}
	for _, path := range []string{"/registry/version", "/registry/name", "/build/strip"} {
		if seen[path] != 1 {
			t.Errorf("issues at %s = %d, want 1 (all: %v)", path, seen[path], result.Issues)
		}
	}
}
