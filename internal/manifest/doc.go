// Package manifest parses and validates the provbuild.yaml project file
// against an embedded JSON Schema.
package manifest
