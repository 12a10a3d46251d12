// Package registry computes where built provider binaries go. The layout
// mirrors the filesystem mirror Terraform searches during init:
//
//	<root>/<host>/<namespace>/<name>/<version>/<os>_<arch>/terraform-provider-<name>[ext]
//
// A Registry is built once from a Layout and is read-only afterwards.
package registry
