package registry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Default layout values for the instatus provider.
const (
	DefaultRoot      = "examples/.terraform/providers"
	DefaultHost      = "registry.terraform.io"
	DefaultNamespace = "ashleyjackson"
	DefaultName      = "instatus"
	DefaultVersion   = "1.0.0"
)

// Layout describes the plugin directory tree.
type Layout struct {
	Root      string `yaml:"root"`
	Host      string `yaml:"host"`
	Namespace string `yaml:"namespace"`
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
}

// DefaultLayout returns the layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		Root:      DefaultRoot,
		Host:      DefaultHost,
		Namespace: DefaultNamespace,
		Name:      DefaultName,
		Version:   DefaultVersion,
	}
}

// validate checks required fields and normalizes the version.
func (l Layout) validate() (Layout, error) {
	fields := []struct{ name, value string }{
		{"root", l.Root},
		{"host", l.Host},
		{"namespace", l.Namespace},
		{"name", l.Name},
		{"version", l.Version},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return l, fmt.Errorf("registry %s must not be empty", f.name)
		}
	}
	for _, f := range fields[1:] {
		if strings.ContainsAny(f.value, `/\`) {
			return l, fmt.Errorf("registry %s %q must be a single path segment", f.name, f.value)
		}
	}

	v, err := parseVersion(l.Version)
	if err != nil {
		return l, fmt.Errorf("registry version %q: %w", l.Version, err)
	}
	l.Version = v.String()
	return l, nil
}

// parseVersion strips a leading "v" and parses a strict semver, since
// Terraform rejects anything else in the version directory.
func parseVersion(version string) (*semver.Version, error) {
	return semver.StrictNewVersion(strings.TrimPrefix(version, "v"))
}
