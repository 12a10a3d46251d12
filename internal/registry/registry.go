package registry

import (
	"path/filepath"

	"github.com/ashleyjackson/provbuild/internal/target"
)

// ArtifactPrefix is the binary name prefix Terraform expects for providers.
const ArtifactPrefix = "terraform-provider-"

// Entry is the resolved output location for one platform.
type Entry struct {
	Platform target.Platform
	Target   target.Target
	Dir      string
	Artifact string
}

// Path returns the full artifact path.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Artifact)
}

// Registry maps every platform to its output location.
type Registry struct {
	layout  Layout
	entries map[target.Platform]Entry
}

// New validates layout and resolves an entry for every platform.
func New(layout Layout) (*Registry, error) {
	layout, err := layout.validate()
	if err != nil {
		return nil, err
	}

	base := filepath.Join(layout.Root, layout.Host, layout.Namespace, layout.Name, layout.Version)
	entries := make(map[target.Platform]Entry, len(target.All()))
	for _, p := range target.All() {
		tg := p.Target()
		entries[p] = Entry{
			Platform: p,
			Target:   tg,
			Dir:      filepath.Join(base, tg.Dir()),
			Artifact: ArtifactPrefix + layout.Name + tg.Ext,
		}
	}
	return &Registry{layout: layout, entries: entries}, nil
}

// Layout returns the normalized layout the registry was built from.
func (r *Registry) Layout() Layout {
	return r.layout
}

// Lookup returns the entry for p.
func (r *Registry) Lookup(p target.Platform) (Entry, bool) {
	e, ok := r.entries[p]
	return e, ok
}

// Dir returns the output directory for p.
func (r *Registry) Dir(p target.Platform) string {
	return r.entries[p].Dir
}

// Artifact returns the artifact file name for p.
func (r *Registry) Artifact(p target.Platform) string {
	return r.entries[p].Artifact
}

// OutputPath returns the full artifact path for p.
func (r *Registry) OutputPath(p target.Platform) string {
	return r.entries[p].Path()
}

// Entries returns all entries in target.All order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, p := range target.All() {
		out = append(out, r.entries[p])
	}
	return out
}
