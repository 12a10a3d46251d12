package target

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for any tag outside the supported set.
var ErrUnknown = errors.New("unknown platform")

// Platform identifies a supported build platform.
type Platform int

const (
	Windows Platform = iota
	Linux
	MacOS
)

// Target is the Go toolchain target a platform builds for.
type Target struct {
	GOOS   string
	GOARCH string
	Ext    string // artifact file extension, including the dot
}

// Dir returns the plugin directory name for the target, e.g. "linux_amd64".
func (t Target) Dir() string {
	return t.GOOS + "_" + t.GOARCH
}

func (t Target) String() string {
	return t.GOOS + "/" + t.GOARCH
}

type info struct {
	tag     string
	display string
	target  Target
}

// table is indexed by Platform.
var table = [...]info{
	Windows: {tag: "windows", display: "Windows", target: Target{GOOS: "windows", GOARCH: "amd64", Ext: ".exe"}},
	Linux:   {tag: "linux", display: "Linux", target: Target{GOOS: "linux", GOARCH: "amd64"}},
	MacOS:   {tag: "macos", display: "macOS", target: Target{GOOS: "darwin", GOARCH: "amd64", Ext: ".dmg"}},
}

// All returns every supported platform in a fixed order.
func All() []Platform {
	return []Platform{Windows, Linux, MacOS}
}

// Parse converts a command-line tag to a Platform. Matching is exact and
// case-sensitive.
func Parse(s string) (Platform, error) {
	for _, p := range All() {
		if table[p].tag == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w %q: expected one of %s", ErrUnknown, s, Usage())
}

// Usage renders the accepted tags as "windows|linux|macos".
func Usage() string {
	tags := make([]string, 0, len(table))
	for _, p := range All() {
		tags = append(tags, table[p].tag)
	}
	return strings.Join(tags, "|")
}

// String returns the command-line tag.
func (p Platform) String() string {
	if !p.valid() {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return table[p].tag
}

// DisplayName returns the name used in progress messages.
func (p Platform) DisplayName() string {
	if !p.valid() {
		return p.String()
	}
	return table[p].display
}

// Target returns the Go toolchain target for p.
func (p Platform) Target() Target {
	if !p.valid() {
		return Target{}
	}
	return table[p].target
}

func (p Platform) valid() bool {
	return p >= 0 && int(p) < len(table)
}
