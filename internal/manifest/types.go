package manifest

import "github.com/ashleyjackson/provbuild/internal/registry"

// BuildFile is the typed form of provbuild.yaml. Every field is optional.
type BuildFile struct {
	Registry  registry.Layout  `yaml:"registry"`
	Build     BuildSection     `yaml:"build"`
	Toolchain ToolchainSection `yaml:"toolchain"`
}

// BuildSection holds compiler options.
type BuildSection struct {
	Package string `yaml:"package"`
	Strip   bool   `yaml:"strip"`
}

// ToolchainSection selects the compiler binary.
type ToolchainSection struct {
	Go string `yaml:"go"`
}
