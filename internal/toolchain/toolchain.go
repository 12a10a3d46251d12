package toolchain

import (
	"context"
	"fmt"

	"github.com/ashleyjackson/provbuild/internal/target"
)

// DefaultBinary is the compiler looked up on PATH when none is configured.
const DefaultBinary = "go"

// Compiler builds one artifact.
type Compiler interface {
	Build(ctx context.Context, req Request) error
}

// Describer is implemented by compilers that can render a request as a
// command line, used by dry runs.
type Describer interface {
	CommandLine(req Request) string
}

// Request describes a single build.
type Request struct {
	Target  target.Target
	Output  string // artifact path passed to -o
	Package string // package pattern to build; "." when empty
	Strip   bool   // add -trimpath -ldflags "-s -w"
	Dir     string // working directory; current one when empty
}

// ExitError reports a compiler that ran but exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("compiler exited with status %d", e.Code)
}

// Args returns the compiler arguments for req, without the binary name.
func Args(req Request) []string {
	args := []string{"build"}
	if req.Strip {
		args = append(args, "-trimpath", "-ldflags", "-s -w")
	}
	pkg := req.Package
	if pkg == "" {
		pkg = "."
	}
	return append(args, "-o", req.Output, pkg)
}

// TargetEnv returns the GOOS/GOARCH assignments for req.
func TargetEnv(req Request) []string {
	return []string{
		"GOOS=" + req.Target.GOOS,
		"GOARCH=" + req.Target.GOARCH,
	}
}
