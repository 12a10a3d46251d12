package dispatch

import (
	"fmt"

	"github.com/ashleyjackson/provbuild/internal/target"
)

// UsageError reports a wrong argument count or an unknown platform tag.
// Nothing has touched the filesystem when it is returned.
type UsageError struct {
	Program string
	Args    []string
	Err     error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <%s>", e.Program, target.Usage())
}

func (e *UsageError) Unwrap() error { return e.Err }

// Detail describes what was wrong with the arguments.
func (e *UsageError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("expected exactly one argument, got %d", len(e.Args))
}

// DirectoryError reports that the output directory could not be created.
// The compiler was not invoked.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("preparing output directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// CompilerError reports a failed compiler invocation.
type CompilerError struct {
	Platform target.Platform
	Output   string
	Err      error
}

func (e *CompilerError) Error() string {
	return fmt.Sprintf("building %s for %s: %v", e.Output, e.Platform.DisplayName(), e.Err)
}

func (e *CompilerError) Unwrap() error { return e.Err }
