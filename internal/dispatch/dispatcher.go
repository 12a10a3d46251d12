package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ashleyjackson/provbuild/internal/platform"
	"github.com/ashleyjackson/provbuild/internal/registry"
	"github.com/ashleyjackson/provbuild/internal/target"
	"github.com/ashleyjackson/provbuild/internal/toolchain"
	"github.com/inconshreveable/log15"
)

// Dispatcher runs one build per call to Run.
type Dispatcher struct {
	Program  string
	Registry *registry.Registry
	Compiler toolchain.Compiler

	// Package is the package pattern passed to the compiler.
	Package string
	// Strip drops symbol tables and local paths from the artifact.
	Strip bool
	// DryRun prints the compiler command instead of preparing and running it.
	DryRun bool

	// Out receives progress messages; defaults to os.Stdout.
	Out io.Writer
	Log log15.Logger
}

// Result describes a finished or aborted run.
type Result struct {
	Platform target.Platform
	Dir      string
	Output   string
	State    State
}

// ValidateArgs checks that args holds exactly one known platform tag.
func ValidateArgs(program string, args []string) (target.Platform, error) {
	if len(args) != 1 {
		return 0, &UsageError{Program: program, Args: args}
	}
	p, err := target.Parse(args[0])
	if err != nil {
		return 0, &UsageError{Program: program, Args: args, Err: err}
	}
	return p, nil
}

// Run validates args and builds the selected platform. The returned Result
// is never nil; its State is Done on success and Failed otherwise.
func (d *Dispatcher) Run(ctx context.Context, args []string) (*Result, error) {
	res := &Result{State: Validating}
	log := d.logger()

	p, err := ValidateArgs(d.Program, args)
	if err != nil {
		log.Debug("argument validation failed", "args", args, "err", err)
		res.State = Failed
		return res, err
	}

	entry, ok := d.Registry.Lookup(p)
	if !ok {
		res.State = Failed
		return res, fmt.Errorf("no registry entry for platform %s", p)
	}
	res.Platform = p
	res.Dir = entry.Dir
	res.Output = entry.Path()

	req := toolchain.Request{
		Target:  entry.Target,
		Output:  entry.Path(),
		Package: d.Package,
		Strip:   d.Strip,
	}

	if d.DryRun {
		fmt.Fprintf(d.out(), "Would build for %s into %s\n", p.DisplayName(), entry.Dir)
		if cl, ok := d.Compiler.(toolchain.Describer); ok {
			fmt.Fprintln(d.out(), cl.CommandLine(req))
		}
		res.State = Done
		return res, nil
	}

	res.State = Preparing
	log.Debug("ensuring output directory", "platform", p, "dir", entry.Dir)
	if err := platform.EnsureDir(entry.Dir); err != nil {
		res.State = Failed
		return res, &DirectoryError{Dir: entry.Dir, Err: err}
	}

	fmt.Fprintf(d.out(), "Building for %s...\n", p.DisplayName())
	fmt.Fprintf(d.out(), "Copying to %s...\n", entry.Dir)

	res.State = Compiling
	log.Debug("invoking compiler", "goos", req.Target.GOOS, "goarch", req.Target.GOARCH, "output", req.Output)
	if err := d.Compiler.Build(ctx, req); err != nil {
		log.Debug("compiler failed", "err", err)
		res.State = Failed
		return res, &CompilerError{Platform: p, Output: req.Output, Err: err}
	}

	res.State = Done
	fmt.Fprintln(d.out(), "Build complete.")
	return res, nil
}

func (d *Dispatcher) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

func (d *Dispatcher) logger() log15.Logger {
	if d.Log == nil {
		l := log15.New()
		l.SetHandler(log15.DiscardHandler())
		return l
	}
	return d.Log
}
