package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ashleyjackson/provbuild/internal/branding"
	"github.com/ashleyjackson/provbuild/internal/config"
	"github.com/ashleyjackson/provbuild/internal/manifest"
	"github.com/ashleyjackson/provbuild/internal/registry"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the toolchain and project configuration",
		Long: `Run diagnostic checks: compiler availability, project file validity,
registry layout, and the package to build. The build itself does not run
these checks and lets a missing compiler fail on invocation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, check := range []func(io.Writer) bool{
				a.checkCompiler,
				a.checkProjectFile,
				a.checkLayout,
				a.checkPackage,
			} {
				if !check(out) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}

func (a *app) checkCompiler(w io.Writer) bool {
	fmt.Fprintln(w, "Toolchain check:")
	bin := a.cfg.Settings().GoBinary
	path, err := exec.LookPath(bin)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found (set %s or %s in the project file)\n",
			bin, branding.EnvVar(strings.ReplaceAll(config.KeyGo, ".", "_")), config.KeyGo)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", bin, path)
	return true
}

func (a *app) checkProjectFile(w io.Writer) bool {
	path := a.cfg.Path()
	fmt.Fprintf(w, "Project file: %s\n", path)
	if !a.cfg.Exists() {
		fmt.Fprintln(w, "  [INFO] Not present, using defaults")
		return true
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if !result.Valid {
		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
		return false
	}

	bf, err := manifest.ParseFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	fmt.Fprintln(w, "  [ OK ] Valid project file")
	if bf.Registry != (registry.Layout{}) {
		fmt.Fprintln(w, "  [INFO] Overrides registry layout")
	}
	if bf.Toolchain.Go != "" {
		fmt.Fprintf(w, "  [INFO] Uses compiler %s\n", bf.Toolchain.Go)
	}
	return true
}

func (a *app) checkLayout(w io.Writer) bool {
	fmt.Fprintln(w, "Registry layout:")
	reg, err := a.registry()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	l := reg.Layout()
	fmt.Fprintf(w, "  [INFO] provider %s/%s v%s from %s under %s\n", l.Namespace, l.Name, l.Version, l.Host, l.Root)
	for _, e := range reg.Entries() {
		fmt.Fprintf(w, "  [ OK ] %-8s %s\n", e.Platform, e.Path())
	}
	return true
}

func (a *app) checkPackage(w io.Writer) bool {
	pkg := a.cfg.Settings().Package
	fmt.Fprintf(w, "Build package: %s\n", pkg)
	info, err := os.Stat(pkg)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Import paths such as ./... or module paths are left to the compiler.
		fmt.Fprintln(w, "  [INFO] Not a local directory, left to the compiler")
		return true
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	case !info.IsDir():
		fmt.Fprintf(w, "  [FAIL] %s is not a directory\n", pkg)
		return false
	}
	fmt.Fprintln(w, "  [ OK ] Directory exists")
	return true
}
