package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ashleyjackson/provbuild/internal/branding"
	"github.com/ashleyjackson/provbuild/internal/config"
	"github.com/ashleyjackson/provbuild/internal/dispatch"
	"github.com/ashleyjackson/provbuild/internal/manifest"
	"github.com/ashleyjackson/provbuild/internal/registry"
	"github.com/ashleyjackson/provbuild/internal/target"
	"github.com/ashleyjackson/provbuild/internal/toolchain"
	"github.com/spf13/cobra"
)

type buildInfo struct {
	version string
	commit  string
	date    string
}

// app holds state shared by the command tree for one execution.
type app struct {
	info buildInfo

	configPath string
	verbose    bool
	dryRun     bool

	cfg *config.Config
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	root := newRootCmd(buildInfo{version: version, commit: commit, date: date})
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an Execute error to a process exit status. A failed
// compiler's own status is passed through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *toolchain.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

func printError(w io.Writer, err error) {
	var usageErr *dispatch.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(w, "Error: %s\n", usageErr.Detail())
		fmt.Fprintln(w, usageErr.Error())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func newRootCmd(info buildInfo) *cobra.Command {
	a := &app{info: info}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <" + target.Usage() + ">",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` cross-compiles the provider for one platform and places the binary
in the local plugin registry layout that terraform init searches.`,
		Example:       "  " + branding.CLIName() + " linux\n  " + branding.CLIName() + " windows --strip",
		Args:          validatePlatformArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Subcommand names are reserved; every other word is a platform argument.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "version", "help":
				return nil
			case "doctor", "get", "set":
				// These must work on a project file that fails validation.
				return a.loadConfig(cmd, false)
			}
			return a.loadConfig(cmd, true)
		},
		RunE: a.runBuild,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Project file (default "+config.DefaultPath()+")")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Print debug diagnostics to stderr")
	pf.String("root", "", "Override the registry root directory")
	pf.String("version-tag", "", "Override the provider version directory")

	f := cmd.Flags()
	f.String("package", "", "Package to build (default \".\")")
	f.Bool("strip", false, "Build with -trimpath -ldflags \"-s -w\"")
	f.BoolVar(&a.dryRun, "dry-run", false, "Print the compiler command without running it")

	cmd.SetFlagErrorFunc(flagError)

	cmd.AddCommand(
		newVersionCmd(a),
		newPlatformsCmd(a),
		newConfigCmd(a),
		newDoctorCmd(a),
	)
	return cmd
}

// validatePlatformArg rejects anything but a single known platform before
// any other work happens.
func validatePlatformArg(cmd *cobra.Command, args []string) error {
	_, err := dispatch.ValidateArgs(cmd.Root().Name(), args)
	return err
}

// flagError turns a bad flag on the root command into a usage error, since
// something like "-linux" is an unrecognized platform, not a typo'd option.
func flagError(cmd *cobra.Command, err error) error {
	if cmd != cmd.Root() {
		return err
	}
	return &dispatch.UsageError{Program: cmd.Root().Name(), Err: err}
}

// loadConfig reads the project file and binds command-line overrides. With
// strict set, a present project file must pass schema validation first.
func (a *app) loadConfig(cmd *cobra.Command, strict bool) error {
	a.cfg = config.New(a.configPath)

	if strict && a.cfg.Exists() {
		result, err := manifest.ValidateFile(a.cfg.Path())
		if err != nil {
			return fmt.Errorf("validating %s: %w", a.cfg.Path(), err)
		}
		if !result.Valid {
			return fmt.Errorf("invalid project file %s: %s", a.cfg.Path(), result.Issues[0])
		}
	}
	if err := a.cfg.Load(); err != nil {
		return err
	}

	v := a.cfg.Viper()
	bindings := map[string]string{
		"root":        config.KeyRoot,
		"version-tag": config.KeyVersion,
		"package":     config.KeyPackage,
		"strip":       config.KeyStrip,
	}
	for flag, key := range bindings {
		if fl := cmd.Flags().Lookup(flag); fl != nil {
			if err := v.BindPFlag(key, fl); err != nil {
				return fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}
	return nil
}

func (a *app) registry() (*registry.Registry, error) {
	reg, err := registry.New(a.cfg.Settings().Layout)
	if err != nil {
		return nil, fmt.Errorf("invalid registry layout: %w", err)
	}
	return reg, nil
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	reg, err := a.registry()
	if err != nil {
		return err
	}
	s := a.cfg.Settings()
	log := newLogger(cmd.ErrOrStderr(), a.verbose)
	log.Debug("configuration loaded", "file", a.cfg.Path(), "exists", a.cfg.Exists(), "go", s.GoBinary)

	d := &dispatch.Dispatcher{
		Program:  cmd.Root().Name(),
		Registry: reg,
		Compiler: &toolchain.GoCompiler{
			Binary: s.GoBinary,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Package: s.Package,
		Strip:   s.Strip,
		DryRun:  a.dryRun,
		Out:     cmd.OutOrStdout(),
		Log:     log,
	}

	res, err := d.Run(cmd.Context(), args)
	if err != nil {
		log.Debug("build stopped", "state", res.State, "err", err)
		return err
	}
	if !a.dryRun {
		logArtifact(log, res.Output)
	}
	return nil
}
