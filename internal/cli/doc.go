// Package cli defines the Cobra command tree for provbuild. The root command
// takes the platform argument and runs the build; subcommands inspect the
// registry layout and the project file. Commands only handle flags and
// output, and delegate to the internal packages for the work.
package cli
