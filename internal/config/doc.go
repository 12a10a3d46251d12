// Package config loads build settings from provbuild.yaml in the working
// directory, PROVBUILD_* environment variables, and command-line flags, and
// writes single keys back to the project file.
package config
