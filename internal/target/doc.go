// Package target defines the closed set of platforms the provider can be
// built for and maps each one to its Go cross-compilation target.
package target
