// Package toolchain runs the external Go compiler for a cross-compilation
// target. The child process inherits the caller's output streams and is
// waited on synchronously.
package toolchain
