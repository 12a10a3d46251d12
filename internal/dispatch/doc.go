// Package dispatch implements the single-shot build flow: validate the
// platform argument, prepare its registry directory, run the compiler, and
// report completion. Each run moves through Validating, Preparing, Compiling
// and Done, or stops in Failed at the first error.
package dispatch
