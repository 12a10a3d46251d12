package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// GoCompiler invokes `go build`.
type GoCompiler struct {
	// Binary is the compiler executable; DefaultBinary when empty.
	Binary string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Env is the base environment; os.Environ() when nil.
	Env []string
}

// Build runs the compiler and blocks until it exits. Output is streamed to
// the configured writers and never captured.
func (g *GoCompiler) Build(ctx context.Context, req Request) error {
	bin := g.Binary
	if bin == "" {
		bin = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, bin, Args(req)...)
	cmd.Dir = req.Dir
	cmd.Env = g.environ(req)
	cmd.Stdin = os.Stdin

	cmd.Stdout = g.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = g.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", bin, err)
	}
	return nil
}

// CommandLine renders the invocation as a shell-style string for display.
func (g *GoCompiler) CommandLine(req Request) string {
	bin := g.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	parts := append(TargetEnv(req), bin)
	for _, a := range Args(req) {
		if strings.ContainsAny(a, " \t\"") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

func (g *GoCompiler) environ(req Request) []string {
	base := g.Env
	if base == nil {
		base = os.Environ()
	}
	env := append([]string(nil), base...)
	for _, kv := range TargetEnv(req) {
		key, value, _ := strings.Cut(kv, "=")
		env = setEnv(env, key, value)
	}
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
