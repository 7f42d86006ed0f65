// Package generator wraps the one external-process invocation the scaffolder
// performs: running the base-project template generator. The generator is
// opaque; this package only starts it, captures its output streams, and
// reports the exit status.
package generator

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result is the outcome of a single generator invocation.
type Result struct {
	ExitCode int    // Process exit code; 0 on success.
	Stdout   string // Captured standard output, trimmed.
	Stderr   string // Captured standard error, trimmed.
}

// Success reports whether the generator exited cleanly.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner invokes an external command and captures its outcome.
// The invocation is synchronous and attempted exactly once; generators may
// leave partial output on disk, so retrying blindly is not safe.
type Runner interface {
	// Invoke runs name with args, blocking until the process exits or ctx
	// is cancelled. A non-zero exit is reported via Result, not error;
	// error is reserved for failures to run the command at all (e.g. the
	// executable is not on PATH) or context cancellation.
	Invoke(ctx context.Context, name string, args ...string) (Result, error)
}

// CommandRunner is the os/exec-backed Runner used in production.
type CommandRunner struct {
	workDir string
}

// NewCommandRunner creates a CommandRunner. An empty workDir runs the
// command in the calling process's working directory.
func NewCommandRunner(workDir string) *CommandRunner {
	return &CommandRunner{workDir: workDir}
}

// Invoke runs the command with both output streams redirected into buffers.
func (r *CommandRunner) Invoke(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}
