// Package runner executes external command-line programs and reports their
// outcome. It also verifies that optional binaries are installed before a
// tool depends on them.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// ErrMissingDependency indicates a required external binary is not
	// installed or not runnable.
	ErrMissingDependency = errors.New("required binary not available")

	// ErrProcessFailed indicates an external process exited non-zero or
	// could not be started.
	ErrProcessFailed = errors.New("external process failed")
)

// Runner runs an external binary to completion and returns its output.
type Runner interface {
	Run(ctx context.Context, bin string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands with os/exec. The call blocks until the process
// exits; no timeout is enforced beyond context cancellation.
type ExecRunner struct{}

// Run executes bin with args and captures both output streams. A non-zero
// exit wraps ErrProcessFailed and carries the tail of stderr.
func (ExecRunner) Run(ctx context.Context, bin string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return stdout, stderr, fmt.Errorf("%w: %s exited with code %d: %s",
				ErrProcessFailed, bin, exitErr.ExitCode(), stderrTail(stderr))
		}
		return stdout, stderr, fmt.Errorf("%w: %s: %v", ErrProcessFailed, bin, runErr)
	}
	return stdout, stderr, nil
}

// EnsureAvailable verifies bin is installed by running its version query.
// The returned error names the binary and includes an install hint.
func EnsureAvailable(ctx context.Context, r Runner, bin, installHint string) error {
	if _, _, err := r.Run(ctx, bin, "--version"); err != nil {
		return fmt.Errorf("%w: %s (%s)", ErrMissingDependency, bin, installHint)
	}
	return nil
}

// stderrTail reduces a stderr dump to its last non-empty line, capped so the
// message stays readable inside a tool result.
func stderrTail(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	tail := strings.TrimSpace(lines[len(lines)-1])
	if len(tail) > 400 {
		tail = tail[:400]
	}
	if tail == "" {
		return "(no error output)"
	}
	return tail
}
