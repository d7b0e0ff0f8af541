// Package exec runs external tools with a deadline and captured output.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Exit codes reported for failures that never reached the tool itself,
// matching the shell conventions for timeout and command-not-found.
const (
	ExitTimeout  = 124
	ExitNotFound = 127
)

// Result holds what an external tool produced.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
	ExitCode int
}

// TimedOut reports whether the run was cut off by its deadline.
func (r Result) TimedOut() bool { return r.ExitCode == ExitTimeout }

// NotFound reports whether the executable was missing from PATH.
func (r Result) NotFound() bool { return r.ExitCode == ExitNotFound }

// Run executes name with args in dir, honoring the context deadline. Output
// is captured in full; the returned error is the raw error from the process,
// while Result.ExitCode folds timeout and missing-executable cases into
// ExitTimeout and ExitNotFound.
func Run(ctx context.Context, name string, args []string, dir string) (Result, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = 1
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.ExitCode = ExitTimeout
		} else if errors.Is(err, exec.ErrNotFound) {
			res.ExitCode = ExitNotFound
		}
	}

	return res, err
}
