package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Output of an external command execution.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs external tool commands.
//
// Each command runs as its own process with the runner's environment
// overlaid on the inherited one. Commands are opaque, blocking units: the
// runner waits for exit and reports the code, leaving retry and timeout
// policy to the caller's execution environment.
type Runner struct{}

// Runs a command in the given working directory with extra environment
// variables.
//
// A non-zero exit is not an error: the exit code is reported in the result
// and the caller decides how to treat it. An error is returned only when
// the process could not be started or was killed before exiting.
func (r *Runner) Run(ctx context.Context, dir string, env []string, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("command", name).Strs("args", args).Str("dir", dir).Msg("running tool")

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Result{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTool, err)
	}

	return &Result{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
