package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jyn514/releasekit/internal/paths"
	"github.com/jyn514/releasekit/internal/pipeline"
)

// Environment variables injected into build tool invocations. The build
// tool reads the target platform, mode, and output directory from these
// rather than from ambient state.
const (
	envTarget = "RELEASEKIT_TARGET"
	envMode   = "RELEASEKIT_MODE"
	envOutput = "RELEASEKIT_OUTPUT"

	releaseMode = "release"
)

// Invokes the external build tool.
//
// The tool is expected to write the release binary into the per-job output
// directory under its platform-conditional name.
type ExecBuilder struct {
	Runner  *Runner
	Command []string // Build tool argv (e.g., ["cargo", "xtask", "dist"]).
	Dir     string   // Project root the tool runs in.
	Binary  string   // Base name of the produced binary.
}

// Runs the build tool for one platform and returns the produced binary path.
//
// The output directory belongs to a single job and is provisioned before
// the tool runs, keeping concurrent platform builds isolated from each
// other. Target, mode, and output are passed via environment variables,
// never via ambient state. A non-zero exit fails the build.
func (b *ExecBuilder) Build(ctx context.Context, p pipeline.Platform, out string) (string, error) {
	if len(b.Command) == 0 {
		return "", fmt.Errorf("%w: no build command configured", ErrTool)
	}

	if err := os.MkdirAll(out, paths.DefaultDirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTool, err)
	}

	env := []string{
		envTarget + "=" + p.String(),
		envMode + "=" + releaseMode,
		envOutput + "=" + out,
	}

	res, err := b.Runner.Run(ctx, b.Dir, env, b.Command[0], b.Command[1:]...)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%w: exit code %d: %s", ErrCommandFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	return filepath.Join(out, p.BinaryName(b.Binary)), nil
}

// Invokes the external packaging tool.
//
// The tool runs with a separate toolchain from the primary compiler and
// produces platform-independent package files in its output directory.
type ExecPackager struct {
	Runner  *Runner
	Command []string // Packaging tool argv (e.g., ["npm", "run", "package"]).
	Dir     string   // Directory the tool runs in.
	Output  string   // Directory the tool writes packages to, relative to Dir.
}

// Runs the packaging tool and returns every file found in its output
// directory.
//
// The caller filters the list down to actual package files by extension;
// the packager does not guess which leftovers matter.
func (p *ExecPackager) Package(ctx context.Context) ([]string, error) {
	if len(p.Command) == 0 {
		return nil, fmt.Errorf("%w: no package command configured", ErrTool)
	}

	res, err := p.Runner.Run(ctx, p.Dir, nil, p.Command[0], p.Command[1:]...)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("%w: exit code %d: %s", ErrCommandFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	out := filepath.Join(p.Dir, p.Output)
	entries, err := os.ReadDir(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTool, err)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, filepath.Join(out, e.Name()))
		}
	}

	return files, nil
}

// Strips debug symbols from a binary in place using an external strip tool.
type ExecStripper struct {
	Runner  *Runner
	Command string // Strip tool name (e.g., "strip").
}

// Strips the binary at path. A non-zero exit fails the strip.
func (s *ExecStripper) Strip(ctx context.Context, path string) error {
	if s.Command == "" {
		return fmt.Errorf("%w: no strip command configured", ErrTool)
	}

	res, err := s.Runner.Run(ctx, filepath.Dir(path), nil, s.Command, path)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d: %s", ErrCommandFailed, res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	return nil
}
