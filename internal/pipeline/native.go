package pipeline

import (
	"context"
	"path/filepath"

	"github.com/jyn514/releasekit/internal/stage"
)

// Subdirectory of a native job's workspace the build tool writes into.
const buildDir = "build"

// Step sequence for one native-binary job.
//
// The strip step is bound to Linux only; every other step applies to all
// platforms. The produced binary is staged under its platform-conditional
// name before the bundle is uploaded as dist-<platform>.
func nativeSteps(opts Options) []Step {
	return []Step{
		{
			Name: "build",
			Run: func(ctx context.Context, j *Job) error {
				path, err := opts.Builder.Build(ctx, j.Platform, filepath.Join(j.Workspace, buildDir))
				if err != nil {
					return err
				}
				j.BinaryPath = path
				return nil
			},
		},
		{
			Name:      "strip",
			Platforms: []Platform{Linux},
			Run: func(ctx context.Context, j *Job) error {
				return opts.Stripper.Strip(ctx, j.BinaryPath)
			},
		},
		{
			Name: "stage",
			Run: func(ctx context.Context, j *Job) error {
				return stage.Binary(j.Bundle, j.BinaryPath, j.Platform.BinaryName(opts.Binary))
			},
		},
		uploadStep(opts),
	}
}

// Terminal step shared by both pipelines: hand the completed bundle to the
// artifact store as a single named unit. An upload failure fails the job
// even though build and staging succeeded.
func uploadStep(opts Options) Step {
	return Step{
		Name: "upload",
		Run: func(ctx context.Context, j *Job) error {
			handle, err := opts.Store.Upload(ctx, j.ArtifactName(), j.Bundle)
			if err != nil {
				return err
			}
			j.Artifact = handle
			return nil
		},
	}
}
