package pipeline

import (
	"context"

	"github.com/jyn514/releasekit/internal/stage"
)

// Step sequence for the extension-packaging job.
//
// The job is platform-independent: no step carries a platform condition.
// Package files matching the configured extension land under the bundle's
// code subdirectory; the static integration assets are copied recursively
// to the bundle root. The combined bundle uploads once under a fixed
// generic name.
func packagingSteps(opts Options) []Step {
	return []Step{
		{
			Name: "package",
			Run: func(ctx context.Context, j *Job) error {
				files, err := opts.Packager.Package(ctx)
				if err != nil {
					return err
				}
				j.PackageFiles = files
				return nil
			},
		},
		{
			Name: "stage",
			Run: func(ctx context.Context, j *Job) error {
				if _, err := stage.Packages(j.Bundle, j.PackageFiles, opts.PackagePattern); err != nil {
					return err
				}
				return stage.Tree(j.Bundle, opts.Assets)
			},
		},
		uploadStep(opts),
	}
}
