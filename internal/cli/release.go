package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jyn514/releasekit/internal/config"
	"github.com/jyn514/releasekit/internal/pipeline"
	"github.com/jyn514/releasekit/internal/store"
	"github.com/jyn514/releasekit/internal/toolchain"
)

// Runs the release pipelines for a trigger event.
type ReleaseCmd struct {
	Branch   string   `arg:"" help:"Branch the trigger event came from."`
	Revision string   `arg:"" help:"Revision to release."`
	Platform []string `short:"p" help:"Native build targets (default: full matrix)."`
	Partial  bool     `help:"Exit successfully even when some jobs fail."`
}

// Executes the release command.
func (c *ReleaseCmd) Run(ctx context.Context) error {

	cfg, err := config.Load(RootCmd.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	platforms := make([]pipeline.Platform, 0, len(c.Platform))
	for _, s := range c.Platform {
		p, err := pipeline.ParsePlatform(s)
		if err != nil {
			return err
		}
		platforms = append(platforms, p)
	}

	st, err := newStore(cfg)
	if err != nil {
		return err
	}

	runner := &toolchain.Runner{}

	results, err := pipeline.Run(ctx, pipeline.Options{
		Trigger:        pipeline.NewTrigger(c.Branch, c.Revision),
		ReleaseBranch:  cfg.ReleaseBranch,
		Platforms:      platforms,
		WorkRoot:       cfg.Workspaces,
		Binary:         cfg.Build.Binary,
		PackagePattern: cfg.Package.Pattern,
		Assets:         cfg.Package.Assets,
		Builder: &toolchain.ExecBuilder{
			Runner:  runner,
			Command: cfg.Build.Command,
			Dir:     cfg.Build.Dir,
			Binary:  cfg.Build.Binary,
		},
		Stripper: &toolchain.ExecStripper{
			Runner:  runner,
			Command: cfg.Strip.Command,
		},
		Packager: &toolchain.ExecPackager{
			Runner:  runner,
			Command: cfg.Package.Command,
			Dir:     cfg.Package.Dir,
			Output:  cfg.Package.Output,
		},
		Store: st,
		Log:   log.Logger,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		e := log.Info()
		if r.Err != nil {
			e = log.Error().Err(r.Err)
		}

		e = e.Str("job", r.JobID).
			Str("pipeline", r.Pipeline).
			Str("status", string(r.Status))
		if r.Platform != "" {
			e = e.Str("platform", r.Platform.String())
		}
		if r.Artifact != nil {
			e = e.Str("artifact", r.Artifact.Location).Int64("size", r.Artifact.Size)
		}
		e.Msg("job finished")
	}

	if failed := pipeline.Failed(results); len(failed) > 0 && !c.Partial {
		return fmt.Errorf("%d of %d jobs failed", len(failed), len(results))
	}

	return nil
}

// Builds the artifact store selected by the config.
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "s3":
		return store.NewObjectStore(
			cfg.Store.S3.Endpoint,
			cfg.Store.S3.AccessKey,
			cfg.Store.S3.SecretKey,
			cfg.Store.S3.Bucket,
			cfg.Store.S3.Secure,
		)
	case "dir", "":
		return store.NewDirStore(cfg.Store.Dir), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
