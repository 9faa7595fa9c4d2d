package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jyn514/releasekit/internal/store"
)

// Invokes the external build tool for one platform.
//
// The produced release binary is written under out and its path returned.
type Builder interface {
	Build(ctx context.Context, p Platform, out string) (string, error)
}

// Invokes the external packaging tool and returns the produced files.
type Packager interface {
	Package(ctx context.Context) ([]string, error)
}

// Strips debug symbols from a binary in place.
type Stripper interface {
	Strip(ctx context.Context, path string) error
}

// Controls a release run.
type Options struct {
	Trigger        Trigger    // Event that caused the run.
	ReleaseBranch  string     // Branch designated to release; other branches are ignored.
	Platforms      []Platform // Native build targets. Defaults to the full matrix.
	WorkRoot       string     // Root directory for per-job workspaces.
	Binary         string     // Base name of the native binary.
	PackagePattern string     // Extension identifying package files (e.g., ".vsix").
	Assets         string     // Static integration assets directory.

	Builder  Builder        // External build tool.
	Stripper Stripper       // External strip tool.
	Packager Packager       // External packaging tool.
	Store    store.Store    // Artifact store.
	Log      zerolog.Logger // Parent logger for per-job loggers.
}

// Outcome of one job, reported independently per (pipeline, platform).
type Result struct {
	JobID    string
	Pipeline string
	Platform Platform
	Status   Status
	Artifact *store.Handle // Set when the upload completed.
	Err      error         // Set when the job failed.
}

// Runs the release pipelines for a trigger event.
//
// A trigger from any branch other than the release branch runs nothing and
// returns no results. Otherwise the platform matrix is expanded into one
// native job per platform, plus one packaging job, and all jobs run
// concurrently. Jobs share no mutable state: a failure in one never
// cancels or affects a sibling, and no cross-job ordering is guaranteed.
//
// The returned results carry per-job pass/fail status. Run itself returns
// an error only for invalid options; whether failed jobs fail the overall
// release is the caller's policy.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if !opts.Trigger.Releases(opts.ReleaseBranch) {
		opts.Log.Info().
			Str("branch", opts.Trigger.Branch).
			Str("release_branch", opts.ReleaseBranch).
			Msg("not a release branch, nothing to do")
		return nil, nil
	}

	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = Matrix()
	}

	opts.Log.Info().
		Str("trigger", opts.Trigger.ID).
		Str("revision", opts.Trigger.Revision).
		Int("platforms", len(platforms)).
		Msg("release triggered")

	type execution struct {
		job   *Job
		steps []Step
	}

	execs := make([]execution, 0, len(platforms)+1)
	for _, p := range platforms {
		execs = append(execs, execution{
			job:   newJob(PipelineNative, p, opts.WorkRoot, opts.Log),
			steps: expand(nativeSteps(opts), p),
		})
	}
	execs = append(execs, execution{
		job:   newJob(PipelinePackaging, "", opts.WorkRoot, opts.Log),
		steps: packagingSteps(opts),
	})

	// Fully parallel fan-out. Each goroutine owns its job and writes only
	// its own result slot, so the jobs never contend on shared state.
	results := make([]Result, len(execs))

	var wg sync.WaitGroup
	for i, e := range execs {
		wg.Add(1)
		go func(i int, e execution) {
			defer wg.Done()
			e.job.run(ctx, e.steps)
			results[i] = Result{
				JobID:    e.job.ID,
				Pipeline: e.job.Pipeline,
				Platform: e.job.Platform,
				Status:   e.job.Status(),
				Artifact: e.job.Artifact,
				Err:      e.job.Err(),
			}
		}(i, e)
	}
	wg.Wait()

	return results, nil
}

// Checks that every external collaborator is wired in.
func (o Options) validate() error {
	switch {
	case o.Builder == nil:
		return fmt.Errorf("%w: no builder", ErrOptions)
	case o.Stripper == nil:
		return fmt.Errorf("%w: no stripper", ErrOptions)
	case o.Packager == nil:
		return fmt.Errorf("%w: no packager", ErrOptions)
	case o.Store == nil:
		return fmt.Errorf("%w: no artifact store", ErrOptions)
	case o.WorkRoot == "":
		return fmt.Errorf("%w: no work root", ErrOptions)
	case o.Binary == "":
		return fmt.Errorf("%w: no binary name", ErrOptions)
	}
	return nil
}

// Returns the subset of results whose job failed.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Status == StatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}
