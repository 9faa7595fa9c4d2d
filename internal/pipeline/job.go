package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jyn514/releasekit/internal/paths"
	"github.com/jyn514/releasekit/internal/store"
)

// Pipeline names used in job identity and reporting.
const (
	PipelineNative    = "native"
	PipelinePackaging = "packaging"
)

// Artifact naming: native bundles are keyed by platform, the packaging
// bundle by a fixed generic name.
const (
	artifactPrefix    = "dist"
	packagingArtifact = "dist-editor-plugins"
)

// Terminal and non-terminal execution states of a job.
//
// The only legal transitions are pending to running, and running to
// succeeded or failed. There is no pausing or resuming.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Reports whether the status is terminal.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// One execution instance of a pipeline, bound to at most one platform.
//
// A job owns a private workspace directory and shares no mutable state
// with sibling jobs. Its terminal state is reached independently of every
// other job.
type Job struct {
	ID        string   // Unique job identifier.
	Pipeline  string   // Owning pipeline name.
	Platform  Platform // Bound platform; empty for platform-independent jobs.
	Workspace string   // Private directory for all job-local files.
	Bundle    string   // Output bundle directory, inside the workspace.

	// Populated by steps as the job progresses.
	BinaryPath   string        // Build product path, set by the build step.
	PackageFiles []string      // Packaging tool products, set by the package step.
	Artifact     *store.Handle // Upload result, set by the upload step.

	status Status
	err    error
	log    zerolog.Logger
}

// Creates a pending job with a private workspace under workRoot.
//
// The workspace path embeds the job ID, so concurrent jobs (and repeated
// runs) never collide on the filesystem.
func newJob(pipeline string, platform Platform, workRoot string, logger zerolog.Logger) *Job {
	id := uuid.NewString()

	name := pipeline
	if platform != "" {
		name = pipeline + "-" + platform.String()
	}
	workspace := filepath.Join(workRoot, name+"-"+id)

	jobLog := logger.With().
		Str("pipeline", pipeline).
		Str("job", id).
		Logger()
	if platform != "" {
		jobLog = jobLog.With().Str("platform", platform.String()).Logger()
	}

	return &Job{
		ID:        id,
		Pipeline:  pipeline,
		Platform:  platform,
		Workspace: workspace,
		Bundle:    filepath.Join(workspace, "bundle"),
		status:    StatusPending,
		log:       jobLog,
	}
}

// Returns the artifact name this job's bundle uploads under.
func (j *Job) ArtifactName() string {
	if j.Pipeline == PipelinePackaging {
		return packagingArtifact
	}
	return artifactPrefix + "-" + j.Platform.String()
}

// Returns the job's current status.
func (j *Job) Status() Status {
	return j.status
}

// Returns the failure that terminated the job, or nil.
func (j *Job) Err() error {
	return j.err
}

// Moves the job to a new status, validating the transition.
func (j *Job) transition(to Status) error {
	valid := (j.status == StatusPending && to == StatusRunning) ||
		(j.status == StatusRunning && to.Terminal())
	if !valid {
		return fmt.Errorf("%w: %s -> %s", ErrTransition, j.status, to)
	}
	j.status = to
	return nil
}

// Runs the job's steps in declared order, fail-fast.
//
// The workspace is provisioned first; each step runs only if every prior
// step succeeded. The first failure terminates the job as failed and no
// further steps run. No partial-success state is exposed: the job ends
// succeeded or failed.
func (j *Job) run(ctx context.Context, steps []Step) {
	if err := j.transition(StatusRunning); err != nil {
		j.err = err
		j.status = StatusFailed
		return
	}

	j.log.Info().Str("workspace", j.Workspace).Int("steps", len(steps)).Msg("job started")

	if err := os.MkdirAll(j.Workspace, paths.DefaultDirMode); err != nil {
		j.fail("workspace", err)
		return
	}

	for _, s := range steps {
		j.log.Info().Str("step", s.Name).Msg("running step")

		if err := s.Run(ctx, j); err != nil {
			j.fail(s.Name, err)
			return
		}
	}

	j.transition(StatusSucceeded)
	j.log.Info().Str("artifact", j.ArtifactName()).Msg("job succeeded")
}

// Terminates the job as failed, recording the step that broke it.
func (j *Job) fail(step string, err error) {
	j.err = fmt.Errorf("%w: %s: %w", ErrStep, step, err)
	j.transition(StatusFailed)
	j.log.Error().Err(err).Str("step", step).Msg("job failed")
}
