// Package pipeline orchestrates release builds across the platform matrix.
//
// A release run starts from a trigger event identifying a branch and
// revision. Triggers from the release-designated branch expand into two
// independent pipelines: the native-binary pipeline runs one job per
// platform target, and the extension-packaging pipeline runs a single
// platform-independent job. All jobs run concurrently, each in a private
// workspace, and reach success or failure independently; one job's
// failure never cancels or affects a sibling.
//
// Within a job, steps execute strictly in declared order and fail fast.
// Platform-conditional steps are filtered out at expansion time, so a job
// only ever dispatches steps that apply to its platform. A job succeeds
// only once its bundle is staged and uploaded.
//
// The external build, strip, and packaging tools and the artifact store
// are injected through narrow interfaces; the orchestrator assumes no
// ambient toolchain state beyond what it provisions per job.
//
// Example usage:
//
//	results, err := pipeline.Run(ctx, pipeline.Options{
//	    Trigger:        pipeline.NewTrigger("release", "4b825dc6"),
//	    ReleaseBranch:  "release",
//	    WorkRoot:       work,
//	    Binary:         "server",
//	    PackagePattern: ".vsix",
//	    Assets:         "editors/emacs",
//	    Builder:        builder,
//	    Stripper:       stripper,
//	    Packager:       packager,
//	    Store:          store,
//	})
package pipeline
