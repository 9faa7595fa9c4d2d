package pipeline

import "github.com/google/uuid"

// Identifies the source revision and branch that caused a release run.
//
// Triggers are created by an external event source (CI webhook, tag push)
// and consumed once; they are never mutated after creation.
type Trigger struct {
	ID       string // Unique identifier for this trigger event.
	Branch   string // Branch the event originated from.
	Revision string // Source revision (commit hash) to release.
}

// Creates a trigger event for the given branch and revision.
func NewTrigger(branch, revision string) Trigger {
	return Trigger{
		ID:       uuid.NewString(),
		Branch:   branch,
		Revision: revision,
	}
}

// Reports whether this trigger initiates the release pipelines.
//
// Only the release-designated branch does; every other branch is ignored.
func (t Trigger) Releases(releaseBranch string) bool {
	return t.Branch != "" && t.Branch == releaseBranch
}
