package pipeline

import "context"

// A named unit of work inside a job.
//
// Steps declare the subset of platforms they apply to; the dispatcher
// filters step lists per job at expansion time, so a conditional step is
// simply absent from jobs it does not apply to rather than running as a
// no-op.
type Step struct {
	Name      string                                  // Step name, used in logs and failure reports.
	Platforms []Platform                              // Platforms the step applies to; empty means all.
	Run       func(ctx context.Context, j *Job) error // Step body.
}

// Reports whether the step applies to the given platform.
func (s Step) appliesTo(p Platform) bool {
	if len(s.Platforms) == 0 {
		return true
	}
	for _, sp := range s.Platforms {
		if sp == p {
			return true
		}
	}
	return false
}

// Filters a step list down to the steps that apply to one platform.
func expand(steps []Step, p Platform) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.appliesTo(p) {
			out = append(out, s)
		}
	}
	return out
}
