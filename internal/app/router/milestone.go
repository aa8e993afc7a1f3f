package router

// Milestone marks a fixed point in a run's progress. Milestones fire in
// order; UploadComplete only appears on the upload path. Any UI can consume
// them to drive a step indicator.
type Milestone string

const (
	MilestoneValidationComplete Milestone = "validation_complete"
	MilestoneUploadComplete     Milestone = "upload_complete"
	MilestoneGenerationComplete Milestone = "generation_complete"
)

// MilestoneFunc receives progress milestones. It is called synchronously on
// the submitting goroutine and should return quickly.
type MilestoneFunc func(Milestone)

// SetMilestoneFunc installs the progress callback for subsequent runs.
// At most one submission is in flight at a time, so no locking is needed.
func (r *Router) SetMilestoneFunc(fn MilestoneFunc) {
	r.onMilestone = fn
}

func (r *Router) notify(m Milestone) {
	if r.onMilestone != nil {
		r.onMilestone(m)
	}
}
