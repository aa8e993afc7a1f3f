package model

import (
	"time"
)

// RunState tracks a submission through its lifecycle:
// Idle -> Validating -> {Rejected | Routed} -> {UploadingHandle} -> Generating -> {Completed | Failed}
type RunState string

const (
	StateIdle            RunState = "idle"
	StateValidating      RunState = "validating"
	StateRejected        RunState = "rejected"
	StateRouted          RunState = "routed"
	StateUploadingHandle RunState = "uploading_handle"
	StateGenerating      RunState = "generating"
	StateCompleted       RunState = "completed"
	StateFailed          RunState = "failed"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s RunState) IsTerminal() bool {
	return s == StateRejected || s == StateCompleted || s == StateFailed
}

// AudioSubmission is the in-memory record of one selected audio file.
// It lives for a single run and is never persisted; only the derived
// RunRecord goes to the history database.
type AudioSubmission struct {
	Path      string
	SizeBytes int64
	MimeType  string
	State     RunState
}

// UsageStats holds the token and timing metadata returned by the remote
// service for one run. Read-only once populated.
type UsageStats struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
	Elapsed      time.Duration
}

// Add merges another call's usage into this one. The memo generation is a
// second remote call on the same run, so its tokens count toward the run total.
func (u *UsageStats) Add(other UsageStats) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
	u.Elapsed += other.Elapsed
}

// RunRecord is the persisted summary of one processing run.
type RunRecord struct {
	ID           string
	FileName     string
	FilePath     string
	SizeBytes    int64
	Method       string
	Provider     string
	State        RunState
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
	ElapsedMs    int64
	ErrorMessage string
	CreatedAt    time.Time
}
