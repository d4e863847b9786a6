package model

import "time"

type RunStatus string

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusInProgress RunStatus = "in_progress"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusWaiting    RunStatus = "waiting"
	RunStatusRequested  RunStatus = "requested"
	RunStatusPending    RunStatus = "pending"
)

type RunConclusion string

const (
	ConclusionSuccess        RunConclusion = "success"
	ConclusionFailure        RunConclusion = "failure"
	ConclusionCancelled      RunConclusion = "cancelled"
	ConclusionSkipped        RunConclusion = "skipped"
	ConclusionTimedOut       RunConclusion = "timed_out"
	ConclusionNeutral        RunConclusion = "neutral"
	ConclusionActionRequired RunConclusion = "action_required"
	ConclusionStale          RunConclusion = "stale"
)

type Run struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	DisplayTitle string        `json:"display_title"`
	Status       RunStatus     `json:"status"`
	Conclusion   RunConclusion `json:"conclusion"`
	WorkflowID   int64         `json:"workflow_id"`
	RunNumber    int           `json:"run_number"`
	RunAttempt   int           `json:"run_attempt"`
	Event        string        `json:"event"`
	HeadBranch   string        `json:"head_branch"`
	HeadSHA      string        `json:"head_sha"`
	Actor        Actor         `json:"actor"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	RunStartedAt time.Time     `json:"run_started_at"`
	HTMLURL      string        `json:"html_url"`

	// Repo is set by the adapter after decoding; the payload's own
	// repository object lacks the local path.
	Repo Repo `json:"-"`
}

type Actor struct {
	Login string `json:"login"`
}

type RunsResponse struct {
	TotalCount int   `json:"total_count"`
	Runs       []Run `json:"workflow_runs"`
}

func (r Run) Completed() bool {
	return r.Status == RunStatusCompleted
}

// Duration keeps ticking for runs still executing.
func (r Run) Duration() time.Duration {
	if r.RunStartedAt.IsZero() {
		return 0
	}
	if !r.Completed() {
		return time.Since(r.RunStartedAt)
	}
	if r.UpdatedAt.IsZero() {
		return 0
	}
	return r.UpdatedAt.Sub(r.RunStartedAt)
}
