package model

import "time"

type Job struct {
	ID          int64         `json:"id"`
	RunID       int64         `json:"run_id"`
	Name        string        `json:"name"`
	Status      RunStatus     `json:"status"`
	Conclusion  RunConclusion `json:"conclusion"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	Steps       []Step        `json:"steps"`
}

type Step struct {
	Name       string        `json:"name"`
	Status     RunStatus     `json:"status"`
	Conclusion RunConclusion `json:"conclusion"`
	Number     int           `json:"number"`
}

type JobsResponse struct {
	TotalCount int   `json:"total_count"`
	Jobs       []Job `json:"jobs"`
}

func (j Job) Duration() time.Duration {
	if j.CompletedAt.IsZero() || j.StartedAt.IsZero() {
		return 0
	}
	return j.CompletedAt.Sub(j.StartedAt)
}

func (j Job) Failed() bool {
	return j.Conclusion == ConclusionFailure
}

// Progress counts steps that have finished, whatever their conclusion.
func (j Job) Progress() (done, total int) {
	for _, s := range j.Steps {
		if s.Status == RunStatusCompleted {
			done++
		}
	}
	return done, len(j.Steps)
}

// CurrentStep returns the step executing right now, nil when none is.
func (j Job) CurrentStep() *Step {
	for i := range j.Steps {
		if j.Steps[i].Status == RunStatusInProgress {
			return &j.Steps[i]
		}
	}
	return nil
}
