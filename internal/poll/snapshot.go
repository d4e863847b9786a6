package poll

import (
	"errors"
	"fmt"
	"time"

	"github.com/mquinnv/gh-hud/internal/api"
	"github.com/mquinnv/gh-hud/internal/lifecycle"
	"github.com/mquinnv/gh-hud/internal/model"
)

// Trigger records what started a refresh cycle. Hard triggers flush the
// caches first; action triggers follow a successful remote mutation.
type Trigger int

const (
	TriggerScheduled Trigger = iota
	TriggerManual
	TriggerHard
	TriggerAction
)

func (t Trigger) String() string {
	switch t {
	case TriggerScheduled:
		return "scheduled"
	case TriggerManual:
		return "manual"
	case TriggerHard:
		return "hard"
	case TriggerAction:
		return "post-action"
	}
	return "unknown"
}

// SourceError is one failed poll source in an otherwise completed
// cycle. Repo is empty for the docker source, which is queried once for
// all repositories.
type SourceError struct {
	Source string
	Repo   string
	Err    error
}

func (e SourceError) String() string {
	if e.Repo == "" {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Source, e.Repo, e.Err)
}

// Snapshot is one refresh result. The update loop swaps whole
// snapshots on cycle completion; nothing mutates one after the engine
// hands it out.
type Snapshot struct {
	Runs        []lifecycle.Entry // visible runs, newest first
	Jobs        map[int64][]model.Job
	Pulls       []model.PullRequest
	Services    []model.ComposeStatus
	RefreshedAt time.Time
	Errors      []SourceError
	Trigger     Trigger
}

// RateLimited returns the rate-limit condition when any source hit it,
// so the status bar can show the upstream message verbatim.
func (s *Snapshot) RateLimited() *api.RateLimitError {
	for _, se := range s.Errors {
		var rl *api.RateLimitError
		if errors.As(se.Err, &rl) {
			return rl
		}
	}
	return nil
}
