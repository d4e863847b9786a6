package api

import (
	"fmt"

	"github.com/mquinnv/gh-hud/internal/model"
)

func (c *Client) CancelRun(repo model.Repo, runID int64) error {
	path := repoPath(repo, fmt.Sprintf("actions/runs/%d/cancel", runID))
	if err := c.post(path, nil, nil); err != nil {
		return fmt.Errorf("cancel run %d: %w", runID, err)
	}
	return nil
}

func (c *Client) RerunFailedJobs(repo model.Repo, runID int64) error {
	path := repoPath(repo, fmt.Sprintf("actions/runs/%d/rerun-failed-jobs", runID))
	if err := c.post(path, nil, nil); err != nil {
		return fmt.Errorf("rerun failed jobs for run %d: %w", runID, err)
	}
	return nil
}

type mergeRequest struct {
	MergeMethod string `json:"merge_method"`
}

type mergeResult struct {
	Merged  bool   `json:"merged"`
	Message string `json:"message"`
}

// MergePullRequest squash-merges. GitHub answers 405 with a reason when
// the PR is not mergeable; the wrapped error carries it through.
func (c *Client) MergePullRequest(repo model.Repo, number int) (string, error) {
	var res mergeResult
	path := repoPath(repo, fmt.Sprintf("pulls/%d/merge", number))
	if err := c.put(path, mergeRequest{MergeMethod: "squash"}, &res); err != nil {
		return "", fmt.Errorf("merge pull request #%d: %w", number, err)
	}
	return res.Message, nil
}
