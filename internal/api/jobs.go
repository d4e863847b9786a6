package api

import (
	"fmt"

	"github.com/mquinnv/gh-hud/internal/model"
)

// ListWorkflowJobs returns all jobs with their steps for one run.
func (c *Client) ListWorkflowJobs(repo model.Repo, runID int64) ([]model.Job, error) {
	var resp model.JobsResponse
	path := repoPath(repo, fmt.Sprintf("actions/runs/%d/jobs?per_page=100", runID))
	if err := c.get(path, &resp); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list jobs for run %d in %s: %w", runID, repo.NWO(), err)
	}
	return resp.Jobs, nil
}
