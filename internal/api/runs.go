package api

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/mquinnv/gh-hud/internal/model"
)

type RunsFilter struct {
	Branch  string
	Event   string
	Status  string
	Created string // date qualifier, e.g. "<2025-01-01T00:00:00Z"
	PerPage int
}

func (f RunsFilter) QueryString() string {
	v := url.Values{}
	if f.Branch != "" {
		v.Set("branch", f.Branch)
	}
	if f.Event != "" {
		v.Set("event", f.Event)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Created != "" {
		v.Set("created", f.Created)
	}
	if f.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	} else {
		v.Set("per_page", "10")
	}
	return "?" + v.Encode()
}

// ListWorkflowRuns returns the newest runs for one repo, newest first as
// GitHub orders them. A non-zero before narrows to runs created strictly
// earlier; resurrection walks backward in time with it.
func (c *Client) ListWorkflowRuns(repo model.Repo, limit int, before time.Time) ([]model.Run, error) {
	f := RunsFilter{PerPage: limit}
	if !before.IsZero() {
		f.Created = "<" + before.UTC().Format(time.RFC3339)
	}
	var resp model.RunsResponse
	err := c.get(repoPath(repo, "actions/runs")+f.QueryString(), &resp)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list runs for %s: %w", repo.NWO(), err)
	}
	runs := resp.Runs
	for i := range runs {
		runs[i].Repo = repo
	}
	return runs, nil
}
