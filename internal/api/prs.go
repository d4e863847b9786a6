package api

import (
	"fmt"
	"net/url"
	"strconv"
	"sync"

	"github.com/mquinnv/gh-hud/internal/model"
)

type PullsFilter struct {
	State   string
	Base    string
	PerPage int
}

func (f PullsFilter) QueryString() string {
	v := url.Values{}
	if f.State != "" {
		v.Set("state", f.State)
	} else {
		v.Set("state", "open")
	}
	if f.Base != "" {
		v.Set("base", f.Base)
	}
	if f.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	} else {
		v.Set("per_page", "10")
	}
	return "?" + v.Encode()
}

// ListPullRequests returns open PRs for one repo. The list payload omits
// mergeability, so each PR gets a detail fetch, fanned out under a small
// semaphore. A failed detail fetch leaves that PR's mergeability unknown
// rather than failing the listing.
func (c *Client) ListPullRequests(repo model.Repo, limit int) ([]model.PullRequest, error) {
	var prs []model.PullRequest
	f := PullsFilter{PerPage: limit}
	if err := c.get(repoPath(repo, "pulls")+f.QueryString(), &prs); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list pull requests for %s: %w", repo.NWO(), err)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, 5)
	for i := range prs {
		prs[i].Repo = repo
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			var full model.PullRequest
			path := repoPath(repo, fmt.Sprintf("pulls/%d", prs[i].Number))
			if err := c.get(path, &full); err != nil {
				return
			}
			prs[i].Mergeable = full.Mergeable
			prs[i].MergeableState = full.MergeableState
		}(i)
	}
	wg.Wait()
	return prs, nil
}
