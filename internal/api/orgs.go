package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mquinnv/gh-hud/internal/model"
)

// ListOrgRepos returns an organization's most recently pushed
// repositories, skipping archived ones. Backs the --org flag.
func (c *Client) ListOrgRepos(org string, limit int) ([]model.Repo, error) {
	type orgRepo struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
		Archived bool `json:"archived"`
	}

	v := url.Values{}
	v.Set("sort", "pushed")
	v.Set("per_page", strconv.Itoa(limit))

	var recs []orgRepo
	if err := c.get(fmt.Sprintf("orgs/%s/repos?%s", org, v.Encode()), &recs); err != nil {
		return nil, fmt.Errorf("list repos for org %s: %w", org, err)
	}

	repos := make([]model.Repo, 0, len(recs))
	for _, r := range recs {
		if r.Archived {
			continue
		}
		repos = append(repos, model.Repo{Owner: r.Owner.Login, Name: r.Name})
	}
	return repos, nil
}
