package model

import "time"

type Branch struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

type PullRequest struct {
	Number             int       `json:"number"`
	Title              string    `json:"title"`
	State              string    `json:"state"`
	Draft              bool      `json:"draft"`
	User               Actor     `json:"user"`
	Head               Branch    `json:"head"`
	Base               Branch    `json:"base"`
	RequestedReviewers []Actor   `json:"requested_reviewers"`
	Mergeable          *bool     `json:"mergeable"`
	MergeableState     string    `json:"mergeable_state"`
	HTMLURL            string    `json:"html_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Repo Repo `json:"-"`
}

// ReviewState folds draft, reviewer and mergeability data into a single
// display label. Mergeable/MergeableState come from the detail endpoint
// and may be absent; absence degrades to the weaker labels.
func (p PullRequest) ReviewState() string {
	switch {
	case p.Draft:
		return "draft"
	case p.MergeableState == "dirty" || p.MergeableState == "blocked" || p.MergeableState == "unstable":
		return "blocked"
	case len(p.RequestedReviewers) > 0:
		return "review_required"
	case p.MergeableState == "clean":
		return "clean"
	}
	return ""
}
