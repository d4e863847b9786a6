package model

// Repo identifies a tracked repository. Path is the local checkout when
// known; it is what ties a repo to its docker compose projects.
type Repo struct {
	Owner string
	Name  string
	Path  string
}

func (r Repo) NWO() string {
	return r.Owner + "/" + r.Name
}
