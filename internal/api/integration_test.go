package api

import (
	"os"
	"testing"
	"time"

	"github.com/mquinnv/gh-hud/internal/model"
)

func TestIntegrationListWorkflowRuns(t *testing.T) {
	if os.Getenv("GH_HUD_INTEGRATION") == "" {
		t.Skip("Set GH_HUD_INTEGRATION=1 to run integration tests")
	}

	client, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	repo := model.Repo{Owner: "cli", Name: "cli"}
	runs, err := client.ListWorkflowRuns(repo, 5, time.Time{})
	if err != nil {
		t.Fatalf("ListWorkflowRuns: %v", err)
	}
	if len(runs) == 0 {
		t.Error("expected runs in response")
	}

	for _, r := range runs {
		if r.Repo.NWO() != "cli/cli" {
			t.Errorf("run %d missing repo reference: %+v", r.ID, r.Repo)
		}
		t.Logf("  #%d %s [%s] %s", r.RunNumber, r.DisplayTitle, r.Conclusion, r.HeadBranch)
	}
}

func TestIntegrationListPullRequests(t *testing.T) {
	if os.Getenv("GH_HUD_INTEGRATION") == "" {
		t.Skip("Set GH_HUD_INTEGRATION=1 to run integration tests")
	}

	client, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	repo := model.Repo{Owner: "cli", Name: "cli"}
	prs, err := client.ListPullRequests(repo, 5)
	if err != nil {
		t.Fatalf("ListPullRequests: %v", err)
	}

	t.Logf("Found %d open pull requests", len(prs))
	for _, p := range prs {
		t.Logf("  #%d %s [%s] by %s", p.Number, p.Title, p.ReviewState(), p.User.Login)
	}
}
