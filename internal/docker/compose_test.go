package docker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mquinnv/gh-hud/internal/model"
)

const apiPSTable = `NAME       IMAGE         COMMAND      SERVICE   CREATED       STATUS       PORTS
api-db-1   postgres:15   "postgres"   db        2 hours ago   Up 2 hours   5432/tcp
`

func TestStatusMatchesProjectsToRepos(t *testing.T) {
	calls := []string{}
	c := &Compose{run: func(ctx context.Context, args ...string) ([]byte, error) {
		calls = append(calls, strings.Join(args, " "))
		switch {
		case strings.HasPrefix(calls[len(calls)-1], "compose ls"):
			return []byte(`[
				{"Name":"api","Status":"running(1)","ConfigFiles":"/src/api/docker-compose.yml"},
				{"Name":"stranger","Status":"running(2)","ConfigFiles":"/opt/other/compose.yaml"}
			]`), nil
		case strings.Contains(calls[len(calls)-1], "-p api ps"):
			return []byte(apiPSTable), nil
		}
		t.Fatalf("unexpected docker invocation: %v", args)
		return nil, nil
	}}

	repos := []model.Repo{{Owner: "acme", Name: "api", Path: "/src/api"}}
	statuses, err := c.Status(context.Background(), repos)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d compose groups, want 1 (unmatched projects skipped): %+v", len(statuses), statuses)
	}
	st := statuses[0]
	if st.Project != "api" || st.Repo.NWO() != "acme/api" {
		t.Errorf("group = %+v", st)
	}
	if len(st.Services) != 1 || st.Services[0].Name != "db" || st.Services[0].State != model.ServiceRunning {
		t.Errorf("services = %+v", st.Services)
	}
	if len(calls) != 2 {
		t.Errorf("docker invoked %d times, want 2 (ls + one ps): %v", len(calls), calls)
	}
}

func TestStatusPartialFailure(t *testing.T) {
	boom := errors.New("Cannot connect to the Docker daemon")
	c := &Compose{run: func(ctx context.Context, args ...string) ([]byte, error) {
		joined := strings.Join(args, " ")
		switch {
		case strings.HasPrefix(joined, "compose ls"):
			return []byte(`[
				{"Name":"api","Status":"running(1)","ConfigFiles":"/src/api/docker-compose.yml"},
				{"Name":"web","Status":"running(1)","ConfigFiles":"/src/web/docker-compose.yml"}
			]`), nil
		case strings.Contains(joined, "-p api ps"):
			return nil, boom
		case strings.Contains(joined, "-p web ps"):
			return []byte(apiPSTable), nil
		}
		return nil, errors.New("unexpected invocation")
	}}

	repos := []model.Repo{
		{Owner: "acme", Name: "api", Path: "/src/api"},
		{Owner: "acme", Name: "web", Path: "/src/web"},
	}
	statuses, err := c.Status(context.Background(), repos)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want the ps failure", err)
	}
	if len(statuses) != 1 || statuses[0].Project != "web" {
		t.Errorf("partial result = %+v, want the surviving project", statuses)
	}
}

func TestServiceActionCommands(t *testing.T) {
	var got string
	c := &Compose{run: func(ctx context.Context, args ...string) ([]byte, error) {
		got = strings.Join(args, " ")
		return nil, nil
	}}
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"restart", func() error { return c.RestartService(ctx, "api", "db") },
			"compose -p api restart db"},
		{"stop", func() error { return c.StopService(ctx, "api", "db") },
			"compose -p api stop db"},
		{"recreate", func() error { return c.RecreateService(ctx, "/src/api/docker-compose.yml", "db") },
			"compose -f /src/api/docker-compose.yml up -d --force-recreate db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("args = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusNoLocalPaths(t *testing.T) {
	lsCalls := 0
	c := &Compose{run: func(ctx context.Context, args ...string) ([]byte, error) {
		lsCalls++
		return []byte(`[{"Name":"api","Status":"running(1)","ConfigFiles":"/src/api/docker-compose.yml"}]`), nil
	}}

	statuses, err := c.Status(context.Background(), []model.Repo{{Owner: "acme", Name: "api"}})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("repos without paths should match nothing, got %+v", statuses)
	}
	if lsCalls != 1 {
		t.Errorf("docker invoked %d times, want only the ls", lsCalls)
	}
}
