package docker

import (
	"testing"

	"github.com/mquinnv/gh-hud/internal/model"
)

// Captured from docker compose v2.27 on a three-service project.
const psHealthyTable = `NAME          IMAGE                COMMAND                  SERVICE   CREATED       STATUS                          PORTS
api-db-1      postgres:15-alpine   "docker-entrypoint.s…"   db        2 hours ago   Up 2 hours (healthy)            0.0.0.0:5432->5432/tcp
api-redis-1   redis:7              "docker-entrypoint.s…"   redis     2 hours ago   Up 2 hours                      6379/tcp
api-web-1     api-web              "gunicorn config.wsg…"   web       2 hours ago   Up 2 hours (health: starting)   0.0.0.0:8000->8000/tcp
`

const psDegradedTable = `NAME           IMAGE     COMMAND                  SERVICE   CREATED      STATUS                         PORTS
web-app-1      web-app   "npm start"              app       3 days ago   Exited (137) 2 days ago
web-worker-1   web-app   "npm run worker"         worker    3 days ago   Restarting (1) 5 seconds ago
web-cache-1    redis:7   "docker-entrypoint.s…"   cache     3 days ago   Up 3 days (unhealthy)          6379/tcp
web-init-1     web-app   "./init.sh"              init      3 days ago   Created
`

// No SERVICE column; names must fall back to NAME.
const psLegacyTable = `NAME           COMMAND      STATUS                PORTS
legacy-db-1    "postgres"   Up 5 hours (Paused)   5432/tcp
legacy-app-1   "./run.sh"   Dead
`

func TestParsePSTableHealthy(t *testing.T) {
	got := ParsePSTable(psHealthyTable)
	want := []model.Service{
		{Name: "db", State: model.ServiceRunning, Health: model.HealthHealthy, Ports: "0.0.0.0:5432->5432/tcp"},
		{Name: "redis", State: model.ServiceRunning, Health: model.HealthNone, Ports: "6379/tcp"},
		{Name: "web", State: model.ServiceRunning, Health: model.HealthStarting, Ports: "0.0.0.0:8000->8000/tcp"},
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d services, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("service %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParsePSTableDegradedStates(t *testing.T) {
	got := ParsePSTable(psDegradedTable)
	want := []model.Service{
		{Name: "app", State: model.ServiceExited},
		{Name: "worker", State: model.ServiceRestarting},
		{Name: "cache", State: model.ServiceRunning, Health: model.HealthUnhealthy, Ports: "6379/tcp"},
		{Name: "init", State: model.ServiceCreated},
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d services, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("service %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParsePSTableWithoutServiceColumn(t *testing.T) {
	got := ParsePSTable(psLegacyTable)
	want := []model.Service{
		{Name: "legacy-db-1", State: model.ServicePaused, Ports: "5432/tcp"},
		{Name: "legacy-app-1", State: model.ServiceDead},
	}
	if len(got) != len(want) {
		t.Fatalf("parsed %d services, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("service %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParsePSTableEmpty(t *testing.T) {
	if got := ParsePSTable(""); got != nil {
		t.Errorf("empty output should parse to nil, got %+v", got)
	}
	headerOnly := "NAME   IMAGE   COMMAND   SERVICE   CREATED   STATUS   PORTS\n"
	if got := ParsePSTable(headerOnly); len(got) != 0 {
		t.Errorf("header-only output should parse to no services, got %+v", got)
	}
}

func TestParseProjectsArray(t *testing.T) {
	out := []byte(`[{"Name":"api","Status":"running(3)","ConfigFiles":"/home/dev/src/api/docker-compose.yml"}]`)
	projects, err := parseProjects(out)
	if err != nil {
		t.Fatalf("parseProjects: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "api" {
		t.Errorf("projects = %+v", projects)
	}
}

func TestParseProjectsNDJSON(t *testing.T) {
	out := []byte(`{"Name":"api","Status":"running(3)","ConfigFiles":"/home/dev/src/api/docker-compose.yml"}
{"Name":"web","Status":"exited(2)","ConfigFiles":"/home/dev/src/web/compose.yaml,/home/dev/src/web/compose.override.yaml"}
`)
	projects, err := parseProjects(out)
	if err != nil {
		t.Fatalf("parseProjects: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("parsed %d projects, want 2", len(projects))
	}
	if projects[1].Name != "web" {
		t.Errorf("second project = %+v", projects[1])
	}
}

func TestParseProjectsEmpty(t *testing.T) {
	for _, out := range []string{"", "\n", "[]"} {
		projects, err := parseProjects([]byte(out))
		if err != nil {
			t.Errorf("parseProjects(%q): %v", out, err)
		}
		if len(projects) != 0 {
			t.Errorf("parseProjects(%q) = %+v, want none", out, projects)
		}
	}
}

func TestMatchRepo(t *testing.T) {
	repos := []model.Repo{
		{Owner: "acme", Name: "api", Path: "/home/dev/src/api"},
		{Owner: "acme", Name: "web", Path: "/home/dev/src/web"},
		{Owner: "acme", Name: "docs"},
	}
	tests := []struct {
		name    string
		project Project
		wantNWO string
		wantOK  bool
	}{
		{
			name:    "direct child",
			project: Project{Name: "api", ConfigFiles: "/home/dev/src/api/docker-compose.yml"},
			wantNWO: "acme/api",
			wantOK:  true,
		},
		{
			name:    "nested compose file",
			project: Project{Name: "web-e2e", ConfigFiles: "/home/dev/src/web/e2e/compose.yaml"},
			wantNWO: "acme/web",
			wantOK:  true,
		},
		{
			name:    "prefix but not a path component",
			project: Project{Name: "api2", ConfigFiles: "/home/dev/src/api2/compose.yaml"},
			wantOK:  false,
		},
		{
			name:    "second config file matches",
			project: Project{Name: "mixed", ConfigFiles: "/tmp/compose.yaml,/home/dev/src/api/compose.ci.yaml"},
			wantNWO: "acme/api",
			wantOK:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, ok := matchRepo(tt.project, repos)
			if ok != tt.wantOK {
				t.Fatalf("matched = %v, want %v", ok, tt.wantOK)
			}
			if ok && repo.NWO() != tt.wantNWO {
				t.Errorf("matched %s, want %s", repo.NWO(), tt.wantNWO)
			}
		})
	}
}
