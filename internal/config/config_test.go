package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mquinnv/gh-hud/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	def := Default()
	if cfg.Interval != def.Interval || cfg.RunLimit != def.RunLimit {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if !cfg.PullRequests || !cfg.Docker {
		t.Error("both panels default to enabled")
	}
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
repos:
  - name: acme/api
    path: /src/api
  - name: acme/web
interval: 45s
run_limit: 5
pull_requests: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Repos) != 2 {
		t.Fatalf("repos = %d, want 2", len(cfg.Repos))
	}
	if cfg.Repos[0].Owner != "acme" || cfg.Repos[0].Name != "api" || cfg.Repos[0].Path != "/src/api" {
		t.Errorf("repo 0 = %+v", cfg.Repos[0])
	}
	if cfg.Repos[1].Path != "" {
		t.Errorf("repo without path = %+v, want empty path", cfg.Repos[1])
	}
	if cfg.Interval != 45*time.Second {
		t.Errorf("interval = %s, want 45s", cfg.Interval)
	}
	if cfg.RunLimit != 5 {
		t.Errorf("run_limit = %d, want 5", cfg.RunLimit)
	}
	if cfg.PullRequests {
		t.Error("explicit false must override the default")
	}
	if !cfg.Docker {
		t.Error("absent key must keep the default")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfig(t, "repos: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config must surface an error, not fall back silently")
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	path := writeConfig(t, "interval: fast\n")
	if _, err := Load(path); err == nil {
		t.Fatal("unparseable interval must fail Load")
	}
}

func TestParseRepo(t *testing.T) {
	tests := []struct {
		in         string
		owner, nwo string
		path       string
		wantErr    bool
	}{
		{in: "acme/api", owner: "acme", nwo: "acme/api"},
		{in: "acme/api:/src/api", owner: "acme", nwo: "acme/api", path: "/src/api"},
		{in: "api", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			repo, err := ParseRepo(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRepo(%q) = %+v, want error", tt.in, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepo(%q): %v", tt.in, err)
			}
			if repo.Owner != tt.owner || repo.NWO() != tt.nwo || repo.Path != tt.path {
				t.Errorf("ParseRepo(%q) = %+v", tt.in, repo)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := ExpandPath("~/src/api"); got != filepath.Join(home, "src", "api") {
		t.Errorf("ExpandPath(~/src/api) = %q", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := ExpandPath("~elsewhere"); !strings.HasPrefix(got, "~") {
		t.Errorf("~user form must pass through, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Default()
	valid.Repos = mustRepos(t, "acme/api")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no repos", func(c *Config) { c.Repos = nil }, true},
		{"interval too short", func(c *Config) { c.Interval = time.Second }, true},
		{"run limit zero", func(c *Config) { c.RunLimit = 0 }, true},
		{"run limit huge", func(c *Config) { c.RunLimit = 51 }, true},
		{"run limit max", func(c *Config) { c.RunLimit = 50 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func mustRepos(t *testing.T, nwos ...string) []model.Repo {
	t.Helper()
	out := make([]model.Repo, len(nwos))
	for i, s := range nwos {
		repo, err := ParseRepo(s)
		if err != nil {
			t.Fatalf("ParseRepo(%q): %v", s, err)
		}
		out[i] = repo
	}
	return out
}
