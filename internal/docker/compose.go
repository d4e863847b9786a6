package docker

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mquinnv/gh-hud/internal/model"
)

// Compose reads local docker compose state by shelling out to the docker
// CLI. Docker being absent or the daemon being down surfaces as an error
// from Status, which the dashboard treats as one more failed source.
type Compose struct {
	run func(ctx context.Context, args ...string) ([]byte, error)
}

func NewCompose() *Compose {
	return &Compose{run: runDocker}
}

func runDocker(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "docker", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("docker %s: %s", args[0], firstLine(msg))
		}
		return nil, fmt.Errorf("docker %s: %w", args[0], err)
	}
	return stdout.Bytes(), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Project is one entry from `docker compose ls`. ConfigFiles is
// comma-separated when a project spans several compose files.
type Project struct {
	Name        string `json:"Name"`
	Status      string `json:"Status"`
	ConfigFiles string `json:"ConfigFiles"`
}

func (c *Compose) Projects(ctx context.Context) ([]Project, error) {
	out, err := c.run(ctx, "compose", "ls", "--all", "--format", "json")
	if err != nil {
		return nil, err
	}
	return parseProjects(out)
}

// Status lists service state for every compose project that lives under
// a tracked repo's local path. One compose ls, then a ps per matched
// project. A single project's ps failure skips that project; the first
// such error is returned alongside the partial result so the caller can
// log it.
func (c *Compose) Status(ctx context.Context, repos []model.Repo) ([]model.ComposeStatus, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}

	var (
		statuses []model.ComposeStatus
		firstErr error
	)
	for _, p := range projects {
		repo, configPath, ok := matchRepo(p, repos)
		if !ok {
			continue
		}
		out, err := c.run(ctx, "compose", "-p", p.Name, "ps", "--all")
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		statuses = append(statuses, model.ComposeStatus{
			Repo:       repo,
			Project:    p.Name,
			ConfigPath: configPath,
			Services:   ParsePSTable(string(out)),
		})
	}
	return statuses, firstErr
}

// matchRepo ties a compose project to the tracked repo whose local path
// contains one of the project's config files. Projects matching several
// repos go to the first match in config order.
func matchRepo(p Project, repos []model.Repo) (model.Repo, string, bool) {
	for _, file := range strings.Split(p.ConfigFiles, ",") {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}
		dir := filepath.Dir(file)
		for _, r := range repos {
			if r.Path == "" {
				continue
			}
			if underPath(dir, r.Path) {
				return r, file, true
			}
		}
	}
	return model.Repo{}, "", false
}

// underPath reports whether dir equals path or sits inside it.
func underPath(dir, path string) bool {
	dir = filepath.Clean(dir)
	path = filepath.Clean(path)
	if dir == path {
		return true
	}
	return strings.HasPrefix(dir, path+string(filepath.Separator))
}

func (c *Compose) RestartService(ctx context.Context, project, service string) error {
	_, err := c.run(ctx, "compose", "-p", project, "restart", service)
	return err
}

func (c *Compose) StopService(ctx context.Context, project, service string) error {
	_, err := c.run(ctx, "compose", "-p", project, "stop", service)
	return err
}

// RecreateService needs the compose file, not just the project name;
// `compose up` cannot run from project metadata alone.
func (c *Compose) RecreateService(ctx context.Context, configPath, service string) error {
	_, err := c.run(ctx, "compose", "-f", configPath, "up", "-d", "--force-recreate", service)
	return err
}
