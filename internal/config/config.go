package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/repository"
	"gopkg.in/yaml.v3"

	"github.com/mquinnv/gh-hud/internal/model"
)

type Config struct {
	Repos        []model.Repo
	Interval     time.Duration
	RunLimit     int
	PullRequests bool
	Docker       bool
}

// fileConfig is the on-disk shape. Booleans are pointers so an absent
// key keeps its default while an explicit false wins; the interval is a
// string because YAML has no duration scalar.
type fileConfig struct {
	Repos []struct {
		Name string `yaml:"name"`
		Path string `yaml:"path"`
	} `yaml:"repos"`
	Interval     string `yaml:"interval"`
	RunLimit     int    `yaml:"run_limit"`
	PullRequests *bool  `yaml:"pull_requests"`
	Docker       *bool  `yaml:"docker"`
}

func Default() Config {
	return Config{
		Interval:     30 * time.Second,
		RunLimit:     10,
		PullRequests: true,
		Docker:       true,
	}
}

// DefaultPath is ~/.config/gh-hud/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gh-hud", "config.yaml")
}

// Load reads the file at path over the defaults. A missing file is an
// empty config, not an error; a malformed one is an error, because the
// file is user-authored and a silent fallback would mask typos.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, entry := range fc.Repos {
		repo, err := ParseRepo(entry.Name)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if entry.Path != "" {
			repo.Path = ExpandPath(entry.Path)
		}
		cfg.Repos = append(cfg.Repos, repo)
	}
	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: invalid interval %q", path, fc.Interval)
		}
		cfg.Interval = d
	}
	if fc.RunLimit != 0 {
		cfg.RunLimit = fc.RunLimit
	}
	if fc.PullRequests != nil {
		cfg.PullRequests = *fc.PullRequests
	}
	if fc.Docker != nil {
		cfg.Docker = *fc.Docker
	}
	return cfg, nil
}

// ParseRepo parses one --repo argument, "owner/name" with an optional
// ":path" suffix pointing at the local checkout.
func ParseRepo(s string) (model.Repo, error) {
	nwo, path, _ := strings.Cut(s, ":")
	ref, err := repository.Parse(nwo)
	if err != nil {
		return model.Repo{}, fmt.Errorf("invalid repository %q: %w", s, err)
	}
	return model.Repo{Owner: ref.Owner, Name: ref.Name, Path: ExpandPath(path)}, nil
}

// ExpandPath resolves a leading ~ against the home directory.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func (c Config) Validate() error {
	if len(c.Repos) == 0 {
		return fmt.Errorf("no repositories configured (use --repo owner/name or a config file)")
	}
	for _, r := range c.Repos {
		if r.Owner == "" || r.Name == "" {
			return fmt.Errorf("repository %q must be owner/name", r.NWO())
		}
	}
	if c.Interval < 5*time.Second {
		return fmt.Errorf("interval %s below the 5s minimum", c.Interval)
	}
	if c.RunLimit < 1 || c.RunLimit > 50 {
		return fmt.Errorf("run_limit %d outside 1..50", c.RunLimit)
	}
	return nil
}
