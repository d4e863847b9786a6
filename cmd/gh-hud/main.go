package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mquinnv/gh-hud/internal/api"
	"github.com/mquinnv/gh-hud/internal/config"
	"github.com/mquinnv/gh-hud/internal/docker"
	"github.com/mquinnv/gh-hud/internal/eventlog"
	"github.com/mquinnv/gh-hud/internal/model"
	"github.com/mquinnv/gh-hud/internal/poll"
	"github.com/mquinnv/gh-hud/internal/prefs"
	"github.com/mquinnv/gh-hud/internal/tui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

// orgRepoLimit caps how many of an organization's most recently pushed
// repositories --org pulls in.
const orgRepoLimit = 10

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		repoFlags  []string
		org        string
		interval   time.Duration
		runLimit   int
		noPRs      bool
		noDocker   bool
	)

	cmd := &cobra.Command{
		Use:          "gh-hud",
		Short:        "Terminal dashboard for GitHub Actions runs, pull requests and compose services",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(options{
				configPath: configPath,
				repos:      repoFlags,
				org:        org,
				interval:   interval,
				runLimit:   runLimit,
				noPRs:      noPRs,
				noDocker:   noDocker,
			})
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&configPath, "config", "", "config file (default ~/.config/gh-hud/config.yaml)")
	fl.StringSliceVarP(&repoFlags, "repo", "R", nil, "repository as owner/name[:path], repeatable, overrides config")
	fl.StringVarP(&org, "org", "O", "", "track an organization's most recently pushed repositories")
	fl.DurationVarP(&interval, "interval", "i", 0, "auto-refresh interval")
	fl.IntVarP(&runLimit, "run-limit", "n", 0, "workflow runs per repository per refresh")
	fl.BoolVar(&noPRs, "no-prs", false, "hide the pull-request strip")
	fl.BoolVar(&noDocker, "no-docker", false, "hide the container-service strip")
	return cmd
}

type options struct {
	configPath string
	repos      []string
	org        string
	interval   time.Duration
	runLimit   int
	noPRs      bool
	noDocker   bool
}

func run(opts options) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if len(opts.repos) > 0 {
		repos := make([]model.Repo, 0, len(opts.repos))
		for _, s := range opts.repos {
			r, err := config.ParseRepo(s)
			if err != nil {
				return err
			}
			repos = append(repos, r)
		}
		cfg.Repos = repos
	}
	if opts.interval > 0 {
		cfg.Interval = opts.interval
	}
	if opts.runLimit > 0 {
		cfg.RunLimit = opts.runLimit
	}
	if opts.noPRs {
		cfg.PullRequests = false
	}
	if opts.noDocker {
		cfg.Docker = false
	}

	client, err := api.NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Make sure you are authenticated with: gh auth login")
		return err
	}

	if opts.org != "" {
		repos, err := client.ListOrgRepos(opts.org, orgRepoLimit)
		if err != nil {
			return err
		}
		if len(repos) == 0 {
			return fmt.Errorf("org %s has no unarchived repositories", opts.org)
		}
		cfg.Repos = repos
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := eventlog.New(eventlog.DefaultCapacity)

	prefsPath := prefs.DefaultPath()
	pr, perr := prefs.Load(prefsPath)
	if perr != nil {
		log.Errorf("preferences: %v", perr)
	}

	// A disabled docker strip must hand the engine an untyped nil, not
	// a nil *Compose wrapped in the interface.
	var (
		dock     *docker.Compose
		statuser poll.Docker
	)
	if cfg.Docker {
		dock = docker.NewCompose()
		statuser = dock
	}
	engine := poll.New(client, statuser, poll.Options{
		Repos:    cfg.Repos,
		RunLimit: cfg.RunLimit,
		Pulls:    cfg.PullRequests,
	}, log)

	app := tui.New(cfg, engine, client, dock, log, pr, prefsPath)
	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	// One last save so panel height and filter changes survive exits
	// that raced the async writes.
	if a, ok := final.(*tui.App); ok {
		if err := a.Prefs().Save(prefsPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: save preferences: %v\n", err)
		}
	}
	return nil
}
