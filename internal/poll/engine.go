package poll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mquinnv/gh-hud/internal/cache"
	"github.com/mquinnv/gh-hud/internal/eventlog"
	"github.com/mquinnv/gh-hud/internal/lifecycle"
	"github.com/mquinnv/gh-hud/internal/model"
)

// ErrInFlight means a cycle was requested while one was already
// running. The request is dropped, never queued.
var ErrInFlight = errors.New("refresh already in flight")

// ErrNothingOlder means resurrection found no run past the cursor.
var ErrNothingOlder = errors.New("no older runs to resurrect")

// GitHub is the slice of the REST client the engine polls through.
type GitHub interface {
	ListWorkflowRuns(repo model.Repo, limit int, before time.Time) ([]model.Run, error)
	ListWorkflowJobs(repo model.Repo, runID int64) ([]model.Job, error)
	ListPullRequests(repo model.Repo, limit int) ([]model.PullRequest, error)
}

// Docker is the compose status source.
type Docker interface {
	Status(ctx context.Context, repos []model.Repo) ([]model.ComposeStatus, error)
}

type Options struct {
	Repos    []model.Repo
	RunLimit int  // runs fetched per repo each cycle
	Pulls    bool // poll open pull requests
	CacheTTL time.Duration
}

const (
	DefaultRunLimit = 10
	DefaultCacheTTL = 10 * time.Second
)

// Engine coordinates refresh cycles: it owns the lifecycle tracker and
// the query cache, fans out to the poll sources and assembles
// snapshots. Cycle and Resurrect share a single in-flight guard;
// dismissals are local and never blocked by it.
type Engine struct {
	github   GitHub
	docker   Docker // nil disables the services strip
	repos    []model.Repo
	runLimit int
	pulls    bool

	cache *cache.Cache
	track *lifecycle.Tracker
	log   *eventlog.Log
	now   func() time.Time

	busy atomic.Bool

	mu     sync.Mutex
	last   *Snapshot
	cursor time.Time // resurrection walks strictly backward from here
}

func New(gh GitHub, dock Docker, opts Options, log *eventlog.Log) *Engine {
	if opts.RunLimit <= 0 {
		opts.RunLimit = DefaultRunLimit
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Engine{
		github:   gh,
		docker:   dock,
		repos:    opts.Repos,
		runLimit: opts.RunLimit,
		pulls:    opts.Pulls,
		cache:    cache.New(opts.CacheTTL),
		track:    lifecycle.NewTracker(),
		log:      log,
		now:      time.Now,
	}
}

// Cycle runs one full refresh and returns the new snapshot. A cycle
// already in flight makes it return ErrInFlight immediately. Individual
// source failures are logged and recorded on the snapshot; only the run
// source failing for every repository fails the cycle as a whole, with
// the first cause wrapped so rate-limit errors stay recognizable.
func (e *Engine) Cycle(ctx context.Context, trigger Trigger) (*Snapshot, error) {
	if !e.busy.CompareAndSwap(false, true) {
		e.log.Debugf("refresh dropped, cycle already in flight (%s)", trigger)
		return nil, ErrInFlight
	}
	defer e.busy.Store(false)

	if trigger == TriggerHard {
		e.cache.Flush()
		e.log.Infof("caches flushed")
	}
	e.log.Debugf("refresh started (%s)", trigger)
	started := e.now()

	type repoData struct {
		runs     []model.Run
		runsErr  error
		pulls    []model.PullRequest
		pullsErr error
	}
	data := make([]repoData, len(e.repos))

	var wg sync.WaitGroup
	sem := make(chan struct{}, 5)
	for i, repo := range e.repos {
		wg.Add(1)
		go func(i int, repo model.Repo) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			data[i].runs, data[i].runsErr = e.fetchRuns(repo)
			if e.pulls {
				data[i].pulls, data[i].pullsErr = e.fetchPulls(repo)
			}
		}(i, repo)
	}

	var (
		services    []model.ComposeStatus
		servicesErr error
	)
	if e.docker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			services, servicesErr = e.fetchServices(ctx)
		}()
	}
	wg.Wait()

	var (
		errs         []SourceError
		firstRunsErr error
		runsFailed   int
	)
	for i, repo := range e.repos {
		if err := data[i].runsErr; err != nil {
			runsFailed++
			if firstRunsErr == nil {
				firstRunsErr = err
			}
			errs = append(errs, SourceError{Source: "runs", Repo: repo.NWO(), Err: err})
			e.log.Errorf("runs %s: %v", repo.NWO(), err)
		}
		if err := data[i].pullsErr; err != nil {
			errs = append(errs, SourceError{Source: "pulls", Repo: repo.NWO(), Err: err})
			e.log.Errorf("pulls %s: %v", repo.NWO(), err)
		}
	}
	if servicesErr != nil {
		// docker reports partial results alongside the error; keep what
		// parsed and record the failure
		errs = append(errs, SourceError{Source: "services", Err: servicesErr})
		e.log.Errorf("docker: %v", servicesErr)
	}
	if len(e.repos) > 0 && runsFailed == len(e.repos) {
		e.log.Errorf("refresh failed for all %d repositories", len(e.repos))
		return nil, fmt.Errorf("refresh failed for all repositories: %w", firstRunsErr)
	}

	for i := range data {
		for _, run := range data[i].runs {
			switch e.track.Observe(run) {
			case lifecycle.TransitionWatched:
				e.log.Infof("watching %s %s #%d (%s)", run.Repo.NWO(), run.Name, run.RunNumber, run.Status)
			case lifecycle.TransitionCompletedPending:
				e.log.Eventf("completed %s %s #%d: %s", run.Repo.NWO(), run.Name, run.RunNumber, run.Conclusion)
			case lifecycle.TransitionIgnoredCompleted:
				e.log.Tracef("ignoring %s run %d, completed before first sight", run.Repo.NWO(), run.ID)
			}
		}
	}

	visible := e.track.Visible()
	jobs := e.fetchVisibleJobs(visible)

	var pulls []model.PullRequest
	for i := range data {
		pulls = append(pulls, data[i].pulls...)
	}

	snap := &Snapshot{
		Runs:        visible,
		Jobs:        jobs,
		Pulls:       pulls,
		Services:    services,
		RefreshedAt: e.now(),
		Errors:      errs,
		Trigger:     trigger,
	}
	e.mu.Lock()
	e.last = snap
	e.mu.Unlock()

	hits, misses := e.cache.Stats()
	e.log.Debugf("refresh done in %s: %d runs, %d prs, %d services, cache %d/%d",
		e.now().Sub(started).Round(time.Millisecond),
		len(visible), len(pulls), model.ServiceCount(services), hits, hits+misses)
	return snap, nil
}

// fetchVisibleJobs fans out job queries for runs still executing.
// Completed-pending runs keep the jobs recorded while they ran; a
// failed query keeps the previous jobs too, so a card never loses its
// steps mid-flight.
func (e *Engine) fetchVisibleJobs(visible []lifecycle.Entry) map[int64][]model.Job {
	jobs := make(map[int64][]model.Job, len(visible))

	var (
		wg  sync.WaitGroup
		jmu sync.Mutex
	)
	sem := make(chan struct{}, 5)
	for _, entry := range visible {
		if entry.Run.Completed() {
			continue
		}
		wg.Add(1)
		go func(run model.Run) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			js, err := e.fetchJobs(run)
			if err != nil {
				e.log.Debugf("jobs %s run %d: %v", run.Repo.NWO(), run.ID, err)
				return
			}
			jmu.Lock()
			jobs[run.ID] = js
			jmu.Unlock()
		}(entry.Run)
	}
	wg.Wait()

	e.mu.Lock()
	prev := e.last
	e.mu.Unlock()
	if prev != nil {
		for _, entry := range visible {
			if _, ok := jobs[entry.Run.ID]; ok {
				continue
			}
			if js, ok := prev.Jobs[entry.Run.ID]; ok {
				jobs[entry.Run.ID] = js
			}
		}
	}
	return jobs
}

func (e *Engine) fetchRuns(repo model.Repo) ([]model.Run, error) {
	key := cache.Key{Repo: repo.NWO(), Kind: cache.KindRuns}
	if v, ok := e.cache.Get(key); ok {
		e.log.Tracef("cache hit %s", key)
		return v.([]model.Run), nil
	}
	e.log.Tracef("GET runs %s", repo.NWO())
	runs, err := e.github.ListWorkflowRuns(repo, e.runLimit, time.Time{})
	if err != nil {
		return nil, err
	}
	e.cache.Put(key, runs)
	return runs, nil
}

func (e *Engine) fetchPulls(repo model.Repo) ([]model.PullRequest, error) {
	key := cache.Key{Repo: repo.NWO(), Kind: cache.KindPulls}
	if v, ok := e.cache.Get(key); ok {
		e.log.Tracef("cache hit %s", key)
		return v.([]model.PullRequest), nil
	}
	e.log.Tracef("GET pulls %s", repo.NWO())
	pulls, err := e.github.ListPullRequests(repo, e.runLimit)
	if err != nil {
		return nil, err
	}
	e.cache.Put(key, pulls)
	return pulls, nil
}

func (e *Engine) fetchJobs(run model.Run) ([]model.Job, error) {
	key := cache.Key{Repo: run.Repo.NWO(), Kind: cache.KindJobs, ID: run.ID}
	if v, ok := e.cache.Get(key); ok {
		e.log.Tracef("cache hit %s", key)
		return v.([]model.Job), nil
	}
	e.log.Tracef("GET jobs %s run %d", run.Repo.NWO(), run.ID)
	jobs, err := e.github.ListWorkflowJobs(run.Repo, run.ID)
	if err != nil {
		return nil, err
	}
	e.cache.Put(key, jobs)
	return jobs, nil
}

// servicesScope keys the docker query, which covers every repo at once.
const servicesScope = "local"

func (e *Engine) fetchServices(ctx context.Context) ([]model.ComposeStatus, error) {
	key := cache.Key{Repo: servicesScope, Kind: cache.KindServices}
	if v, ok := e.cache.Get(key); ok {
		e.log.Tracef("cache hit %s", key)
		return v.([]model.ComposeStatus), nil
	}
	e.log.Tracef("docker compose ls")
	services, err := e.docker.Status(ctx, e.repos)
	if err != nil {
		return services, err
	}
	e.cache.Put(key, services)
	return services, nil
}

// Rebuild assembles a snapshot from tracker state and the last cycle's
// observations without touching any adapter. Dismiss and resurrect use
// it so visibility changes land instantly; RefreshedAt carries over
// because no data was refetched.
func (e *Engine) Rebuild() *Snapshot {
	e.mu.Lock()
	prev := e.last
	e.mu.Unlock()

	visible := e.track.Visible()
	snap := &Snapshot{
		Runs: visible,
		Jobs: make(map[int64][]model.Job, len(visible)),
	}
	if prev != nil {
		for _, entry := range visible {
			if js, ok := prev.Jobs[entry.Run.ID]; ok {
				snap.Jobs[entry.Run.ID] = js
			}
		}
		snap.Pulls = prev.Pulls
		snap.Services = prev.Services
		snap.RefreshedAt = prev.RefreshedAt
		snap.Errors = prev.Errors
		snap.Trigger = prev.Trigger
	}

	e.mu.Lock()
	e.last = snap
	e.mu.Unlock()
	return snap
}

// Dismiss hides one completed-pending run. Local only: the returned
// snapshot is rebuilt without adapter calls, and the id stays dismissed
// when later polls see the same completed run again.
func (e *Engine) Dismiss(id int64) (*Snapshot, bool) {
	if !e.track.Dismiss(id) {
		return e.Rebuild(), false
	}
	e.log.Infof("dismissed run %d", id)
	return e.Rebuild(), true
}

// DismissAll hides every completed-pending run and reports how many.
func (e *Engine) DismissAll() (*Snapshot, int) {
	n := e.track.DismissAll()
	if n > 0 {
		e.log.Infof("dismissed %d completed runs", n)
	}
	return e.Rebuild(), n
}

// Resurrect brings back one run from past the visible horizon: it
// fetches runs created strictly before the cursor for each repo,
// re-admits the newest candidate not already on screen and moves the
// cursor back to it, so repeated presses walk further into history.
// Returns ErrNothingOlder when the walk is exhausted, leaving all state
// untouched. Shares the in-flight guard with Cycle.
func (e *Engine) Resurrect() (*Snapshot, model.Run, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return nil, model.Run{}, ErrInFlight
	}
	defer e.busy.Store(false)

	e.mu.Lock()
	before := e.cursor
	e.mu.Unlock()
	if before.IsZero() {
		before = e.track.OldestVisible()
	}

	var (
		best     model.Run
		firstErr error
		failed   int
	)
	for _, repo := range e.repos {
		// deliberately uncached: the before qualifier makes these
		// one-off history queries
		runs, err := e.github.ListWorkflowRuns(repo, e.runLimit, before)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			e.log.Errorf("resurrect %s: %v", repo.NWO(), err)
			continue
		}
		for _, run := range runs {
			if e.track.IsVisible(run.ID) {
				continue
			}
			if !before.IsZero() && !run.CreatedAt.Before(before) {
				continue
			}
			if best.ID == 0 || run.CreatedAt.After(best.CreatedAt) {
				best = run
			}
		}
	}

	if best.ID == 0 {
		if len(e.repos) > 0 && failed == len(e.repos) {
			return nil, model.Run{}, fmt.Errorf("resurrect: %w", firstErr)
		}
		e.log.Infof("no older runs to bring back")
		return nil, model.Run{}, ErrNothingOlder
	}

	e.track.Resurrect(best)
	e.mu.Lock()
	e.cursor = best.CreatedAt
	e.mu.Unlock()
	e.log.Eventf("resurrected %s %s #%d (%s)", best.Repo.NWO(), best.Name, best.RunNumber, best.Conclusion)
	return e.Rebuild(), best, nil
}

// Last returns the most recent snapshot, nil before the first cycle.
func (e *Engine) Last() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Counts reports tracker totals for the status line.
func (e *Engine) Counts() (active, pending, dismissed int) {
	return e.track.Counts()
}
