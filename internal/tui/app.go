// Package tui is the bubbletea program driving the dashboard. One
// update loop owns every piece of mutable state; anything that blocks
// (API calls, docker exec, refresh cycles) runs as a tea.Cmd goroutine
// and reports back as a message.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/browser"

	"github.com/mquinnv/gh-hud/internal/api"
	"github.com/mquinnv/gh-hud/internal/config"
	"github.com/mquinnv/gh-hud/internal/docker"
	"github.com/mquinnv/gh-hud/internal/eventlog"
	"github.com/mquinnv/gh-hud/internal/lifecycle"
	"github.com/mquinnv/gh-hud/internal/model"
	"github.com/mquinnv/gh-hud/internal/nav"
	"github.com/mquinnv/gh-hud/internal/poll"
	"github.com/mquinnv/gh-hud/internal/prefs"
	"github.com/mquinnv/gh-hud/internal/tui/confirm"
	"github.com/mquinnv/gh-hud/internal/tui/grid"
	"github.com/mquinnv/gh-hud/internal/tui/logpanel"
	"github.com/mquinnv/gh-hud/internal/tui/prstrip"
	"github.com/mquinnv/gh-hud/internal/tui/services"
	"github.com/mquinnv/gh-hud/internal/ui"
)

const (
	logFlushEvery = 200 * time.Millisecond

	// refreshTimeout bounds one whole cycle, covering the docker
	// subprocess legs; the GitHub client carries its own per-request
	// timeout.
	refreshTimeout = time.Minute

	actionTimeout = 30 * time.Second
)

// serviceTarget is the confirm-dialog payload for compose actions.
// ConfigPath is only consumed by recreate, which must re-read the
// compose file.
type serviceTarget struct {
	Project    string
	Service    string
	ConfigPath string
}

type App struct {
	cfg    config.Config
	engine *poll.Engine
	github *api.Client
	docker *docker.Compose
	log    *eventlog.Log

	prefs     prefs.Prefs
	prefsPath string

	snap *poll.Snapshot
	sel  nav.State

	width  int
	height int

	refreshing bool
	loadErr    error // last total-failure cause, nil once a cycle lands
	status     string
	notice     string
	noticeAt   time.Time

	showHelp      bool
	confirmDialog confirm.Model

	logOpen    bool
	logPanel   logpanel.Model
	logSeenGen uint64

	now func() time.Time
}

// New wires the app. dock may be nil when the services strip is
// disabled; cfg and prefs are assumed validated by the caller.
func New(cfg config.Config, engine *poll.Engine, gh *api.Client, dock *docker.Compose, log *eventlog.Log, pr prefs.Prefs, prefsPath string) App {
	log.SetFilter(eventlog.ParseLevel(pr.LogLevel))
	return App{
		cfg:       cfg,
		engine:    engine,
		github:    gh,
		docker:    dock,
		log:       log,
		prefs:     pr,
		prefsPath: prefsPath,
		logPanel:  logpanel.New(),
		status:    "loading...",
		now:       time.Now,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.doRefresh(poll.TriggerScheduled),
		a.scheduleRefresh(),
		scheduleClock(),
	)
}

// --- Commands ---

func (a App) doRefresh(trigger poll.Trigger) tea.Cmd {
	eng := a.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		snap, err := eng.Cycle(ctx, trigger)
		return ui.RefreshDoneMsg{Snap: snap, Err: err}
	}
}

func (a App) doResurrect() tea.Cmd {
	eng := a.engine
	return func() tea.Msg {
		snap, run, err := eng.Resurrect()
		return ui.ResurrectDoneMsg{Snap: snap, Run: run, Err: err}
	}
}

func (a App) doCancelRun(run model.Run) tea.Cmd {
	client := a.github
	return func() tea.Msg {
		detail := fmt.Sprintf("%s #%d", run.Repo.NWO(), run.RunNumber)
		err := client.CancelRun(run.Repo, run.ID)
		return ui.ActionDoneMsg{Action: "cancel run", Detail: detail, Err: err}
	}
}

func (a App) doRerunFailed(run model.Run) tea.Cmd {
	client := a.github
	return func() tea.Msg {
		detail := fmt.Sprintf("%s #%d", run.Repo.NWO(), run.RunNumber)
		err := client.RerunFailedJobs(run.Repo, run.ID)
		return ui.ActionDoneMsg{Action: "rerun failed jobs", Detail: detail, Err: err}
	}
}

func (a App) doMergePull(pr model.PullRequest) tea.Cmd {
	client := a.github
	return func() tea.Msg {
		detail := fmt.Sprintf("%s #%d", pr.Repo.NWO(), pr.Number)
		msg, err := client.MergePullRequest(pr.Repo, pr.Number)
		if err == nil && msg != "" {
			detail = fmt.Sprintf("%s (%s)", detail, msg)
		}
		return ui.ActionDoneMsg{Action: "merge", Detail: detail, Err: err}
	}
}

func (a App) doRestartService(t serviceTarget) tea.Cmd {
	dock := a.docker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		err := dock.RestartService(ctx, t.Project, t.Service)
		return ui.ActionDoneMsg{Action: "restart", Detail: t.Project + "/" + t.Service, Err: err}
	}
}

func (a App) doStopService(t serviceTarget) tea.Cmd {
	dock := a.docker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		err := dock.StopService(ctx, t.Project, t.Service)
		return ui.ActionDoneMsg{Action: "stop", Detail: t.Project + "/" + t.Service, Err: err}
	}
}

func (a App) doRecreateService(t serviceTarget) tea.Cmd {
	dock := a.docker
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()
		err := dock.RecreateService(ctx, t.ConfigPath, t.Service)
		return ui.ActionDoneMsg{Action: "recreate", Detail: t.Project + "/" + t.Service, Err: err}
	}
}

func (a App) doOpen(url string) tea.Cmd {
	return func() tea.Msg {
		err := browser.New("", os.Stdout, os.Stderr).Browse(url)
		return ui.ActionDoneMsg{Action: "open", Detail: url, Err: err}
	}
}

func (a App) savePrefs() tea.Cmd {
	p := a.prefs
	path := a.prefsPath
	return func() tea.Msg {
		return ui.PrefsSavedMsg{Err: p.Save(path)}
	}
}

func (a App) scheduleRefresh() tea.Cmd {
	return tea.Tick(a.cfg.Interval, func(time.Time) tea.Msg { return ui.RefreshTickMsg{} })
}

func scheduleLogFlush() tea.Cmd {
	return tea.Tick(logFlushEvery, func(time.Time) tea.Msg { return ui.LogTickMsg{} })
}

func scheduleClock() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return ui.ClockTickMsg{} })
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Dialog result arrives after the dialog deactivates itself.
	if result, ok := msg.(confirm.ResultMsg); ok {
		if result.Confirmed {
			switch result.Action {
			case "cancel-run":
				run := result.Data.(model.Run)
				a.status = fmt.Sprintf("cancelling %s #%d...", run.Repo.NWO(), run.RunNumber)
				cmds = append(cmds, a.doCancelRun(run))
			case "rerun-failed":
				run := result.Data.(model.Run)
				a.status = fmt.Sprintf("rerunning failed jobs of %s #%d...", run.Repo.NWO(), run.RunNumber)
				cmds = append(cmds, a.doRerunFailed(run))
			case "merge-pull":
				pr := result.Data.(model.PullRequest)
				a.status = fmt.Sprintf("merging %s #%d...", pr.Repo.NWO(), pr.Number)
				cmds = append(cmds, a.doMergePull(pr))
			case "restart-service":
				t := result.Data.(serviceTarget)
				a.status = fmt.Sprintf("restarting %s/%s...", t.Project, t.Service)
				cmds = append(cmds, a.doRestartService(t))
			case "stop-service":
				t := result.Data.(serviceTarget)
				a.status = fmt.Sprintf("stopping %s/%s...", t.Project, t.Service)
				cmds = append(cmds, a.doStopService(t))
			case "recreate-service":
				t := result.Data.(serviceTarget)
				a.status = fmt.Sprintf("recreating %s/%s...", t.Project, t.Service)
				cmds = append(cmds, a.doRecreateService(t))
			}
		}
		return &a, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()
		return &a, nil

	case ui.RefreshTickMsg:
		// Always re-arm; a modal drops the cycle, never the schedule.
		cmds = append(cmds, a.scheduleRefresh())
		if a.modalOpen() {
			a.log.Debugf("scheduled refresh dropped while a dialog is open")
		} else {
			a.refreshing = true
			cmds = append(cmds, a.doRefresh(poll.TriggerScheduled))
		}
		return &a, tea.Batch(cmds...)

	case ui.ClockTickMsg:
		// Live durations and the refreshed-ago stamp tick off this.
		a.expireNotice()
		return &a, scheduleClock()

	case ui.LogTickMsg:
		if !a.logOpen {
			return &a, nil
		}
		a.flushLog(false)
		return &a, scheduleLogFlush()

	case ui.RefreshDoneMsg:
		return &a, a.applyRefresh(msg)

	case ui.ResurrectDoneMsg:
		a.applyResurrect(msg)
		return &a, nil

	case ui.ActionDoneMsg:
		a.status = ""
		if msg.Err != nil {
			a.log.Errorf("%s %s: %v", msg.Action, msg.Detail, msg.Err)
			a.setNotice(fmt.Sprintf("%s failed", msg.Action))
			return &a, nil
		}
		a.log.Eventf("%s %s", msg.Action, msg.Detail)
		a.refreshing = true
		return &a, a.doRefresh(poll.TriggerAction)

	case ui.PrefsSavedMsg:
		if msg.Err != nil {
			a.log.Errorf("save preferences: %v", msg.Err)
		}
		return &a, nil
	}

	// Keys while the dialog is up belong to the dialog.
	if a.confirmDialog.IsActive() {
		var cmd tea.Cmd
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
		return &a, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return a.handleKey(keyMsg)
	}
	return &a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return a, nil

	case key.Matches(msg, ui.Keys.Back):
		if a.logOpen {
			return a, a.toggleLog()
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Up):
		a.move(nav.Up)
		return a, nil
	case key.Matches(msg, ui.Keys.Down):
		a.move(nav.Down)
		return a, nil
	case key.Matches(msg, ui.Keys.Left):
		a.move(nav.Left)
		return a, nil
	case key.Matches(msg, ui.Keys.Right):
		a.move(nav.Right)
		return a, nil

	case key.Matches(msg, ui.Keys.Refresh):
		a.refreshing = true
		a.status = "refreshing..."
		return a, a.doRefresh(poll.TriggerManual)

	case key.Matches(msg, ui.Keys.HardRefresh):
		a.refreshing = true
		a.status = "hard refreshing..."
		return a, a.doRefresh(poll.TriggerHard)

	case key.Matches(msg, ui.Keys.Dismiss):
		a.dismissSelected()
		return a, nil

	case key.Matches(msg, ui.Keys.DismissAll):
		snap, n := a.engine.DismissAll()
		a.swapSnapshot(snap)
		if n == 0 {
			a.setNotice("nothing to dismiss")
		}
		return a, nil

	case key.Matches(msg, ui.Keys.Resurrect):
		a.status = "reaching back..."
		return a, a.doResurrect()

	case key.Matches(msg, ui.Keys.Open):
		return a, a.openSelected()

	case key.Matches(msg, ui.Keys.CancelRun):
		a.confirmCancelRun()
		return a, nil

	case key.Matches(msg, ui.Keys.RerunFailed):
		a.confirmRerunFailed()
		return a, nil

	case key.Matches(msg, ui.Keys.Merge):
		a.confirmMergePull()
		return a, nil

	case key.Matches(msg, ui.Keys.Restart):
		a.confirmServiceAction("restart-service", "Restart service", "Restart")
		return a, nil

	case key.Matches(msg, ui.Keys.Stop):
		a.confirmServiceAction("stop-service", "Stop service", "Stop")
		return a, nil

	case key.Matches(msg, ui.Keys.Recreate):
		a.confirmServiceAction("recreate-service", "Recreate service", "Recreate")
		return a, nil

	case key.Matches(msg, ui.Keys.ToggleLog):
		return a, a.toggleLog()

	case key.Matches(msg, ui.Keys.LogTaller):
		return a, a.resizeLog(1)

	case key.Matches(msg, ui.Keys.LogShorter):
		return a, a.resizeLog(-1)

	case key.Matches(msg, ui.Keys.LogFilter):
		return a, a.cycleLogFilter()
	}

	switch msg.String() {
	case "pgup":
		a.logPanel.Scroll(-a.prefs.LogPanelHeight)
	case "pgdown":
		a.logPanel.Scroll(a.prefs.LogPanelHeight)
	}
	return a, nil
}

// --- Message application ---

func (a *App) applyRefresh(msg ui.RefreshDoneMsg) tea.Cmd {
	if errors.Is(msg.Err, poll.ErrInFlight) {
		// The running cycle will deliver its own result.
		return nil
	}
	a.refreshing = false
	a.status = ""
	if msg.Err != nil {
		a.loadErr = msg.Err
		return nil
	}
	a.loadErr = nil
	a.swapSnapshot(msg.Snap)

	if len(msg.Snap.Errors) == 0 {
		return nil
	}
	if rl := msg.Snap.RateLimited(); rl != nil {
		a.setNotice(rl.Error())
	} else {
		a.setNotice(fmt.Sprintf("%d source(s) failed, see log", len(msg.Snap.Errors)))
	}
	if a.prefs.AutoShowLog && !a.logOpen {
		a.logOpen = true
		a.propagateSize()
		a.flushLog(true)
		return scheduleLogFlush()
	}
	return nil
}

func (a *App) applyResurrect(msg ui.ResurrectDoneMsg) {
	a.status = ""
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, poll.ErrInFlight):
			a.setNotice("refresh in flight, try again")
		case errors.Is(msg.Err, poll.ErrNothingOlder):
			a.setNotice("no older runs")
		default:
			a.log.Errorf("resurrect: %v", msg.Err)
			a.setNotice("resurrect failed")
		}
		return
	}
	a.swapSnapshot(msg.Snap)
	// Put the cursor on the run that just came back.
	for i, e := range msg.Snap.Runs {
		if e.Run.ID == msg.Run.ID {
			a.sel.Region = nav.RegionRuns
			a.sel.Idx[nav.RegionRuns] = i
			break
		}
	}
}

// swapSnapshot installs a new snapshot and re-validates the cursor
// against the new counts.
func (a *App) swapSnapshot(snap *poll.Snapshot) {
	if snap == nil {
		return
	}
	first := a.snap == nil
	a.snap = snap
	if first {
		a.sel = nav.Initial(a.counts())
		return
	}
	if s, changed := nav.Clamp(a.sel, a.counts()); changed {
		a.sel = s
		a.log.Debugf("cursor clamped to %s[%d]", s.Region, s.Index())
	}
}

func (a *App) move(d nav.Direction) {
	s, moved := nav.Move(a.sel, d, a.counts())
	if moved {
		a.sel = s
		a.log.Tracef("cursor %s[%d]", s.Region, s.Index())
	}
}

func (a *App) dismissSelected() {
	e := a.selectedRun()
	if e == nil {
		a.setNotice("no run selected")
		return
	}
	snap, ok := a.engine.Dismiss(e.Run.ID)
	if !ok {
		a.setNotice("run still active, x cancels it")
		return
	}
	a.swapSnapshot(snap)
}

func (a *App) confirmCancelRun() {
	e := a.selectedRun()
	if e == nil || e.Run.Completed() {
		a.setNotice("no active run selected")
		return
	}
	a.confirmDialog = confirm.New(
		"Cancel workflow run",
		fmt.Sprintf("Cancel %s #%d (%s)?", e.Run.Repo.NWO(), e.Run.RunNumber, e.Run.Name),
		"cancel-run", e.Run)
}

func (a *App) confirmRerunFailed() {
	e := a.selectedRun()
	if e == nil || !e.Run.Completed() {
		a.setNotice("no completed run selected")
		return
	}
	a.confirmDialog = confirm.New(
		"Rerun failed jobs",
		fmt.Sprintf("Rerun failed jobs of %s #%d?", e.Run.Repo.NWO(), e.Run.RunNumber),
		"rerun-failed", e.Run)
}

func (a *App) confirmMergePull() {
	pr := a.selectedPull()
	if pr == nil {
		a.setNotice("no pull request selected")
		return
	}
	a.confirmDialog = confirm.New(
		"Merge pull request",
		fmt.Sprintf("Squash-merge %s #%d (%s)?", pr.Repo.NWO(), pr.Number, pr.Title),
		"merge-pull", *pr)
}

func (a *App) confirmServiceAction(action, title, verb string) {
	if a.docker == nil {
		a.setNotice("docker strip disabled")
		return
	}
	g, svc, ok := a.selectedService()
	if !ok {
		a.setNotice("no service selected")
		return
	}
	a.confirmDialog = confirm.New(
		title,
		fmt.Sprintf("%s %s/%s?", verb, g.Project, svc.Name),
		action, serviceTarget{Project: g.Project, Service: svc.Name, ConfigPath: g.ConfigPath})
}

func (a *App) openSelected() tea.Cmd {
	switch a.sel.Region {
	case nav.RegionRuns:
		if e := a.selectedRun(); e != nil && e.Run.HTMLURL != "" {
			return a.doOpen(e.Run.HTMLURL)
		}
	case nav.RegionPulls:
		if pr := a.selectedPull(); pr != nil && pr.HTMLURL != "" {
			return a.doOpen(pr.HTMLURL)
		}
	case nav.RegionServices:
		a.setNotice("services have no page to open")
		return nil
	}
	a.setNotice("nothing to open")
	return nil
}

// --- Log panel ---

// toggleLog flips panel visibility for the session; the auto-show
// preference is not touched, it governs error-driven opens only.
func (a *App) toggleLog() tea.Cmd {
	a.logOpen = !a.logOpen
	a.propagateSize()
	if a.logOpen {
		a.flushLog(true)
		return scheduleLogFlush()
	}
	return nil
}

func (a *App) resizeLog(delta int) tea.Cmd {
	if !a.logOpen {
		return nil
	}
	h := a.prefs.LogPanelHeight + delta
	if h < prefs.MinPanelHeight {
		h = prefs.MinPanelHeight
	}
	if h > prefs.MaxPanelHeight {
		h = prefs.MaxPanelHeight
	}
	if h == a.prefs.LogPanelHeight {
		return nil
	}
	a.prefs.LogPanelHeight = h
	a.propagateSize()
	a.flushLog(true)
	return a.savePrefs()
}

func (a *App) cycleLogFilter() tea.Cmd {
	next := eventlog.NextFilter(a.log.Filter())
	a.log.SetFilter(next)
	a.prefs.LogLevel = next.String()
	if a.logOpen {
		a.flushLog(true)
	}
	return a.savePrefs()
}

func (a *App) flushLog(force bool) {
	gen := a.log.RenderGeneration()
	if !force && gen == a.logSeenGen {
		return
	}
	a.logSeenGen = gen
	a.logPanel.SetEntries(a.log.Entries(), a.log.Filter())
}

// --- Accessors ---

func (a App) modalOpen() bool {
	return a.showHelp || a.confirmDialog.IsActive()
}

// Prefs exposes the current preference record for the shutdown save.
func (a App) Prefs() prefs.Prefs {
	return a.prefs
}

func (a App) counts() nav.Counts {
	if a.snap == nil {
		return nav.Counts{}
	}
	return nav.Counts{
		Services: model.ServiceCount(a.snap.Services),
		Pulls:    len(a.snap.Pulls),
		Runs:     len(a.snap.Runs),
	}
}

func (a App) selectedRun() *lifecycle.Entry {
	if a.snap == nil || a.sel.Region != nav.RegionRuns {
		return nil
	}
	idx := a.sel.Index()
	if idx < 0 || idx >= len(a.snap.Runs) {
		return nil
	}
	return &a.snap.Runs[idx]
}

func (a App) selectedPull() *model.PullRequest {
	if a.snap == nil || a.sel.Region != nav.RegionPulls {
		return nil
	}
	idx := a.sel.Index()
	if idx < 0 || idx >= len(a.snap.Pulls) {
		return nil
	}
	return &a.snap.Pulls[idx]
}

func (a App) selectedService() (model.ComposeStatus, model.Service, bool) {
	if a.snap == nil || a.sel.Region != nav.RegionServices {
		return model.ComposeStatus{}, model.Service{}, false
	}
	return model.ServiceAt(a.snap.Services, a.sel.Index())
}

func (a *App) setNotice(text string) {
	a.notice = text
	a.noticeAt = a.now()
}

func (a *App) expireNotice() {
	if a.notice != "" && a.now().Sub(a.noticeAt) > 5*time.Second {
		a.notice = ""
	}
}

func (a *App) propagateSize() {
	if a.width == 0 {
		return
	}
	a.logPanel.SetSize(a.width, a.prefs.LogPanelHeight)
}

func (a App) repoLabel() string {
	names := make([]string, 0, len(a.cfg.Repos))
	for _, r := range a.cfg.Repos {
		names = append(names, r.NWO())
	}
	label := strings.Join(names, " ")
	if len(names) > 3 {
		label = fmt.Sprintf("%s +%d more", strings.Join(names[:3], " "), len(names)-3)
	}
	return label
}

// --- View ---

func (a App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	active, pending, _ := a.engine.Counts()
	header := RenderHeader(a.repoLabel(), active, pending, a.width)

	var content string
	switch {
	case a.showHelp:
		content = a.renderHelp()
	case a.confirmDialog.IsActive():
		content = a.confirmDialog.View()
	case a.loadErr != nil:
		content = a.renderError()
	default:
		content = a.renderDashboard()
	}

	statusBar := RenderStatusBar(a.statusText(), a.notice, a.contextHints(), a.width)

	// Hard clamp: header(1) + statusbar(1) = 2 lines of chrome.
	maxContentLines := a.height - 2
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + content + "\n" + statusBar
}

func (a App) renderDashboard() string {
	var blocks []string
	if a.snap == nil {
		return ui.StyleMuted.Render("  contacting GitHub...")
	}
	if a.cfg.Docker {
		blocks = append(blocks, services.Render(a.snap.Services,
			a.sel.IndexOf(nav.RegionServices), a.sel.Region == nav.RegionServices, a.width))
	}
	if a.cfg.PullRequests {
		blocks = append(blocks, prstrip.Render(a.snap.Pulls,
			a.sel.IndexOf(nav.RegionPulls), a.sel.Region == nav.RegionPulls, a.width))
	}
	blocks = append(blocks, grid.Render(a.snap.Runs, a.snap.Jobs,
		a.sel.IndexOf(nav.RegionRuns), a.sel.Region == nav.RegionRuns, a.width, a.now()))
	if a.logOpen {
		blocks = append(blocks, a.logPanel.View())
	}
	return strings.Join(blocks, "\n")
}

func (a App) renderError() string {
	title := "Refresh failed"
	var rl *api.RateLimitError
	if errors.As(a.loadErr, &rl) {
		title = "Rate limited"
	}
	body := fmt.Sprintf("%s\n\n%s\n\n%s",
		ui.StyleFailure.Bold(true).Render(title),
		a.loadErr.Error(),
		ui.StyleMuted.Render("r to retry, L for the log, q to quit"))
	return ui.StylePane.Width(a.width-2).Padding(1, 2).Render(body)
}

func (a App) statusText() string {
	if a.status != "" {
		return a.status
	}
	if a.refreshing {
		return "refreshing..."
	}
	if a.snap == nil {
		return "loading..."
	}
	ago := a.now().Sub(a.snap.RefreshedAt).Truncate(time.Second)
	if ago < time.Second {
		return "refreshed just now"
	}
	return fmt.Sprintf("refreshed %s ago", ago)
}

func (a App) contextHints() string {
	if a.showHelp {
		return "any key to close"
	}
	if a.confirmDialog.IsActive() {
		return "y/n  tab:switch  esc:cancel"
	}
	if a.loadErr != nil {
		return "r:retry  R:hard  L:log  q:quit"
	}
	switch a.sel.Region {
	case nav.RegionServices:
		return "hjkl:move  s:restart  S:stop  C:recreate  r:refresh  L:log  ?:help"
	case nav.RegionPulls:
		return "hjkl:move  enter:open  m:merge  r:refresh  L:log  ?:help"
	default:
		return "hjkl:move  enter:open  d:dismiss  u:older  x:cancel  X:rerun  r:refresh  ?:help"
	}
}
