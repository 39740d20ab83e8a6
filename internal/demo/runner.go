// Package demo drives scripted walkthroughs of the product through the app
// facade. Every step is a real operation: it can fail, it is committed to
// the store, and its notifications are mirrored to an optional Notifier.
package demo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/app"
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
)

// ErrUnknownScenario is returned for a scenario or quick action name that
// is not registered
var ErrUnknownScenario = errors.New("unknown demo scenario")

// Notifier receives a copy of every notification a demo run produces
type Notifier interface {
	SendNotification(username string, n models.Notification) error
}

// Step is one operation in a report
type Step struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Report describes a finished run
type Report struct {
	Scenario      string    `json:"scenario"`
	Steps         []Step    `json:"steps"`
	Succeeded     int       `json:"succeeded"`
	Failed        int       `json:"failed"`
	Notifications int       `json:"notifications"`
	Mirrored      int       `json:"mirrored"`
	Cancelled     bool      `json:"cancelled,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
}

// run carries ids created by earlier steps to later ones
type run struct {
	app     *app.App
	now     time.Time
	goalID  string
	groupID string
	loanID  string
}

type step struct {
	name string
	do   func(ctx context.Context, r *run) (bool, string)
}

// Runner executes scenarios against an App
type Runner struct {
	app      *app.App
	notifier Notifier
	now      func() time.Time
	log      *logrus.Logger
}

// NewRunner creates a runner. notifier may be nil.
func NewRunner(a *app.App, notifier Notifier, log *logrus.Logger) *Runner {
	return &Runner{app: a, notifier: notifier, now: time.Now, log: log}
}

// SetClock overrides the time source used for report timestamps and goal
// deadlines
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}

// Scenarios lists the registered scenario names
func (r *Runner) Scenarios() []string {
	return sortedKeys(scenarios)
}

// QuickActions lists the registered quick action names
func (r *Runner) QuickActions() []string {
	return sortedKeys(quickActions)
}

// Run executes a named scenario
func (r *Runner) Run(ctx context.Context, name string) (Report, error) {
	steps, ok := scenarios[name]
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}
	return r.execute(ctx, name, steps), nil
}

// Quick executes a single named quick action
func (r *Runner) Quick(ctx context.Context, action string) (Report, error) {
	s, ok := quickActions[action]
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownScenario, action)
	}
	return r.execute(ctx, "quick:"+action, []step{s}), nil
}

func (r *Runner) execute(ctx context.Context, name string, steps []step) Report {
	before := r.app.Snapshot()
	seen := make(map[string]bool, len(before.Notifications))
	for _, n := range before.Notifications {
		seen[n.ID] = true
	}

	rep := Report{Scenario: name, StartedAt: r.now()}
	state := &run{app: r.app, now: rep.StartedAt}
	r.log.Infof("Demo %s started with %d steps", name, len(steps))

	for _, s := range steps {
		if ctx.Err() != nil {
			rep.Cancelled = true
			break
		}
		success, msg := s.do(ctx, state)
		rep.Steps = append(rep.Steps, Step{Name: s.name, Success: success, Message: msg})
		if success {
			rep.Succeeded++
		} else {
			rep.Failed++
			r.log.Debugf("Demo %s step %q failed: %s", name, s.name, msg)
		}
	}

	after := r.app.Snapshot()
	var fresh []models.Notification
	for _, n := range after.Notifications {
		if !seen[n.ID] {
			fresh = append(fresh, n)
		}
	}
	rep.Notifications = len(fresh)
	rep.Mirrored = r.mirror(after.User.Name, fresh)

	rep.FinishedAt = r.now()
	r.log.Infof("Demo %s finished: %d succeeded, %d failed", name, rep.Succeeded, rep.Failed)
	return rep
}

// mirror forwards notifications oldest first. Delivery errors are logged
// and do not fail the run.
func (r *Runner) mirror(username string, fresh []models.Notification) int {
	if r.notifier == nil {
		return 0
	}
	sent := 0
	for i := len(fresh) - 1; i >= 0; i-- {
		if err := r.notifier.SendNotification(username, fresh[i]); err != nil {
			r.log.Warnf("Failed to mirror notification %s: %v", fresh[i].ID, err)
			continue
		}
		sent++
	}
	return sent
}

func outcome[T any](res service.Result[T]) (bool, string) {
	if res.Success {
		return true, res.Message
	}
	if res.Error != "" {
		return false, res.Message + ": " + res.Error
	}
	return false, res.Message
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
