// Package scheduler runs the recurring jobs: goal auto-save and bill
// auto-pay. Both go through the app facade, so every run is committed and
// notified like a user-initiated operation.
package scheduler

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/app"
	"github.com/Dan9191/saveeasy/internal/metrics"
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
)

const (
	autoSaveJob = "auto_save"
	autoPayJob  = "auto_pay"

	// goals without a deadline spread the remainder over this many periods
	openEndedPeriods = 12
	// auto-save amounts are rounded up to whole hundreds of naira
	roundTo = 100

	jobTimeout = 2 * time.Minute
)

var periodLength = map[models.Frequency]time.Duration{
	models.Daily:   24 * time.Hour,
	models.Weekly:  7 * 24 * time.Hour,
	models.Monthly: 30 * 24 * time.Hour,
}

// Scheduler owns a cron runner
type Scheduler struct {
	cron *cron.Cron
	app  *app.App
	now  func() time.Time
	log  *logrus.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	autopay map[string]cron.EntryID
}

// New validates the auto-save spec (standard 5-field cron) and registers
// the auto-save job. Nothing runs until Start.
func New(a *app.App, autoSaveSpec string, log *logrus.Logger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:    cron.New(),
		app:     a,
		now:     time.Now,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
		autopay: map[string]cron.EntryID{},
	}
	if _, err := s.cron.AddFunc(autoSaveSpec, s.runAutoSaveJob); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid auto-save schedule %q: %w", autoSaveSpec, err)
	}
	return s, nil
}

// SetClock overrides the time source used to pick due goals
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// Start runs the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.log.Infof("Scheduler started with %d jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop halts scheduling, cancels in-flight jobs and waits for them to
// return or for ctx to expire
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		s.log.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// Add registers an extra named job. fn reports whether the run succeeded.
func (s *Scheduler) Add(job, spec string, fn func(ctx context.Context) bool) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
		defer cancel()
		metrics.RecordScheduledRun(job, fn(ctx))
	})
	if err != nil {
		return fmt.Errorf("invalid %s schedule %q: %w", job, spec, err)
	}
	return nil
}

// RegisterAutoPay schedules a recurring bill payment
func (s *Scheduler) RegisterAutoPay(p models.AutoPaySchedule) error {
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("scheduler stopped: %w", err)
	}
	req := service.BillRequest{
		Type:          p.Type,
		Provider:      p.Provider,
		AccountNumber: p.AccountNumber,
		Amount:        p.Amount,
	}
	id, err := s.cron.AddFunc(p.Spec, func() { s.payBill(p.ID, req) })
	if err != nil {
		return fmt.Errorf("invalid auto-pay schedule %q: %w", p.Spec, err)
	}

	s.mu.Lock()
	s.autopay[p.ID] = id
	s.mu.Unlock()
	s.log.Infof("Auto-pay %s registered for %s, next run %s", p.ID, p.Provider, p.NextRun.Format(time.RFC3339))
	return nil
}

// CancelAutoPay removes a registered auto-pay. It reports whether the
// schedule existed.
func (s *Scheduler) CancelAutoPay(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.autopay[id]
	if ok {
		s.cron.Remove(entry)
		delete(s.autopay, id)
	}
	return ok
}

// AutoPayCount is the number of active auto-pay schedules
func (s *Scheduler) AutoPayCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.autopay)
}

func (s *Scheduler) payBill(id string, req service.BillRequest) {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	res := s.app.PayBill(ctx, req)
	metrics.RecordScheduledRun(autoPayJob, res.Success)
	if !res.Success {
		s.log.Warnf("Auto-pay %s failed: %s", id, res.Message)
		return
	}
	s.log.Infof("Auto-pay %s paid %s", id, req.Provider)
}

func (s *Scheduler) runAutoSaveJob() {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	run := s.RunAutoSave(ctx)
	metrics.RecordScheduledRun(autoSaveJob, run.Failed == 0)
	s.log.Infof("Auto-save run: %d due, %d saved, %d failed", run.Due, run.Saved, run.Failed)
}

// AutoSaveRun summarises one auto-save pass
type AutoSaveRun struct {
	Due    int     `json:"due"`
	Saved  int     `json:"saved"`
	Failed int     `json:"failed"`
	Amount float64 `json:"amount"`
}

// RunAutoSave deposits the next instalment into every auto-save goal that
// is due now
func (s *Scheduler) RunAutoSave(ctx context.Context) AutoSaveRun {
	at := s.now()
	var run AutoSaveRun
	for _, g := range s.app.Snapshot().SavingsGoals {
		if !Due(g, at) {
			continue
		}
		amount := AutoSaveAmount(g, at)
		if amount <= 0 {
			continue
		}
		run.Due++

		res := s.app.Deposit(ctx, service.DepositRequest{Amount: amount, GoalID: g.ID})
		if !res.Success {
			run.Failed++
			s.log.Warnf("Auto-save for goal %s failed: %s", g.ID, res.Message)
			continue
		}
		run.Saved++
		run.Amount += amount
	}
	return run
}

// Due reports whether an auto-save goal should be funded at the given
// time: daily goals always, weekly goals on Mondays, monthly goals on the
// first of the month
func Due(g models.SavingsGoal, at time.Time) bool {
	if !g.AutoSave || g.CurrentAmount >= g.TargetAmount {
		return false
	}
	switch g.Frequency {
	case models.Daily:
		return true
	case models.Weekly:
		return at.Weekday() == time.Monday
	case models.Monthly:
		return at.Day() == 1
	}
	return false
}

// AutoSaveAmount spreads what is left of a goal over the periods remaining
// before its deadline, rounded up to the nearest hundred and capped at the
// remainder
func AutoSaveAmount(g models.SavingsGoal, at time.Time) float64 {
	remaining := decimal.NewFromFloat(g.TargetAmount).Sub(decimal.NewFromFloat(g.CurrentAmount))
	if !remaining.IsPositive() {
		return 0
	}

	periods := int64(openEndedPeriods)
	if g.Deadline != nil {
		period, ok := periodLength[g.Frequency]
		if !ok {
			period = periodLength[models.Monthly]
		}
		left := g.Deadline.Sub(at)
		periods = int64(math.Ceil(float64(left) / float64(period)))
		if periods < 1 {
			periods = 1
		}
	}

	step := decimal.NewFromInt(roundTo)
	amount := remaining.Div(decimal.NewFromInt(periods)).Div(step).Ceil().Mul(step)
	if amount.GreaterThan(remaining) {
		amount = remaining
	}
	return amount.InexactFloat64()
}
