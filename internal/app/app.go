// Package app connects the simulated service to the state store. A
// successful operation is committed as a single action, so paired records
// such as a bill and its ledger entry land together. Rejections only add a
// user-facing notification. Operations that spend from the balance run one
// at a time.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// AutoPayRegistrar schedules recurring bill payments
type AutoPayRegistrar interface {
	RegisterAutoPay(models.AutoPaySchedule) error
}

// App is the application facade used by the HTTP layer, the scheduler and
// the demo runner
type App struct {
	// ledger serializes operations that spend from the balance, from the
	// balance check through the commit
	ledger sync.Mutex

	store   *store.Store
	svc     *service.Service
	autopay AutoPayRegistrar
	now     func() time.Time
	log     *logrus.Logger
}

// New creates the facade
func New(st *store.Store, svc *service.Service, log *logrus.Logger) *App {
	return &App{store: st, svc: svc, now: time.Now, log: log}
}

// SetAutoPayRegistrar wires the scheduler that runs auto-pay schedules
func (a *App) SetAutoPayRegistrar(r AutoPayRegistrar) {
	a.autopay = r
}

// SetClock overrides the time source used for notifications and analytics
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}

// Snapshot returns a copy of the current state
func (a *App) Snapshot() store.AppState {
	return a.store.Snapshot()
}

// Analytics computes the analytics projection for the current month
func (a *App) Analytics() models.Analytics {
	return a.store.Analytics(a.now())
}

// Subscribe streams state snapshots after every change
func (a *App) Subscribe() (<-chan store.AppState, func()) {
	return a.store.Subscribe()
}

// commit applies a successful ledger change and refreshes the analytics
// projection so it never drifts from the ledger
func (a *App) commit(action store.Action) store.AppState {
	a.store.Dispatch(action)
	return a.store.Dispatch(store.RefreshAnalytics{At: a.now()})
}

func (a *App) notify(title, message string, kind models.NotificationType) {
	a.store.Dispatch(store.AddNotification{Notification: models.Notification{
		ID:      utils.GenerateID(),
		Title:   title,
		Message: message,
		Type:    kind,
		Date:    a.now(),
	}})
}

func notFound[T any](what string) service.Result[T] {
	return service.Result[T]{Message: what + " not found", Error: "No " + what + " with that ID"}
}

func (a *App) user() models.User {
	return a.store.Snapshot().User
}

// Deposit moves money into savings or a goal
func (a *App) Deposit(ctx context.Context, req service.DepositRequest) service.Result[models.Transaction] {
	res := a.svc.Deposit(ctx, req)
	if !res.Success {
		a.notify("Savings Failed", res.Message, models.NotifyError)
		return res
	}
	a.commit(store.AddTransaction{Transaction: res.Data})
	a.notify("Savings Successful", utils.FormatNaira(req.Amount)+" has been saved successfully!", models.NotifySuccess)
	return res
}

// Withdraw takes money out of savings
func (a *App) Withdraw(ctx context.Context, req service.WithdrawRequest) service.Result[models.Transaction] {
	a.ledger.Lock()
	defer a.ledger.Unlock()

	res := a.svc.Withdraw(ctx, req)
	if !res.Success {
		a.notify("Withdrawal Failed", res.Error, models.NotifyError)
		return res
	}
	a.commit(store.AddTransaction{Transaction: res.Data})
	a.notify("Withdrawal Successful", res.Message, models.NotifyInfo)
	return res
}

// AccessEmergencyFund makes an emergency withdrawal
func (a *App) AccessEmergencyFund(ctx context.Context, req service.EmergencyRequest) service.Result[models.Transaction] {
	a.ledger.Lock()
	defer a.ledger.Unlock()

	res := a.svc.AccessEmergencyFund(ctx, req)
	if !res.Success {
		a.notify("Emergency Access Denied", res.Error, models.NotifyWarning)
		return res
	}
	a.commit(store.AddTransaction{Transaction: res.Data})
	a.notify("Emergency Funds Released", res.Message, models.NotifySuccess)
	return res
}

// CreateGoal adds a savings goal
func (a *App) CreateGoal(ctx context.Context, req service.GoalRequest) service.Result[models.SavingsGoal] {
	res := a.svc.CreateGoal(ctx, req)
	if res.Success {
		a.commit(store.AddSavingsGoal{Goal: res.Data})
	}
	return res
}

// UpdateGoal edits a goal directly
func (a *App) UpdateGoal(id string, update models.GoalUpdate) store.AppState {
	return a.commit(store.UpdateSavingsGoal{ID: id, Update: update})
}

// DeleteGoal removes a goal directly
func (a *App) DeleteGoal(id string) store.AppState {
	return a.commit(store.DeleteSavingsGoal{ID: id})
}
