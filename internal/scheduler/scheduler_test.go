package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/saveeasy/internal/app"
	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
)

// Monday
var monday = time.Date(2024, time.July, 15, 8, 0, 0, 0, time.UTC)

type noSleep struct{}

func (noSleep) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func quiet() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newScheduler(t *testing.T) (*Scheduler, *store.Store) {
	t.Helper()
	log := quiet()
	st := store.New(store.Seed(), log)
	clock := func() time.Time { return monday }
	svc := service.NewService(config.DefaultRules(), log,
		service.WithSleeper(noSleep{}),
		service.WithRandom(service.NewLockedRandom(7)),
		service.WithBalance(st),
		service.WithClock(clock))
	a := app.New(st, svc, log)
	a.SetClock(clock)

	s, err := New(a, "0 8 * * *", log)
	require.NoError(t, err)
	s.SetClock(clock)
	t.Cleanup(func() { _ = s.Stop(context.Background()) })
	return s, st
}

func TestDue(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	first := time.Date(2024, time.August, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		goal models.SavingsGoal
		at   time.Time
		want bool
	}{
		{"daily", models.SavingsGoal{AutoSave: true, Frequency: models.Daily, TargetAmount: 10}, tuesday, true},
		{"weekly on monday", models.SavingsGoal{AutoSave: true, Frequency: models.Weekly, TargetAmount: 10}, monday, true},
		{"weekly on tuesday", models.SavingsGoal{AutoSave: true, Frequency: models.Weekly, TargetAmount: 10}, tuesday, false},
		{"monthly on the first", models.SavingsGoal{AutoSave: true, Frequency: models.Monthly, TargetAmount: 10}, first, true},
		{"monthly mid-month", models.SavingsGoal{AutoSave: true, Frequency: models.Monthly, TargetAmount: 10}, monday, false},
		{"auto-save off", models.SavingsGoal{Frequency: models.Daily, TargetAmount: 10}, monday, false},
		{"already reached", models.SavingsGoal{AutoSave: true, Frequency: models.Daily, TargetAmount: 10, CurrentAmount: 10}, monday, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Due(tt.goal, tt.at))
		})
	}
}

func TestAutoSaveAmount(t *testing.T) {
	deadline := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	past := monday.AddDate(0, 0, -3)

	tests := []struct {
		name string
		goal models.SavingsGoal
		want float64
	}{
		{"weekly to deadline", models.SavingsGoal{TargetAmount: 50000, CurrentAmount: 25000, Frequency: models.Weekly, Deadline: &deadline}, 3600},
		{"open ended", models.SavingsGoal{TargetAmount: 30000, CurrentAmount: 18000, Frequency: models.Weekly}, 1000},
		{"deadline passed", models.SavingsGoal{TargetAmount: 5000, CurrentAmount: 4250, Frequency: models.Daily, Deadline: &past}, 750},
		{"capped at remainder", models.SavingsGoal{TargetAmount: 1000, CurrentAmount: 950, Frequency: models.Monthly}, 50},
		{"complete", models.SavingsGoal{TargetAmount: 1000, CurrentAmount: 1000}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoSaveAmount(tt.goal, monday))
		})
	}
}

func TestRunAutoSave(t *testing.T) {
	s, st := newScheduler(t)

	run := s.RunAutoSave(context.Background())
	assert.Equal(t, AutoSaveRun{Due: 2, Saved: 2, Amount: 4600}, run)

	goals := st.Snapshot().SavingsGoals
	assert.Equal(t, 28600.0, goals[0].CurrentAmount)
	assert.Equal(t, 15000.0, goals[1].CurrentAmount)
	assert.Equal(t, 19000.0, goals[2].CurrentAmount)
}

func TestInvalidAutoSaveSpec(t *testing.T) {
	_, err := New(nil, "every tuesday", quiet())
	assert.Error(t, err)
}

func TestAutoPayRegistration(t *testing.T) {
	s, _ := newScheduler(t)
	p := models.AutoPaySchedule{ID: "ap-1", Provider: "MTN", Amount: 500, Spec: "0 9 * * 1"}

	require.NoError(t, s.RegisterAutoPay(p))
	assert.Equal(t, 1, s.AutoPayCount())

	assert.Error(t, s.RegisterAutoPay(models.AutoPaySchedule{ID: "ap-2", Spec: "bad"}))

	assert.True(t, s.CancelAutoPay("ap-1"))
	assert.False(t, s.CancelAutoPay("ap-1"))
	assert.Zero(t, s.AutoPayCount())
}

func TestRegisterAfterStop(t *testing.T) {
	s, _ := newScheduler(t)
	require.NoError(t, s.Stop(context.Background()))

	err := s.RegisterAutoPay(models.AutoPaySchedule{ID: "ap", Spec: "0 9 * * 1"})
	assert.Error(t, err)
}

type recordingReminder struct {
	loans []string
}

func (r *recordingReminder) SendLoanReminder(_ string, loan models.Loan, _ time.Time) error {
	r.loans = append(r.loans, loan.ID)
	return nil
}

func TestNextDue(t *testing.T) {
	start := time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC)
	loan := models.Loan{StartDate: start}
	assert.Equal(t, time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC), NextDue(loan))

	loan.Payments = []models.LoanPayment{{}}
	assert.Equal(t, time.Date(2024, time.August, 17, 0, 0, 0, 0, time.UTC), NextDue(loan))
}

func TestRunLoanReminders(t *testing.T) {
	s, st := newScheduler(t)

	st.Dispatch(store.AddLoan{Loan: models.Loan{ID: "due", RemainingBalance: 5000, StartDate: monday.AddDate(0, -1, 2)}})
	st.Dispatch(store.AddLoan{Loan: models.Loan{ID: "later", RemainingBalance: 5000, StartDate: monday.AddDate(0, 0, -5)}})
	st.Dispatch(store.AddLoan{Loan: models.Loan{ID: "paid", Status: models.LoanPaidOff, StartDate: monday.AddDate(0, -1, 1)}})

	r := &recordingReminder{}
	sent, failed := s.RunLoanReminders(context.Background(), r)
	assert.Equal(t, 1, sent)
	assert.Zero(t, failed)
	assert.Equal(t, []string{"due"}, r.loans)
}

func TestAddRejectsBadSpec(t *testing.T) {
	s, _ := newScheduler(t)
	assert.Error(t, s.Add("rates", "nope", func(context.Context) bool { return true }))
	assert.NoError(t, s.Add("rates", "@every 1h", func(context.Context) bool { return true }))
}
