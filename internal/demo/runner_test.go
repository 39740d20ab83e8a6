package demo

import (
	"context"
	"errors"
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

var fixedNow = time.Date(2024, time.July, 10, 9, 0, 0, 0, time.UTC)

type noSleep struct{}

func (noSleep) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// favourable draws: every probabilistic check passes
type favourable struct{}

func (favourable) Float64() float64 { return 0.5 }
func (favourable) Intn(int) int     { return 0 }

type recordingNotifier struct {
	sent []models.Notification
	err  error
}

func (n *recordingNotifier) SendNotification(_ string, note models.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, note)
	return nil
}

func newRunner(t *testing.T, notifier Notifier) (*Runner, *store.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	clock := func() time.Time { return fixedNow }
	st := store.New(store.Seed(), log)
	svc := service.NewService(config.DefaultRules(), log,
		service.WithSleeper(noSleep{}),
		service.WithRandom(favourable{}),
		service.WithBalance(st),
		service.WithClock(clock))
	a := app.New(st, svc, log)
	a.SetClock(clock)

	r := NewRunner(a, notifier, log)
	r.SetClock(clock)
	return r, st
}

func TestCompleteScenario(t *testing.T) {
	n := &recordingNotifier{}
	r, st := newRunner(t, n)

	rep, err := r.Run(context.Background(), "complete")
	require.NoError(t, err)

	assert.Equal(t, "complete", rep.Scenario)
	assert.Len(t, rep.Steps, 16)
	assert.Equal(t, 16, rep.Succeeded)
	assert.Zero(t, rep.Failed)

	require.NotEmpty(t, n.sent)
	assert.Equal(t, rep.Notifications, rep.Mirrored)
	assert.Len(t, n.sent, rep.Mirrored)
	assert.Equal(t, "Savings Goal Created", n.sent[0].Title)
	assert.Equal(t, "Demo Completed", n.sent[len(n.sent)-1].Title)

	s := st.Snapshot()
	assert.Len(t, s.SavingsGoals, 4)
	assert.Equal(t, 5000.0, s.SavingsGoals[3].CurrentAmount)
	assert.Len(t, s.Investments, 2)
	assert.Len(t, s.Loans, 1)
	assert.Len(t, s.CryptoTransactions, 2)
	assert.Equal(t, 8000.0, s.User.TotalSavings)
}

func TestWealthBuildingRunsOutOfFunds(t *testing.T) {
	r, st := newRunner(t, nil)

	rep, err := r.Run(context.Background(), "wealth-building")
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 6, rep.Succeeded)
	assert.Zero(t, rep.Mirrored)

	var failed Step
	for _, s := range rep.Steps {
		if !s.Success {
			failed = s
		}
	}
	assert.Equal(t, "invest in Real Estate Investment Trust", failed.Name)
	assert.Contains(t, failed.Message, "Insufficient funds")
	assert.Equal(t, 15000.0, st.TotalSavings())
}

func TestEmergencyScenarioRepaysLoan(t *testing.T) {
	r, st := newRunner(t, nil)

	rep, err := r.Run(context.Background(), "emergency")
	require.NoError(t, err)
	assert.Zero(t, rep.Failed)

	s := st.Snapshot()
	require.Len(t, s.Loans, 1)
	assert.Equal(t, 17250.0-2875, s.Loans[0].RemainingBalance)
	assert.Equal(t, 14125.0, s.User.TotalSavings)
}

func TestEveryScenarioRuns(t *testing.T) {
	r, _ := newRunner(t, nil)
	for _, name := range r.Scenarios() {
		t.Run(name, func(t *testing.T) {
			rep, err := r.Run(context.Background(), name)
			require.NoError(t, err)
			assert.NotEmpty(t, rep.Steps)
			assert.Equal(t, len(rep.Steps), rep.Succeeded+rep.Failed)
		})
	}
}

func TestQuickActions(t *testing.T) {
	r, st := newRunner(t, nil)
	assert.Contains(t, r.QuickActions(), "savings")

	rep, err := r.Quick(context.Background(), "savings")
	require.NoError(t, err)
	assert.Equal(t, "quick:savings", rep.Scenario)
	assert.Equal(t, 1, rep.Succeeded)
	assert.Equal(t, 30000.0, st.TotalSavings())
}

func TestUnknownScenario(t *testing.T) {
	r, _ := newRunner(t, nil)

	_, err := r.Run(context.Background(), "moonshot")
	assert.ErrorIs(t, err, ErrUnknownScenario)
	_, err = r.Quick(context.Background(), "moonshot")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestCancelledRun(t *testing.T) {
	r, st := newRunner(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := r.Run(ctx, "complete")
	require.NoError(t, err)
	assert.True(t, rep.Cancelled)
	assert.Empty(t, rep.Steps)
	assert.Len(t, st.Snapshot().Transactions, 5)
}

func TestMirrorFailuresDoNotFailRun(t *testing.T) {
	r, _ := newRunner(t, &recordingNotifier{err: errors.New("smtp down")})

	rep, err := r.Quick(context.Background(), "bill")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Succeeded)
	assert.Positive(t, rep.Notifications)
	assert.Zero(t, rep.Mirrored)
}
