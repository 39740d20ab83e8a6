package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
)

var testNow = time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)

type instantSleeper struct{}

func (instantSleeper) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// constRandom always draws the same values
type constRandom struct {
	f float64
	n int
}

func (r constRandom) Float64() float64 { return r.f }
func (r constRandom) Intn(n int) int   { return r.n % n }

func newTestApp(t *testing.T, rnd service.Random) (*App, *store.Store) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.New(store.Seed(), log)
	svc := service.NewService(config.DefaultRules(), log,
		service.WithSleeper(instantSleeper{}),
		service.WithRandom(rnd),
		service.WithBalance(st),
		service.WithClock(func() time.Time { return testNow }))
	a := New(st, svc, log)
	a.SetClock(func() time.Time { return testNow })
	return a, st
}

func TestDepositCommitsToStore(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})
	before := st.Snapshot()

	res := a.Deposit(context.Background(), service.DepositRequest{Amount: 5000, Source: "salary"})
	require.True(t, res.Success)

	after := st.Snapshot()
	assert.Equal(t, before.User.TotalSavings+5000, after.User.TotalSavings)
	assert.Equal(t, res.Data, after.Transactions[0])
	assert.Equal(t, "Savings Successful", after.Notifications[0].Title)
	assert.Equal(t, after.User.TotalSavings, after.Analytics.TotalSavings)
	assert.Equal(t, 7000.0, after.Analytics.MonthlyIncome)
}

func TestWithdrawUsesLiveBalance(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})

	res := a.Withdraw(context.Background(), service.WithdrawRequest{Amount: 30000})
	assert.False(t, res.Success)
	assert.Equal(t, "Insufficient funds", res.Message)

	s := st.Snapshot()
	assert.Equal(t, 25000.0, s.User.TotalSavings)
	assert.Len(t, s.Transactions, 5)
	assert.Equal(t, "Withdrawal Failed", s.Notifications[0].Title)
	assert.Equal(t, models.NotifyError, s.Notifications[0].Type)

	res = a.Withdraw(context.Background(), service.WithdrawRequest{Amount: 5000, Purpose: "family"})
	require.True(t, res.Success)
	assert.Equal(t, 20000.0, st.TotalSavings())
}

func TestPayBillCommitsBothRecords(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})

	res := a.PayBill(context.Background(), service.BillRequest{Type: models.BillData, Provider: "Airtel", AccountNumber: "0802", Amount: 1000})
	require.True(t, res.Success)

	s := st.Snapshot()
	assert.Equal(t, res.Data.Payment, s.BillPayments[0])
	assert.Equal(t, res.Data.Transaction, s.Transactions[0])
	assert.Equal(t, 25000.0, s.User.TotalSavings)
}

func TestPayBillFailureLeavesLedger(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.01})

	res := a.PayBill(context.Background(), service.BillRequest{Provider: "DSTV", Amount: 3000})
	require.False(t, res.Success)

	s := st.Snapshot()
	assert.Len(t, s.BillPayments, 2)
	assert.Len(t, s.Transactions, 5)
	assert.Equal(t, "Payment Failed", s.Notifications[0].Title)
}

func TestGroupFlows(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5, n: 1})
	ctx := context.Background()

	joined := a.JoinGroup(ctx, service.JoinGroupRequest{GroupType: models.GroupStudent})
	require.True(t, joined.Success)
	s := st.Snapshot()
	require.Len(t, s.Groups, 3)
	assert.Equal(t, "Academic Support Group", s.Groups[2].Name)
	assert.Equal(t, "1", s.Groups[2].Members[0].ID)

	existing := a.JoinGroup(ctx, service.JoinGroupRequest{GroupID: "1"})
	require.True(t, existing.Success)
	assert.Equal(t, "Market Traders", existing.Data.GroupName)
	assert.Len(t, st.Snapshot().Groups[0].Members, 3)

	c := a.ContributeToGroup(ctx, "2", 2000)
	require.True(t, c.Success)
	s = st.Snapshot()
	assert.Equal(t, 46000.0, s.Groups[1].TotalPool)
	assert.Equal(t, 10000.0, s.Groups[1].Members[0].TotalContributions)
	assert.Equal(t, "Family Support contribution", s.Transactions[0].Description)

	missing := a.ContributeToGroup(ctx, "nope", 2000)
	assert.False(t, missing.Success)
	assert.Equal(t, "group not found", missing.Message)

	created := a.CreateGroup(ctx, service.GroupRequest{Name: "Office Ajo", ContributionAmount: 3000})
	require.True(t, created.Success)
	assert.Equal(t, "1", created.Data.AdminID)
	assert.Len(t, st.Snapshot().Groups, 4)
}

func TestLoanLifecycle(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})
	ctx := context.Background()

	loan := a.ApplyForLoan(ctx, service.LoanRequest{Amount: 1000, TermMonths: 2})
	require.True(t, loan.Success)
	assert.Equal(t, "1", loan.Data.UserID)

	pay := a.MakeLoanPayment(ctx, loan.Data.ID, 1150)
	require.True(t, pay.Success)

	s := st.Snapshot()
	require.Len(t, s.Loans, 1)
	assert.Equal(t, 0.0, s.Loans[0].RemainingBalance)
	assert.Equal(t, models.LoanPaidOff, s.Loans[0].Status)
	assert.Equal(t, 25000.0-1150, s.User.TotalSavings)

	assert.False(t, a.MakeLoanPayment(ctx, "missing", 100).Success)
}

func TestDeclinedLoanNotifies(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.1})

	res := a.ApplyForLoan(context.Background(), service.LoanRequest{Amount: 1000})
	require.False(t, res.Success)
	s := st.Snapshot()
	assert.Empty(t, s.Loans)
	assert.Equal(t, "Loan Application Declined", s.Notifications[0].Title)
}

func TestInvestmentRoundTrip(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5, n: 1000})
	ctx := context.Background()

	buy := a.BuyInvestment(ctx, service.InvestmentRequest{Name: "Dangote Cement", Amount: 10000})
	require.True(t, buy.Success)
	assert.Equal(t, 15000.0, st.TotalSavings())

	sell := a.SellInvestment(ctx, buy.Data.Investment.ID)
	require.True(t, sell.Success)
	assert.Equal(t, 17000.0, st.TotalSavings())
	assert.Equal(t, models.InvestmentSold, st.Snapshot().Investments[0].Status)

	again := a.SellInvestment(ctx, buy.Data.Investment.ID)
	assert.False(t, again.Success)
}

func TestMarketplaceOrder(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})
	ctx := context.Background()

	item := a.ListItem(ctx, service.ListingRequest{Title: "Generator", Price: 90000})
	require.True(t, item.Success)
	assert.Equal(t, "1", item.Data.SellerID)

	order := a.BuyItem(ctx, item.Data.ID, 1, "")
	require.True(t, order.Success)
	assert.Equal(t, 90000.0, order.Data.TotalAmount)
	assert.Equal(t, "reserved", st.Snapshot().MarketplaceItems[0].Status)

	assert.False(t, a.BuyItem(ctx, item.Data.ID, 1, "").Success)
}

func TestBudgetTracking(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})
	ctx := context.Background()

	b := a.CreateBudget(ctx, service.BudgetRequest{Categories: []models.BudgetCategory{{ID: "food", Name: "Food", AllocatedAmount: 20000}}})
	require.True(t, b.Success)

	e := a.TrackExpense(ctx, service.ExpenseRequest{BudgetID: b.Data.ID, CategoryID: "food", Amount: 4500})
	require.True(t, e.Success)
	assert.Equal(t, 4500.0, st.Snapshot().Budgets[0].Categories[0].SpentAmount)

	assert.False(t, a.TrackExpense(ctx, service.ExpenseRequest{BudgetID: b.Data.ID, CategoryID: "rent", Amount: 1}).Success)
}

type failingRegistrar struct{}

func (failingRegistrar) RegisterAutoPay(models.AutoPaySchedule) error {
	return errors.New("scheduler stopped")
}

func TestAutoPayRegistration(t *testing.T) {
	a, _ := newTestApp(t, constRandom{f: 0.5})
	a.SetAutoPayRegistrar(failingRegistrar{})

	res := a.SetupAutoPay(context.Background(), service.BillRequest{Provider: "MTN", Amount: 500}, models.Weekly)
	assert.False(t, res.Success)
	assert.Equal(t, "scheduler stopped", res.Error)
}

func TestDirectActions(t *testing.T) {
	a, _ := newTestApp(t, constRandom{f: 0.5})

	s := a.UpdateChallengeProgress("1", 10_000)
	assert.Equal(t, 3000.0, s.Challenges[0].CurrentAmount)

	s = a.MarkNotificationRead("2")
	assert.True(t, s.Notifications[1].Read)

	s = a.JoinChallenge("1")
	assert.Equal(t, 1248, s.Challenges[0].Participants)

	offline := true
	s = a.UpdateUser(models.UserUpdate{OfflineMode: &offline})
	assert.True(t, s.User.OfflineMode)

	s = a.RefreshAnalytics()
	assert.Equal(t, a.Analytics(), s.Analytics)
}

// pausingSleeper yields briefly so concurrent calls overlap inside the service
type pausingSleeper struct{}

func (pausingSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	time.Sleep(2 * time.Millisecond)
	return ctx.Err()
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	st := store.New(store.Seed(), log)
	svc := service.NewService(config.DefaultRules(), log,
		service.WithSleeper(pausingSleeper{}),
		service.WithRandom(constRandom{f: 0.5}),
		service.WithBalance(st),
		service.WithClock(func() time.Time { return testNow }))
	a := New(st, svc, log)
	a.SetClock(func() time.Time { return testNow })

	const callers = 5
	results := make([]bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = a.Withdraw(context.Background(), service.WithdrawRequest{Amount: 10000}).Success
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 2, succeeded)

	s := st.Snapshot()
	withdrawn := 0.0
	for _, tx := range s.Transactions {
		if tx.Type == models.TxWithdrawal && tx.Amount == 10000 {
			withdrawn += tx.Amount
		}
	}
	assert.Equal(t, 20000.0, withdrawn)
	assert.Equal(t, 5000.0, s.User.TotalSavings)
}

func TestJoinUnknownGroupIsRejected(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})
	before := st.Snapshot()

	res := a.JoinGroup(context.Background(), service.JoinGroupRequest{GroupID: "does-not-exist"})
	assert.False(t, res.Success)
	assert.Equal(t, "group not found", res.Message)

	after := st.Snapshot()
	assert.Equal(t, before.Groups, after.Groups)
	assert.Equal(t, len(before.Notifications), len(after.Notifications))
}

func TestLoanPaymentRejections(t *testing.T) {
	a, st := newTestApp(t, constRandom{f: 0.5})
	ctx := context.Background()

	small := a.ApplyForLoan(ctx, service.LoanRequest{Amount: 1000, TermMonths: 2})
	require.True(t, small.Success)

	over := a.MakeLoanPayment(ctx, small.Data.ID, 1000000)
	assert.False(t, over.Success)
	assert.Equal(t, "Payment exceeds loan balance", over.Message)
	assert.Equal(t, 25000.0, st.TotalSavings())

	require.True(t, a.MakeLoanPayment(ctx, small.Data.ID, 1150).Success)
	again := a.MakeLoanPayment(ctx, small.Data.ID, 100)
	assert.False(t, again.Success)
	assert.Equal(t, "Loan already repaid", again.Message)
	assert.Equal(t, 25000.0-1150, st.TotalSavings())

	big := a.ApplyForLoan(ctx, service.LoanRequest{Amount: 100000, TermMonths: 12})
	require.True(t, big.Success)
	broke := a.MakeLoanPayment(ctx, big.Data.ID, 30000)
	assert.False(t, broke.Success)
	assert.Equal(t, "Insufficient funds", broke.Message)

	s := st.Snapshot()
	require.Len(t, s.Loans, 2)
	assert.Equal(t, 115000.0, s.Loans[1].RemainingBalance)
	assert.Empty(t, s.Loans[1].Payments)
}
