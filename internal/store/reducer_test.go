package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/saveeasy/internal/models"
)

var now = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

func tx(id string, typ models.TransactionType, amount float64) models.Transaction {
	return models.Transaction{
		ID:     id,
		Type:   typ,
		Amount: amount,
		Date:   now,
		Status: models.StatusCompleted,
		Method: models.MethodBankTransfer,
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Seed()
	before := s.Clone()

	_ = Reduce(s, AddTransaction{Transaction: tx("t1", models.TxDeposit, 500)})
	_ = Reduce(s, UpdateChallengeProgress{ID: "1", Amount: 100})
	_ = Reduce(s, MarkNotificationRead{ID: "1"})
	_ = Reduce(s, DeleteSavingsGoal{ID: "1"})

	assert.Equal(t, before, s)
}

func TestReduceUnknownActionIsIdentity(t *testing.T) {
	s := Seed()
	assert.Equal(t, s, Reduce(s, nil))
}

func TestBalanceConservation(t *testing.T) {
	s := Seed()
	start := s.User.TotalSavings

	steps := []struct {
		tx   models.Transaction
		want float64
	}{
		{tx("a", models.TxDeposit, 5000), start + 5000},
		{tx("b", models.TxWithdrawal, 2000), start + 3000},
		{tx("c", models.TxBillPayment, 700), start + 3000},
		{tx("d", models.TxGroupContribution, 1000), start + 3000},
		{tx("e", models.TxWithdrawal, 1_000_000), 0},
	}
	for _, st := range steps {
		s = Reduce(s, AddTransaction{Transaction: st.tx})
		assert.Equal(t, st.want, s.User.TotalSavings, st.tx.ID)
	}
}

func TestGoalContributionIsMonotonic(t *testing.T) {
	s := Seed()
	goal := s.SavingsGoals[0]

	c := tx("g1", models.TxGoalContribution, 1500)
	c.GoalID = goal.ID
	s = Reduce(s, AddTransaction{Transaction: c})

	assert.Equal(t, goal.CurrentAmount+1500, s.SavingsGoals[0].CurrentAmount)
	assert.Equal(t, Seed().User.TotalSavings, s.User.TotalSavings)

	d := tx("g2", models.TxDeposit, 500)
	d.GoalID = goal.ID
	s = Reduce(s, AddTransaction{Transaction: d})
	assert.Equal(t, goal.CurrentAmount+2000, s.SavingsGoals[0].CurrentAmount)
	assert.Equal(t, Seed().User.TotalSavings+500, s.User.TotalSavings)
}

func TestDuplicateTransactionIgnored(t *testing.T) {
	s := Seed()
	deposit := tx("dup", models.TxDeposit, 1000)

	once := Reduce(s, AddTransaction{Transaction: deposit})
	twice := Reduce(once, AddTransaction{Transaction: deposit})

	assert.Equal(t, once, twice)
	assert.Len(t, twice.Transactions, len(s.Transactions)+1)
}

func TestChallengeProgressClamped(t *testing.T) {
	s := Seed()
	require.Equal(t, 3000.0, s.Challenges[0].TargetAmount)
	require.Equal(t, 2400.0, s.Challenges[0].CurrentAmount)

	s = Reduce(s, UpdateChallengeProgress{ID: "1", Amount: 10_000})
	assert.Equal(t, 3000.0, s.Challenges[0].CurrentAmount)

	s = Reduce(s, UpdateChallengeProgress{ID: "2", Amount: 500})
	assert.Equal(t, 7000.0, s.Challenges[1].CurrentAmount)
}

func TestJoinChallengeIncrementsParticipants(t *testing.T) {
	s := Seed()
	s = Reduce(s, JoinChallenge{ID: "2"})
	assert.Equal(t, 893, s.Challenges[1].Participants)
}

func TestMarkNotificationRead(t *testing.T) {
	s := Seed()
	s = Reduce(s, MarkNotificationRead{ID: "1"})
	assert.True(t, s.Notifications[0].Read)

	again := Reduce(s, MarkNotificationRead{ID: "1"})
	assert.Equal(t, s, again)

	missing := Reduce(s, MarkNotificationRead{ID: "nope"})
	assert.Equal(t, s, missing)
}

func TestGoalLifecycle(t *testing.T) {
	s := Seed()
	s = Reduce(s, AddSavingsGoal{Goal: models.SavingsGoal{ID: "9", Name: "Car", TargetAmount: 800000}})
	require.Len(t, s.SavingsGoals, 4)
	assert.Equal(t, "9", s.SavingsGoals[3].ID)

	name := "Family Car"
	s = Reduce(s, UpdateSavingsGoal{ID: "9", Update: models.GoalUpdate{Name: &name}})
	assert.Equal(t, "Family Car", s.SavingsGoals[3].Name)
	assert.Equal(t, 800000.0, s.SavingsGoals[3].TargetAmount)

	s = Reduce(s, DeleteSavingsGoal{ID: "9"})
	assert.Len(t, s.SavingsGoals, 3)
}

func TestUpdateUserMergesFields(t *testing.T) {
	s := Seed()
	name := "Ade Johnson"
	s = Reduce(s, UpdateUser{Update: models.UserUpdate{Name: &name}})

	assert.Equal(t, "Ade Johnson", s.User.Name)
	assert.Equal(t, "adebayo@example.com", s.User.Email)
	assert.Equal(t, 25000.0, s.User.TotalSavings)
}

func TestUpdateTransactionStatus(t *testing.T) {
	s := Seed()
	failed := models.StatusFailed
	s = Reduce(s, UpdateTransaction{ID: "3", Update: models.TransactionUpdate{Status: &failed}})
	assert.Equal(t, models.StatusFailed, s.Transactions[2].Status)
	assert.Equal(t, 500.0, s.Transactions[2].Amount)
}

func TestModuleProgress(t *testing.T) {
	s := Seed()
	done := true
	s = Reduce(s, UpdateModuleProgress{ID: "2", Progress: 100, Completed: &done})
	assert.Equal(t, 100.0, s.LiteracyModules[1].Progress)
	assert.True(t, s.LiteracyModules[1].Completed)

	s = Reduce(s, UpdateModuleProgress{ID: "3", Progress: 20})
	assert.Equal(t, 20.0, s.LiteracyModules[2].Progress)
	assert.False(t, s.LiteracyModules[2].Completed)
}

func TestCommitBillPaymentIsAtomic(t *testing.T) {
	s := Seed()
	bill := models.BillPayment{ID: "b9", Type: models.BillData, Provider: "Glo", Amount: 1200, Status: models.StatusCompleted}
	ledger := tx("tb9", models.TxBillPayment, 1200)

	s = Reduce(s, CommitBillPayment{Payment: bill, Transaction: ledger})
	require.Len(t, s.BillPayments, 3)
	require.Len(t, s.Transactions, 6)
	assert.Equal(t, "b9", s.BillPayments[0].ID)
	assert.Equal(t, "tb9", s.Transactions[0].ID)

	// a retry of the same ledger entry changes nothing
	retried := Reduce(s, CommitBillPayment{Payment: bill, Transaction: ledger})
	assert.Equal(t, s, retried)
}

func TestInvestmentBuyAndSell(t *testing.T) {
	s := Seed()
	inv := models.Investment{ID: "i1", Name: "FGN Bond", Amount: 10000, Status: models.InvestmentActive}
	buy := tx("ti1", models.TxWithdrawal, 10000)
	buy.Category = "investment"

	s = Reduce(s, CommitInvestment{Investment: inv, Transaction: buy})
	require.Len(t, s.Investments, 1)
	assert.Equal(t, 15000.0, s.User.TotalSavings)

	s = Reduce(s, SettleInvestmentSale{InvestmentID: "i1", Transaction: tx("ts1", models.TxDeposit, 12000)})
	assert.Equal(t, models.InvestmentSold, s.Investments[0].Status)
	assert.Equal(t, 27000.0, s.User.TotalSavings)
}

func TestGroupContributionReconcilesPool(t *testing.T) {
	s := Seed()
	c := tx("gc1", models.TxGroupContribution, 1000)
	c.GroupID = "2"

	s = Reduce(s, RecordGroupContribution{Transaction: c, MemberID: "1"})

	g := s.Groups[1]
	assert.Equal(t, 45000.0, g.TotalPool)
	assert.Equal(t, 9000.0, g.Members[0].TotalContributions)
	assert.True(t, g.Members[0].HasContributedThisCycle)
	assert.Equal(t, 25000.0, s.User.TotalSavings)

	again := Reduce(s, RecordGroupContribution{Transaction: c, MemberID: "1"})
	assert.Equal(t, 45000.0, again.Groups[1].TotalPool)
}

func TestRecordGroupMembership(t *testing.T) {
	s := Seed()
	member := models.GroupMember{ID: "1", Name: "Adebayo Johnson", JoinDate: now, Status: "active"}

	t.Run("existing member is not duplicated", func(t *testing.T) {
		out := Reduce(s, RecordGroupMembership{
			Membership: models.GroupMembership{GroupID: "1", GroupName: "Market Traders"},
			Member:     member,
		})
		assert.Len(t, out.Groups[0].Members, 3)
	})

	t.Run("unknown group is created", func(t *testing.T) {
		out := Reduce(s, RecordGroupMembership{
			Membership: models.GroupMembership{GroupID: "GRP_1", GroupName: "Tech Savers", ContributionAmount: 5000, JoinedAt: now},
			Member:     member,
		})
		require.Len(t, out.Groups, 3)
		g := out.Groups[2]
		assert.Equal(t, "Tech Savers", g.Name)
		assert.Equal(t, 5000.0, g.ContributionAmount)
		assert.Equal(t, models.Monthly, g.Frequency)
		assert.Len(t, g.Members, 1)
	})
}

func TestLoanPaymentPaysOff(t *testing.T) {
	s := Seed()
	s = Reduce(s, AddLoan{Loan: models.Loan{ID: "l1", Amount: 10000, RemainingBalance: 11500, Status: models.LoanActive}})

	s = Reduce(s, RecordLoanPayment{
		LoanID:      "l1",
		Payment:     models.LoanPayment{ID: "p1", Amount: 6000},
		Transaction: tx("lp1", models.TxWithdrawal, 6000),
	})
	assert.Equal(t, 5500.0, s.Loans[0].RemainingBalance)
	assert.Equal(t, models.LoanActive, s.Loans[0].Status)

	s = Reduce(s, RecordLoanPayment{
		LoanID:      "l1",
		Payment:     models.LoanPayment{ID: "p2", Amount: 6000},
		Transaction: tx("lp2", models.TxWithdrawal, 6000),
	})
	assert.Equal(t, 0.0, s.Loans[0].RemainingBalance)
	assert.Equal(t, models.LoanPaidOff, s.Loans[0].Status)
	require.Len(t, s.Loans[0].Payments, 2)
	assert.Equal(t, 0.0, s.Loans[0].Payments[1].RemainingBalance)
}

func TestMarketplaceOrderReservesItem(t *testing.T) {
	s := Seed()
	s = Reduce(s, AddMarketplaceItem{Item: models.MarketplaceItem{ID: "m1", Title: "Phone", Status: "available"}})
	s = Reduce(s, AddMarketplaceOrder{Order: models.MarketplaceOrder{ID: "o1", ItemID: "m1", Quantity: 1}})

	assert.Equal(t, "reserved", s.MarketplaceItems[0].Status)
	assert.Len(t, s.MarketplaceOrders, 1)
}

func TestTrackBudgetExpense(t *testing.T) {
	s := Seed()
	s = Reduce(s, AddBudget{Budget: models.Budget{
		ID:         "bu1",
		Categories: []models.BudgetCategory{{ID: "food", AllocatedAmount: 20000}},
	}})
	s = Reduce(s, TrackBudgetExpense{BudgetID: "bu1", CategoryID: "food", Amount: 3500})
	s = Reduce(s, TrackBudgetExpense{BudgetID: "bu1", CategoryID: "food", Amount: 1500})

	assert.Equal(t, 5000.0, s.Budgets[0].Categories[0].SpentAmount)
}

func TestRefreshAnalyticsIsIdempotent(t *testing.T) {
	s := Reduce(Seed(), RefreshAnalytics{At: now})
	assert.Equal(t, s, Reduce(s, RefreshAnalytics{At: now}))
	assert.Equal(t, 25000.0, s.Analytics.TotalSavings)
	assert.Len(t, s.Analytics.GoalProgress, 3)
}
