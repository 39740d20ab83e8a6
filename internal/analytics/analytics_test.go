package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/saveeasy/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCompute_MonthWindow(t *testing.T) {
	at := day(2024, time.July, 15)
	txs := []models.Transaction{
		{ID: "1", Type: models.TxDeposit, Amount: 10000, Date: day(2024, time.July, 1)},
		{ID: "2", Type: models.TxWithdrawal, Amount: 2000, Category: "health", Date: day(2024, time.July, 3)},
		{ID: "3", Type: models.TxBillPayment, Amount: 500, Category: "telecommunications", Date: day(2024, time.July, 4)},
		{ID: "4", Type: models.TxGroupContribution, Amount: 1000, Date: day(2024, time.July, 5)},
		// same month number, different year: outside the window
		{ID: "5", Type: models.TxWithdrawal, Amount: 9999, Date: day(2023, time.July, 5)},
	}
	user := models.User{TotalSavings: 25000}

	got := Compute(user, txs, nil, at)

	assert.Equal(t, 25000.0, got.TotalSavings)
	assert.Equal(t, 10000.0, got.MonthlyIncome)
	assert.Equal(t, 2500.0, got.MonthlyExpenses)
	assert.Equal(t, 75.0, got.SavingsRate)
	require.Len(t, got.TopSpendingCategories, 2)
	assert.Equal(t, "health", got.TopSpendingCategories[0].Category)
	assert.Equal(t, 80.0, got.TopSpendingCategories[0].Percentage)
	assert.Equal(t, 20.0, got.TopSpendingCategories[1].Percentage)
}

func TestCompute_TopCategoriesCapped(t *testing.T) {
	at := day(2024, time.March, 20)
	var txs []models.Transaction
	for i, c := range []string{"a", "b", "c", "d", "e", "f"} {
		txs = append(txs, models.Transaction{
			Type: models.TxBillPayment, Amount: float64(100 * (i + 1)), Category: c, Date: at,
		})
	}

	got := Compute(models.User{}, txs, nil, at)

	require.Len(t, got.TopSpendingCategories, TopCategories)
	assert.Equal(t, "f", got.TopSpendingCategories[0].Category)
	assert.Equal(t, "c", got.TopSpendingCategories[3].Category)
}

func TestCompute_Growth(t *testing.T) {
	at := day(2024, time.July, 10)
	txs := []models.Transaction{
		{Type: models.TxDeposit, Amount: 5000, Date: day(2024, time.January, 2)},
		{Type: models.TxGoalContribution, Amount: 1000, Date: day(2024, time.July, 2)},
		{Type: models.TxWithdrawal, Amount: 400, Date: day(2024, time.July, 3)},
		{Type: models.TxDeposit, Amount: 7000, Date: day(2023, time.December, 31)},
	}

	got := Compute(models.User{}, txs, nil, at)

	require.Len(t, got.SavingsGrowth, GrowthMonths)
	assert.Equal(t, "Jan", got.SavingsGrowth[0].Month)
	assert.Equal(t, 5000.0, got.SavingsGrowth[0].Amount)
	assert.Equal(t, "Jul", got.SavingsGrowth[6].Month)
	assert.Equal(t, 600.0, got.SavingsGrowth[6].Amount)
}

func TestCompute_GoalProgress(t *testing.T) {
	goals := []models.SavingsGoal{
		{Name: "School Fees", TargetAmount: 50000, CurrentAmount: 25000},
		{Name: "Overfunded", TargetAmount: 100, CurrentAmount: 250},
		{Name: "No target"},
	}

	got := Compute(models.User{}, nil, goals, time.Now())

	assert.Equal(t, []models.GoalProgress{
		{GoalName: "School Fees", Progress: 50},
		{GoalName: "Overfunded", Progress: 100},
		{GoalName: "No target", Progress: 0},
	}, got.GoalProgress)
}

func TestCompute_NoIncome(t *testing.T) {
	at := day(2024, time.July, 10)
	txs := []models.Transaction{{Type: models.TxWithdrawal, Amount: 100, Date: at}}

	got := Compute(models.User{}, txs, nil, at)

	assert.Zero(t, got.SavingsRate)
	assert.Equal(t, 100.0, got.MonthlyExpenses)
}
