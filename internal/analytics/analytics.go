// Package analytics derives the dashboard figures from the ledger and goals.
// Nothing here is cached: every call recomputes from its inputs.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/saveeasy/internal/models"
)

const (
	// GrowthMonths is the length of the savings growth series
	GrowthMonths = 7
	// TopCategories caps the spending breakdown
	TopCategories = 4
)

var hundred = decimal.NewFromInt(100)

// Compute projects analytics for the calendar month containing at
func Compute(user models.User, txs []models.Transaction, goals []models.SavingsGoal, at time.Time) models.Analytics {
	income, expenses := decimal.Zero, decimal.Zero
	byCategory := map[string]decimal.Decimal{}

	for _, t := range txs {
		if !sameMonth(t.Date, at) {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch {
		case t.Type == models.TxDeposit:
			income = income.Add(amount)
		case isExpense(t):
			expenses = expenses.Add(amount)
			byCategory[categoryOf(t)] = byCategory[categoryOf(t)].Add(amount)
		}
	}

	return models.Analytics{
		TotalSavings:          user.TotalSavings,
		MonthlyIncome:         income.Round(2).InexactFloat64(),
		MonthlyExpenses:       expenses.Round(2).InexactFloat64(),
		SavingsRate:           SavingsRate(income, expenses),
		TopSpendingCategories: topCategories(byCategory, expenses),
		SavingsGrowth:         growth(txs, at),
		GoalProgress:          goalProgress(goals),
	}
}

// SavingsRate is the share of income left after expenses, in whole percent
func SavingsRate(income, expenses decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}
	rate := income.Sub(expenses).Div(income).Mul(hundred).Round(0)
	if rate.IsNegative() {
		return 0
	}
	return rate.InexactFloat64()
}

func isExpense(t models.Transaction) bool {
	return t.Type == models.TxWithdrawal || t.Type == models.TxBillPayment
}

func categoryOf(t models.Transaction) string {
	if t.Category == "" {
		return "other"
	}
	return t.Category
}

func sameMonth(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func topCategories(byCategory map[string]decimal.Decimal, total decimal.Decimal) []models.CategorySpend {
	out := make([]models.CategorySpend, 0, len(byCategory))
	for category, amount := range byCategory {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = amount.Div(total).Mul(hundred).Round(0)
		}
		out = append(out, models.CategorySpend{
			Category:   category,
			Amount:     amount.Round(2).InexactFloat64(),
			Percentage: pct.InexactFloat64(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount == out[j].Amount {
			return out[i].Category < out[j].Category
		}
		return out[i].Amount > out[j].Amount
	})
	if len(out) > TopCategories {
		out = out[:TopCategories]
	}
	return out
}

// growth returns the net inflow of each of the last GrowthMonths months,
// oldest first
func growth(txs []models.Transaction, at time.Time) []models.MonthlyAmount {
	start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, at.Location()).AddDate(0, -(GrowthMonths - 1), 0)
	sums := make([]decimal.Decimal, GrowthMonths)

	for _, t := range txs {
		d := t.Date.In(at.Location())
		idx := (d.Year()-start.Year())*12 + int(d.Month()) - int(start.Month())
		if idx < 0 || idx >= GrowthMonths {
			continue
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case models.TxDeposit, models.TxGoalContribution:
			sums[idx] = sums[idx].Add(amount)
		case models.TxWithdrawal:
			sums[idx] = sums[idx].Sub(amount)
		}
	}

	out := make([]models.MonthlyAmount, GrowthMonths)
	for i := range out {
		out[i] = models.MonthlyAmount{
			Month:  start.AddDate(0, i, 0).Format("Jan"),
			Amount: sums[i].Round(2).InexactFloat64(),
		}
	}
	return out
}

func goalProgress(goals []models.SavingsGoal) []models.GoalProgress {
	out := make([]models.GoalProgress, 0, len(goals))
	for _, g := range goals {
		out = append(out, models.GoalProgress{
			GoalName: g.Name,
			Progress: decimal.NewFromFloat(g.Progress()).Round(0).InexactFloat64(),
		})
	}
	return out
}
