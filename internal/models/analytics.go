package models

// CategorySpend is the spending total for one category
type CategorySpend struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// MonthlyAmount is one point of the savings growth series
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// GoalProgress is the completion of a savings goal in percent
type GoalProgress struct {
	GoalName string  `json:"goal_name"`
	Progress float64 `json:"progress"`
}

// Analytics is a projection of the user's finances
type Analytics struct {
	TotalSavings          float64         `json:"total_savings"`
	MonthlyIncome         float64         `json:"monthly_income"`
	MonthlyExpenses       float64         `json:"monthly_expenses"`
	SavingsRate           float64         `json:"savings_rate"`
	TopSpendingCategories []CategorySpend `json:"top_spending_categories"`
	SavingsGrowth         []MonthlyAmount `json:"savings_growth"`
	GoalProgress          []GoalProgress  `json:"goal_progress"`
}
