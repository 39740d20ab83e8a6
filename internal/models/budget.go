package models

import "time"

// BudgetCategory is one allocation line of a budget
type BudgetCategory struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	AllocatedAmount float64 `json:"allocated_amount"`
	SpentAmount     float64 `json:"spent_amount"`
	IsEssential     bool    `json:"is_essential"`
}

// Budget represents a spending plan for a period
type Budget struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Name        string           `json:"name"`
	TotalAmount float64          `json:"total_amount"`
	Period      string           `json:"period"`
	Categories  []BudgetCategory `json:"categories"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	IsActive    bool             `json:"is_active"`
	AutoTrack   bool             `json:"auto_track"`
}

// Expense is a tracked spend against a budget category
type Expense struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	CategoryID  string    `json:"category_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
